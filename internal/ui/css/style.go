package css

import (
	"image/color"
	"strconv"
	"strings"

	"sphere-scene/internal/rgb"
)

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct: 0–100 for percentage positioning; -1 means use Left/Top as pixels.
// Padding is the offset (in pixels) from the node's left/top when drawing text.
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	Accent     color.RGBA // slider fill
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32 // -1 = not set
	TopPct     int32 // -1 = not set
	Padding    int32
	FontSize   int32
}

// DefaultComputedStyle returns a minimal style (transparent background, white text, no border, zero size).
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: color.RGBA{},
		Color:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Border:     color.RGBA{A: 255},
		Accent:     color.RGBA{R: 0x2f, G: 0xa1, B: 0xd6, A: 255},
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   20,
	}
}

// ParseColor parses #RGB, #RRGGBB or a CSS color name (alpha 255). "transparent" has alpha 0.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") {
		return color.RGBA{}, true
	}
	if strings.HasPrefix(s, "0x") {
		return color.RGBA{}, false
	}
	c, err := rgb.Parse(s)
	if err != nil {
		return color.RGBA{}, false
	}
	return c.RGBA(), true
}

// ParsePx parses a number, with optional "px" suffix, to int32. Unitless is treated as pixels.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" to int32 (0–100). Used for left/top percentage positioning.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// parseOpacity accepts 0..1 or a percentage.
func parseOpacity(s string) (uint8, bool) {
	if pct, ok := ParsePct(s); ok {
		return uint8(pct * 255 / 100), true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || f > 1 {
		return 0, false
	}
	return uint8(f*255 + 0.5), true
}

// Resolve builds a ComputedStyle from a merged property map (e.g. from Stylesheet.Match).
func Resolve(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	opacity := -1
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background", "background-color":
			if c, ok := ParseColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseColor(v); ok {
				out.Color = c
			}
		case "accent-color":
			if c, ok := ParseColor(v); ok {
				out.Accent = c
			}
		case "border", "border-color":
			if c, ok := ParseColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "opacity":
			if a, ok := parseOpacity(v); ok {
				opacity = int(a)
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	// opacity applies to the background only, after it is known
	if opacity >= 0 && out.Background.A > 0 {
		out.Background.A = uint8(opacity)
	}
	return out
}

// Place returns the top-left corner of a box of size (w, h) on a screen of size (screenW, screenH).
// Percentages position the box within the free space, so 100% puts it flush right or bottom.
func (s ComputedStyle) Place(w, h, screenW, screenH int32) (x, y int32) {
	x, y = s.Left, s.Top
	if s.LeftPct >= 0 {
		x = (screenW - w) * s.LeftPct / 100
	}
	if s.TopPct >= 0 {
		y = (screenH - h) * s.TopPct / 100
	}
	return x, y
}
