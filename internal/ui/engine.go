package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sphere-scene/internal/ui/css"
)

// Engine holds the current stylesheet and font, and draws nodes with raylib.
// Resolved styles are cached per (class, id) and only recomputed when the sheet changes to avoid per-frame allocations.
// If a font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default (pixel) font is used.
type Engine struct {
	sheet  *css.Stylesheet
	styles map[[2]string]css.ComputedStyle
	font   rl.Font
}

// New creates an engine using the built-in stylesheet.
func New() *Engine {
	e := &Engine{}
	e.SetStylesheet(css.Default())
	return e
}

// LoadCSS loads and parses a CSS file from path. It is appended to the built-in stylesheet,
// so it only needs the rules it changes.
func (e *Engine) LoadCSS(path string) error {
	sheet, err := css.Load(path)
	if err != nil {
		return err
	}
	merged := &css.Stylesheet{}
	if e.sheet != nil {
		merged.Rules = append(merged.Rules, e.sheet.Rules...)
	}
	merged.Rules = append(merged.Rules, sheet.Rules...)
	e.SetStylesheet(merged)
	return nil
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *css.Stylesheet) {
	e.sheet = sheet
	e.styles = make(map[[2]string]css.ComputedStyle)
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *css.Stylesheet {
	return e.sheet
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	e.unloadFont()
	e.font = f
	return nil
}

func (e *Engine) unloadFont() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// Close releases the font.
func (e *Engine) Close() {
	e.unloadFont()
}

// Style returns the computed style for class and id.
func (e *Engine) Style(class, id string) css.ComputedStyle {
	key := [2]string{class, id}
	if s, ok := e.styles[key]; ok {
		return s
	}
	s := css.Resolve(e.sheet.Match(class, id))
	e.styles[key] = s
	return s
}

// place sets an anchored node's bounds from its style on a screen of the given size.
func place(n *Node, style css.ComputedStyle, screenW, screenH int32) {
	if !n.Anchored {
		return
	}
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
	x, y := style.Place(int32(n.Bounds.Width), int32(n.Bounds.Height), screenW, screenH)
	n.Bounds.X, n.Bounds.Y = float32(x), float32(y)
}

// Place positions an anchored node for the current screen size. Draw does this too;
// call it when child positions depend on the node's bounds before drawing.
func (e *Engine) Place(n *Node) {
	place(n, e.Style(n.Class, n.ID), int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
}

// Draw draws nodes in order: background, border, then text.
func (e *Engine) Draw(nodes []*Node) {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for _, n := range nodes {
		style := e.Style(n.Class, n.ID)
		place(n, style, screenW, screenH)
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		if style.Background.A > 0 && w > 0 && h > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		// Border (1px)
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			e.Text(n.Text, x+style.Padding, y+style.Padding, style)
		}
	}
}

// Text draws one line in the style's color and font size.
func (e *Engine) Text(text string, x, y int32, style css.ComputedStyle) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x), float32(y)), float32(style.FontSize), 1, style.Color)
		return
	}
	rl.DrawText(text, x, y, style.FontSize, style.Color)
}

// MeasureText returns the width of text in the style's font size.
func (e *Engine) MeasureText(text string, style css.ComputedStyle) int32 {
	if e.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(e.font, text, float32(style.FontSize), 1).X)
	}
	return rl.MeasureText(text, style.FontSize)
}
