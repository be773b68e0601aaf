package rgb

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Max is the largest packed value (white).
const Max Color = 0xffffff

var (
	// ErrOutOfRange is returned when a packed value does not fit in 24 bits.
	ErrOutOfRange = errors.New("rgb: value out of range")
	// ErrInvalid is returned by Parse for text that is neither hex nor a known color name.
	ErrInvalid = errors.New("rgb: invalid color")
)

// Color is a packed 0xRRGGBB value, the same encoding the debug panel and light use.
type Color uint32

// FromBytes packs three 8-bit channels.
func FromBytes(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Valid reports whether c fits in 24 bits.
func (c Color) Valid() bool {
	return c <= Max
}

// Bytes returns the 8-bit channels.
func (c Color) Bytes() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Floats returns the channels scaled to 0–1 (shader uniforms).
func (c Color) Floats() [3]float32 {
	r, g, b := c.Bytes()
	return [3]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// RGBA converts to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// WithChannel returns c with channel i (0=R, 1=G, 2=B) replaced by v.
func (c Color) WithChannel(i int, v uint8) Color {
	shift := uint(16 - 8*i)
	return c&^(0xff<<shift) | Color(v)<<shift
}

// Channel returns channel i (0=R, 1=G, 2=B).
func (c Color) Channel(i int) uint8 {
	return uint8(c >> uint(16-8*i))
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c&Max))
}

func (c Color) String() string {
	return c.Hex()
}

// Parse accepts #RGB, #RRGGBB, 0xRRGGBB and CSS color names (e.g. "coral").
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "0x"):
		return parseHex(s[2:])
	}
	if c, ok := colornames.Map[s]; ok {
		return FromBytes(c.R, c.G, c.B), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalid, s)
}

func parseHex(hex string) (Color, error) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalid, hex)
	}
	return Color(v), nil
}

// MarshalText encodes as #rrggbb so config files stay readable.
func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrOutOfRange
	}
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts anything Parse does.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
