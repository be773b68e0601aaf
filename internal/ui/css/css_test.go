package css

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetSrc = `
/* panel chrome */
.panel { background: #1a1a1a; width: 260px; opacity: 0.5; }
.row, #fps { color: #ccc; padding: 6px; }
div { color: red; }
.panel .row { color: blue; }
@media screen { .row { color: green; } }
.row { font-size: 14px; }
#fps { left: 100%; top: 8px; }
`

func TestParse(t *testing.T) {
	sheet, err := Parse(sheetSrc)
	require.NoError(t, err)

	var sels []string
	for _, r := range sheet.Rules {
		sels = append(sels, r.Selector)
	}
	assert.Equal(t, []string{".panel", ".row", "#fps", ".row", "#fps"}, sels)
	assert.Equal(t, "#1a1a1a", sheet.Rules[0].Props["background"])
	assert.Equal(t, "260px", sheet.Rules[0].Props["width"])
}

func TestParse_Empty(t *testing.T) {
	sheet, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, sheet.Rules)
}

func TestMatch_LaterWins(t *testing.T) {
	sheet, err := Parse(sheetSrc)
	require.NoError(t, err)

	row := sheet.Match("row", "")
	assert.Equal(t, "#ccc", row["color"])
	assert.Equal(t, "14px", row["font-size"])

	fps := sheet.Match("", "fps")
	assert.Equal(t, "100%", fps["left"])
	assert.Equal(t, "6px", fps["padding"])

	assert.Empty(t, sheet.Match("missing", ""))
	var nilSheet *Stylesheet
	assert.Empty(t, nilSheet.Match("row", ""))
}

func TestResolve(t *testing.T) {
	sheet, err := Parse(sheetSrc)
	require.NoError(t, err)

	panel := Resolve(sheet.Match("panel", ""))
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 128}, panel.Background)
	assert.Equal(t, int32(260), panel.Width)
	assert.False(t, panel.HasBorder)

	row := Resolve(sheet.Match("row", ""))
	assert.Equal(t, color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255}, row.Color)
	assert.Equal(t, int32(6), row.Padding)
	assert.Equal(t, int32(14), row.FontSize)

	fps := Resolve(sheet.Match("", "fps"))
	assert.Equal(t, int32(100), fps.LeftPct)
	assert.Equal(t, int32(-1), fps.TopPct)
	assert.Equal(t, int32(8), fps.Top)
}

func TestResolve_Defaults(t *testing.T) {
	s := Resolve(map[string]string{"color": "not-a-color", "padding": "-3", "font-size": "0"})
	assert.Equal(t, DefaultComputedStyle(), s)
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#f80")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x88, A: 255}, c)

	c, ok = ParseColor("SteelBlue")
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 70, G: 130, B: 180, A: 255}, c)

	c, ok = ParseColor("transparent")
	require.True(t, ok)
	assert.Equal(t, uint8(0), c.A)

	for _, bad := range []string{"", "#12", "#gggggg", "0xffffff"} {
		_, ok := ParseColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestParsePxPct(t *testing.T) {
	n, ok := ParsePx(" 12px ")
	assert.True(t, ok)
	assert.Equal(t, int32(12), n)
	n, ok = ParsePx("7")
	assert.True(t, ok)
	assert.Equal(t, int32(7), n)
	_, ok = ParsePx("wide")
	assert.False(t, ok)

	p, ok := ParsePct("50%")
	assert.True(t, ok)
	assert.Equal(t, int32(50), p)
	for _, bad := range []string{"50", "%", "101%", "-1%"} {
		_, ok := ParsePct(bad)
		assert.False(t, ok, bad)
	}
}

func TestPlace(t *testing.T) {
	s := DefaultComputedStyle()
	s.Left, s.Top = 10, 20
	x, y := s.Place(100, 50, 800, 600)
	assert.Equal(t, []int32{10, 20}, []int32{x, y})

	s.LeftPct, s.TopPct = 100, 50
	x, y = s.Place(100, 50, 800, 600)
	assert.Equal(t, []int32{700, 275}, []int32{x, y})
}

func TestDefault(t *testing.T) {
	sheet := Default()
	require.NotEmpty(t, sheet.Rules)

	panel := Resolve(sheet.Match("panel", ""))
	assert.Equal(t, int32(260), panel.Width)
	assert.Greater(t, panel.Background.A, uint8(0))

	row := Resolve(sheet.Match("row", ""))
	assert.Equal(t, int32(24), row.Height)
	assert.Equal(t, int32(90), Resolve(sheet.Match("label", "")).Width)

	slider := Resolve(sheet.Match("slider", ""))
	assert.Equal(t, color.RGBA{R: 0x2f, G: 0xa1, B: 0xd6, A: 255}, slider.Accent)

	stats := Resolve(sheet.Match("", "stats"))
	assert.Equal(t, int32(8), stats.Left)
	assert.Equal(t, int32(-1), stats.LeftPct)

	bar := Resolve(sheet.Match("", "console-bar"))
	assert.True(t, bar.HasBorder)
}
