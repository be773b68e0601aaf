package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sphere-scene/internal/rgb"
)

func TestNumberController_ClampAndStep(t *testing.T) {
	v := float32(4)
	g := NewGUI()
	c := g.AddFolder("f").Add(&v, "x").Min(-3).Max(3).Step(0.01)

	assert.Equal(t, float32(4), c.Value(), "initial value is not clamped")

	assert.Equal(t, float32(3), c.SetValue(10))
	assert.Equal(t, float32(3), v)
	assert.Equal(t, float32(-3), c.SetValue(-7.5))

	got := c.SetValue(1.23456)
	assert.InDelta(t, 1.23, got, 1e-6)
	assert.Equal(t, got, v)

	assert.InDelta(t, -2.99, c.SetValue(-2.994), 1e-6)
	assert.Equal(t, "-2.99", c.Format())
}

func TestNumberController_OnChange(t *testing.T) {
	v := float32(0)
	var seen []float32
	c := NewGUI().AddFolder("f").Add(&v, "x").Min(0).Max(1).OnChange(func(f float32) {
		seen = append(seen, f)
	})
	c.SetValue(0.25)
	c.SetValue(2)
	assert.Equal(t, []float32{0.25, 1}, seen)
}

func TestNumberController_Fraction(t *testing.T) {
	v := float32(0)
	c := NewGUI().AddFolder("f").Add(&v, "x").Min(-3).Max(3).Step(0.01)
	assert.InDelta(t, 0.5, c.Fraction(), 1e-6)

	c.SetFraction(1)
	assert.Equal(t, float32(3), v)
	c.SetFraction(0.25)
	assert.InDelta(t, -1.5, v, 1e-6)

	v = 4
	assert.Equal(t, float32(1), c.Fraction())

	free := float32(2)
	u := NewGUI().AddFolder("f").Add(&free, "u")
	u.SetFraction(0.5)
	assert.Equal(t, float32(2), free, "no range, no fraction edits")
	assert.Equal(t, float32(0), u.Fraction())
	assert.Equal(t, "2.000", u.Format())
}

func TestColorController(t *testing.T) {
	c := rgb.Color(0xffffff)
	var changed []rgb.Color
	cc := NewGUI().AddFolder("f").AddColor(&c, "color").OnChange(func(v rgb.Color) {
		changed = append(changed, v)
	})

	require.NoError(t, cc.SetValue(0x336699))
	assert.Equal(t, rgb.Color(0x336699), c)

	assert.ErrorIs(t, cc.SetValue(0x1000000), rgb.ErrOutOfRange)
	assert.Equal(t, rgb.Color(0x336699), c)
	assert.Equal(t, []rgb.Color{0x336699}, changed)
}

func TestGUI_FoldersAndLookup(t *testing.T) {
	g := NewGUI()
	assert.True(t, g.Visible)
	a := g.AddFolder("a")
	g.AddFolder("b")
	assert.False(t, a.Open)

	got, ok := g.Folder("a")
	require.True(t, ok)
	assert.Same(t, a, got)
	_, ok = g.Folder("missing")
	assert.False(t, ok)

	v := float32(0)
	a.Add(&v, "n")
	c, ok := a.Controller("n")
	require.True(t, ok)
	assert.Equal(t, "n", c.Name())
	_, ok = a.Controller("none")
	assert.False(t, ok)
}
