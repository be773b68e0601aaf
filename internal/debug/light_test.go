package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sphere-scene/internal/light"
	"sphere-scene/internal/rgb"
)

func newBoundLight() (*light.PointLight, *LightBinding) {
	l := light.NewPointLight(0xffffff, 0.6)
	l.Position = mgl32.Vec3{4, 4, 4}
	return l, BindPointLight(NewGUI(), l)
}

func TestBindPointLight_Folder(t *testing.T) {
	_, b := newBoundLight()
	assert.Equal(t, "pointLight", b.Folder.Name)

	var names []string
	for _, c := range b.Folder.Controllers() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"x", "y", "z", "color"}, names)

	for _, c := range []*NumberController{b.X, b.Y, b.Z} {
		lo, hi, ok := c.Range()
		require.True(t, ok)
		assert.Equal(t, float32(-3), lo)
		assert.Equal(t, float32(3), hi)
		assert.Equal(t, float32(0.01), c.StepSize())
	}
}

func TestBindPointLight_PositionWritesLight(t *testing.T) {
	l, b := newBoundLight()
	assert.Equal(t, float32(4), b.X.Value())

	b.X.SetValue(1.5)
	b.Y.SetValue(-9)
	b.Z.SetValue(0.125)
	assert.InDelta(t, 1.5, l.Position.X(), 1e-6)
	assert.Equal(t, float32(-3), l.Position.Y())
	assert.InDelta(t, 0.13, l.Position.Z(), 1e-6)
}

func TestBindPointLight_ColorRoundTrip(t *testing.T) {
	l, b := newBoundLight()
	for _, v := range []rgb.Color{0x000000, 0xff0000, 0x00ff00, 0x0000ff, 0x123456, 0xffffff} {
		require.NoError(t, b.Color.SetValue(v))
		assert.Equal(t, v, l.Color)
		assert.Equal(t, v, b.Color.Value())
	}
}

func TestBindPointLight_Sync(t *testing.T) {
	l, b := newBoundLight()
	l.Color = 0xabcdef
	assert.Equal(t, rgb.Color(0xffffff), b.Color.Value())
	b.Sync()
	assert.Equal(t, rgb.Color(0xabcdef), b.Color.Value())
}
