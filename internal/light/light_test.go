package light

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPointLight(t *testing.T) {
	l := NewPointLight(0xffffff, 0.6)
	assert.Equal(t, float32(2), l.Decay)
	assert.Equal(t, float32(0), l.Distance)
	r := l.Radiance()
	assert.InDeltaSlice(t, []float32{0.6, 0.6, 0.6}, r[:], 1e-6)
}

func TestReset_KeepsPointerRestoresFields(t *testing.T) {
	defaults := *NewPointLight(0xffffff, 0.6)
	defaults.Position = mgl32.Vec3{4, 4, 4}

	l := NewPointLight(0xffffff, 0.6)
	*l = defaults
	h := NewHelper(l, 1)

	l.Position = mgl32.Vec3{-1, 2, 0.5}
	l.Color = 0xff0000
	l.Intensity = 3

	require.NoError(t, l.Reset(defaults))
	assert.Equal(t, defaults, *l)
	assert.Same(t, l, h.Light)
	assert.Equal(t, mgl32.Vec3{4, 4, 4}, h.Light.Position)
}
