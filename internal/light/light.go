package light

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jinzhu/copier"

	"sphere-scene/internal/rgb"
)

// PointLight emits from Position in all directions.
// Distance 0 means no attenuation; otherwise light falls off to zero at Distance with exponent Decay.
// The debug panel writes Position and Color while the render path reads them every frame.
type PointLight struct {
	Position  mgl32.Vec3
	Color     rgb.Color
	Intensity float32
	Distance  float32
	Decay     float32
}

// NewPointLight returns a light at the origin with the given color and intensity, decay 2.
func NewPointLight(color rgb.Color, intensity float32) *PointLight {
	return &PointLight{
		Color:     color,
		Intensity: intensity,
		Decay:     2,
	}
}

// Radiance returns color × intensity, the value uploaded as the shader's light color.
func (l *PointLight) Radiance() [3]float32 {
	c := l.Color.Floats()
	return [3]float32{c[0] * l.Intensity, c[1] * l.Intensity, c[2] * l.Intensity}
}

// Reset overwrites every field with the values in defaults. The light pointer stays the same
// so the helper and panel bindings keep following it.
func (l *PointLight) Reset(defaults PointLight) error {
	if err := copier.Copy(l, &defaults); err != nil {
		return fmt.Errorf("reset point light: %w", err)
	}
	return nil
}

// Helper draws a wireframe sphere of Size around a light, tinted with the light's color.
type Helper struct {
	Light *PointLight
	Size  float32
}

// NewHelper returns a helper following l.
func NewHelper(l *PointLight, size float32) *Helper {
	return &Helper{Light: l, Size: size}
}
