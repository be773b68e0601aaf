package debug

import (
	"sphere-scene/internal/light"
	"sphere-scene/internal/rgb"
)

// Range and step of the light position sliders.
const (
	PositionMin  = -3
	PositionMax  = 3
	PositionStep = 0.01
)

// LightBinding is the "pointLight" folder. X, Y and Z write the light position directly.
// Color edits a separate value and copies it into the light from its change hook.
type LightBinding struct {
	Folder *Folder
	X      *NumberController
	Y      *NumberController
	Z      *NumberController
	Color  *ColorController

	light *light.PointLight
	color rgb.Color
}

// BindPointLight adds the pointLight folder for l to g.
func BindPointLight(g *GUI, l *light.PointLight) *LightBinding {
	b := &LightBinding{light: l, color: l.Color}
	b.Folder = g.AddFolder("pointLight")
	b.X = b.Folder.Add(&l.Position[0], "x").Min(PositionMin).Max(PositionMax).Step(PositionStep)
	b.Y = b.Folder.Add(&l.Position[1], "y").Min(PositionMin).Max(PositionMax).Step(PositionStep)
	b.Z = b.Folder.Add(&l.Position[2], "z").Min(PositionMin).Max(PositionMax).Step(PositionStep)
	b.Color = b.Folder.AddColor(&b.color, "color").OnChange(func(c rgb.Color) {
		l.Color = c
	})
	return b
}

// Sync reloads the color control from the light after the light was changed elsewhere (e.g. reset).
func (b *LightBinding) Sync() {
	b.color = b.light.Color
}
