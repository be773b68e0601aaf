package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Perspective is a perspective camera. Fov is the vertical field of view in degrees.
// The projection matrix is cached: changing Fov, Aspect, Near or Far has no effect on
// ProjectionMatrix until UpdateProjectionMatrix is called.
type Perspective struct {
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	projection mgl32.Mat4
	stale      bool
}

// NewPerspective returns a camera at the origin looking down -Z with Y up, projection computed.
func NewPerspective(fov, aspect, near, far float32) *Perspective {
	c := &Perspective{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Target: mgl32.Vec3{0, 0, -1},
		Up:     mgl32.Vec3{0, 1, 0},
	}
	c.UpdateProjectionMatrix()
	return c
}

// SetAspect changes the aspect ratio and marks the projection stale.
func (c *Perspective) SetAspect(aspect float32) {
	if c.Aspect != aspect {
		c.stale = true
	}
	c.Aspect = aspect
}

// UpdateProjectionMatrix recomputes the projection from Fov, Aspect, Near and Far.
func (c *Perspective) UpdateProjectionMatrix() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
	c.stale = false
}

// ProjectionStale reports whether SetAspect changed the aspect since the last recompute.
func (c *Perspective) ProjectionStale() bool {
	return c.stale
}

// ProjectionMatrix returns the last computed projection.
func (c *Perspective) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// ViewMatrix returns the world-to-camera transform.
func (c *Perspective) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// LookAt points the camera at target.
func (c *Perspective) LookAt(target mgl32.Vec3) {
	c.Target = target
}

// Basis returns the camera's right and up vectors in world space.
func (c *Perspective) Basis() (right, up mgl32.Vec3) {
	forward := c.Target.Sub(c.Position)
	if forward.Len() == 0 {
		return mgl32.Vec3{1, 0, 0}, c.Up
	}
	forward = forward.Normalize()
	right = forward.Cross(c.Up)
	if right.Len() == 0 {
		right = mgl32.Vec3{1, 0, 0}
	} else {
		right = right.Normalize()
	}
	up = right.Cross(forward).Normalize()
	return right, up
}
