package loop

import (
	"fmt"

	"sphere-scene/internal/camera"
	"sphere-scene/internal/scene"
)

// DefaultRotationSpeed is radians per second of sphere rotation about Y.
const DefaultRotationSpeed = 0.5

// Scheduler runs fn once before the next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// Renderer draws the scene from cam.
type Renderer interface {
	Render(s *scene.Scene, cam *camera.Perspective) error
}

// Clock reports seconds since start; it never decreases.
type Clock interface {
	ElapsedTime() float64
}

// Controls is updated every frame when Config.UpdateControls is set.
type Controls interface {
	Update() bool
}

// Logger receives render failures.
type Logger interface {
	Errorf(format string, args ...any)
}

// Config configures a Loop.
type Config struct {
	// RotationSpeed is k in angle = k × elapsed seconds.
	RotationSpeed float64
	// UpdateControls calls Controls.Update each tick, which is what makes damped orbiting coast.
	UpdateControls bool
}

// RotationAngle returns speed × elapsed. It depends only on wall-clock time, not on frame rate.
func RotationAngle(speed, elapsed float64) float64 {
	return speed * elapsed
}

// Loop redraws the scene once per display refresh and spins the sphere from absolute elapsed time.
// It reschedules itself after every successful frame until Stop is called or a render fails.
type Loop struct {
	cfg       Config
	clock     Clock
	scene     *scene.Scene
	renderer  Renderer
	scheduler Scheduler
	controls  Controls
	log       Logger

	angle   float64
	frames  uint64
	stopped bool
	err     error
}

// New returns a loop; controls and log may be nil.
func New(cfg Config, clk Clock, s *scene.Scene, r Renderer, sched Scheduler, controls Controls, log Logger) *Loop {
	return &Loop{
		cfg:       cfg,
		clock:     clk,
		scene:     s,
		renderer:  r,
		scheduler: sched,
		controls:  controls,
		log:       log,
	}
}

// Tick runs one frame and reschedules itself.
func (l *Loop) Tick() {
	if l.stopped {
		return
	}
	elapsed := l.clock.ElapsedTime()
	l.angle = RotationAngle(l.cfg.RotationSpeed, elapsed)
	l.scene.Sphere.Rotation[1] = float32(l.angle)

	if l.cfg.UpdateControls && l.controls != nil {
		l.controls.Update()
	}

	if err := l.renderer.Render(l.scene, l.scene.Camera); err != nil {
		l.err = fmt.Errorf("render frame %d: %w", l.frames, err)
		l.stopped = true
		if l.log != nil {
			l.log.Errorf("%v; render loop stopped", l.err)
		}
		return
	}
	l.frames++
	l.scheduler.RequestFrame(l.Tick)
}

// SetUpdateControls toggles the per-frame controls update.
func (l *Loop) SetUpdateControls(on bool) {
	l.cfg.UpdateControls = on
}

// UpdateControls reports whether controls are updated each tick.
func (l *Loop) UpdateControls() bool {
	return l.cfg.UpdateControls
}

// Stop prevents any further rescheduling. A frame already queued becomes a no-op.
func (l *Loop) Stop() {
	l.stopped = true
}

// Stopped reports whether the loop will not run again.
func (l *Loop) Stopped() bool {
	return l.stopped
}

// Angle returns the rotation applied by the last tick.
func (l *Loop) Angle() float64 {
	return l.angle
}

// Frames returns the number of frames rendered.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Err returns the render error that stopped the loop, if any.
func (l *Loop) Err() error {
	return l.err
}
