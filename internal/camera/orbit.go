package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// polarEpsilon keeps phi away from the poles so LookAt never degenerates.
const polarEpsilon = 1e-6

// OrbitConfig configures OrbitControls. Zero speeds fall back to 1.
type OrbitConfig struct {
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float32 `yaml:"damping_factor"`
	RotateSpeed   float32 `yaml:"rotate_speed"`
	ZoomSpeed     float32 `yaml:"zoom_speed"`
	PanSpeed      float32 `yaml:"pan_speed"`
	MinDistance   float32 `yaml:"min_distance"`
	MaxDistance   float32 `yaml:"max_distance"` // 0 = unbounded
}

// DefaultOrbitConfig returns damping enabled with factor 0.05 and unit speeds.
func DefaultOrbitConfig() OrbitConfig {
	return OrbitConfig{
		EnableDamping: true,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		PanSpeed:      1,
	}
}

// Input is one frame of pointer input already routed to the camera (not consumed by an overlay).
// Rotate and Pan are pointer deltas in pixels while the matching button is held.
// Wheel > 0 zooms in.
type Input struct {
	ViewportHeight float32
	Rotate         [2]float32
	Pan            [2]float32
	Wheel          float32
}

// Empty reports whether in carries no camera movement.
func (in Input) Empty() bool {
	return in.Rotate == [2]float32{} && in.Pan == [2]float32{} && in.Wheel == 0
}

// OrbitControls orbits a camera around Target on a sphere. Input handlers accumulate
// deltas and call Update once per event; with damping enabled each Update applies only
// DampingFactor of the pending delta and decays the rest, so inertia needs Update every frame.
type OrbitControls struct {
	Enabled bool
	Target  mgl32.Vec3
	cfg     OrbitConfig
	cam     *Perspective

	deltaTheta float32
	deltaPhi   float32
	scale      float32
	pan        mgl32.Vec3
}

// NewOrbitControls attaches controls to cam orbiting its current Target.
func NewOrbitControls(cam *Perspective, cfg OrbitConfig) *OrbitControls {
	if cfg.RotateSpeed == 0 {
		cfg.RotateSpeed = 1
	}
	if cfg.ZoomSpeed == 0 {
		cfg.ZoomSpeed = 1
	}
	if cfg.PanSpeed == 0 {
		cfg.PanSpeed = 1
	}
	return &OrbitControls{
		Enabled: true,
		Target:  cam.Target,
		cfg:     cfg,
		cam:     cam,
		scale:   1,
	}
}

// Config returns the active configuration.
func (o *OrbitControls) Config() OrbitConfig {
	return o.cfg
}

// SetDamping toggles damping at runtime.
func (o *OrbitControls) SetDamping(enabled bool) {
	o.cfg.EnableDamping = enabled
}

// HandleInput applies one input event and runs Update. Returns whether the camera moved.
func (o *OrbitControls) HandleInput(in Input) bool {
	if !o.Enabled || in.Empty() {
		return false
	}
	h := in.ViewportHeight
	if h <= 0 {
		h = 1
	}
	if in.Rotate != [2]float32{} {
		o.deltaTheta -= 2 * math32.Pi * in.Rotate[0] / h * o.cfg.RotateSpeed
		o.deltaPhi -= 2 * math32.Pi * in.Rotate[1] / h * o.cfg.RotateSpeed
	}
	if in.Pan != [2]float32{} {
		o.addPan(in.Pan[0], in.Pan[1], h)
	}
	if in.Wheel != 0 {
		zoom := math32.Pow(0.95, o.cfg.ZoomSpeed)
		if in.Wheel > 0 {
			o.scale *= zoom
		} else {
			o.scale /= zoom
		}
	}
	return o.Update()
}

// addPan converts a pixel delta into a world-space target offset at the target's depth.
func (o *OrbitControls) addPan(dx, dy, h float32) {
	distance := o.cam.Position.Sub(o.Target).Len()
	distance *= math32.Tan(mgl32.DegToRad(o.cam.Fov) / 2)
	right, up := o.cam.Basis()
	left := right.Mul(-2 * dx * distance / h * o.cfg.PanSpeed)
	upward := up.Mul(2 * dy * distance / h * o.cfg.PanSpeed)
	o.pan = o.pan.Add(left).Add(upward)
}

// Pending reports whether damped motion remains to be applied.
func (o *OrbitControls) Pending() bool {
	const eps = 1e-6
	return math32.Abs(o.deltaTheta) > eps || math32.Abs(o.deltaPhi) > eps || o.pan.Len() > eps
}

// Update moves the camera by the pending deltas. Returns whether the camera moved.
func (o *OrbitControls) Update() bool {
	offset := o.cam.Position.Sub(o.Target)
	radius := offset.Len()
	theta := math32.Atan2(offset.X(), offset.Z())
	phi := float32(0)
	if radius > 0 {
		phi = math32.Acos(clamp(offset.Y()/radius, -1, 1))
	}

	factor := float32(1)
	if o.cfg.EnableDamping {
		factor = o.cfg.DampingFactor
	}
	theta += o.deltaTheta * factor
	phi += o.deltaPhi * factor
	phi = clamp(phi, polarEpsilon, math32.Pi-polarEpsilon)

	radius *= o.scale
	radius = math32.Max(radius, o.cfg.MinDistance)
	if o.cfg.MaxDistance > 0 {
		radius = math32.Min(radius, o.cfg.MaxDistance)
	}
	o.Target = o.Target.Add(o.pan.Mul(factor))

	sinPhi := math32.Sin(phi)
	offset = mgl32.Vec3{
		radius * sinPhi * math32.Sin(theta),
		radius * math32.Cos(phi),
		radius * sinPhi * math32.Cos(theta),
	}
	before := o.cam.Position
	o.cam.Position = o.Target.Add(offset)
	o.cam.LookAt(o.Target)

	if o.cfg.EnableDamping {
		o.deltaTheta *= 1 - o.cfg.DampingFactor
		o.deltaPhi *= 1 - o.cfg.DampingFactor
		o.pan = o.pan.Mul(1 - o.cfg.DampingFactor)
	} else {
		o.deltaTheta, o.deltaPhi = 0, 0
		o.pan = mgl32.Vec3{}
	}
	o.scale = 1

	return o.cam.Position.Sub(before).Len() > 1e-6
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
