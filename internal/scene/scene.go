package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"sphere-scene/internal/camera"
	"sphere-scene/internal/light"
	"sphere-scene/internal/rgb"
)

// ErrInvalidOptions is wrapped by every Options validation failure.
var ErrInvalidOptions = errors.New("scene: invalid options")

// SphereGeometry describes a UV sphere.
type SphereGeometry struct {
	Radius         float32 `yaml:"radius"`
	WidthSegments  int     `yaml:"width_segments"`  // around the equator (slices)
	HeightSegments int     `yaml:"height_segments"` // pole to pole (rings)
}

// StandardMaterial is a metal/rough surface.
type StandardMaterial struct {
	Color     rgb.Color `yaml:"color"`     // base color
	Metalness float32   `yaml:"metalness"` // surface reflectivity weight, 0 dielectric to 1 metal
	Roughness float32   `yaml:"roughness"` // microfacet scatter weight, 0 mirror to 1 fully diffuse highlight
}

// LightOptions configures the point light and its helper.
type LightOptions struct {
	Color      rgb.Color  `yaml:"color"`
	Intensity  float32    `yaml:"intensity"`
	Position   mgl32.Vec3 `yaml:"position"`
	Distance   float32    `yaml:"distance"` // 0 = no attenuation
	Decay      float32    `yaml:"decay"`
	HelperSize float32    `yaml:"helper_size"` // wire sphere radius, 0 hides the helper
}

// CameraOptions configures the perspective camera.
type CameraOptions struct {
	Fov      float32    `yaml:"fov"` // vertical, degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position mgl32.Vec3 `yaml:"position"`
	Target   mgl32.Vec3 `yaml:"target"`
}

// Options holds every literal that goes into the scene.
type Options struct {
	Sphere   SphereGeometry   `yaml:"sphere"`
	Material StandardMaterial `yaml:"material"`
	Light    LightOptions     `yaml:"light"`
	Camera   CameraOptions    `yaml:"camera"`
}

// DefaultOptions returns a 0.5 radius 32×32 sphere (metalness 0.5, roughness 0.9, white),
// a white 0.6 point light at (4,4,4) with a size 1 helper, and a 75° camera at (0,0,2)
// with near 0.1 and far 100.
func DefaultOptions() Options {
	return Options{
		Sphere: SphereGeometry{Radius: 0.5, WidthSegments: 32, HeightSegments: 32},
		Material: StandardMaterial{
			Color:     0xffffff,
			Metalness: 0.5,
			Roughness: 0.9,
		},
		Light: LightOptions{
			Color:      0xffffff,
			Intensity:  0.6,
			Position:   mgl32.Vec3{4, 4, 4},
			Decay:      2,
			HelperSize: 1,
		},
		Camera: CameraOptions{
			Fov:      75,
			Near:     0.1,
			Far:      100,
			Position: mgl32.Vec3{0, 0, 2},
		},
	}
}

// Validate checks ranges the renderer depends on.
func (o Options) Validate() error {
	switch {
	case o.Sphere.Radius <= 0:
		return fmt.Errorf("%w: sphere radius %v must be positive", ErrInvalidOptions, o.Sphere.Radius)
	case o.Sphere.WidthSegments < 3 || o.Sphere.HeightSegments < 2:
		return fmt.Errorf("%w: sphere needs at least 3×2 segments, got %d×%d", ErrInvalidOptions, o.Sphere.WidthSegments, o.Sphere.HeightSegments)
	case o.Material.Metalness < 0 || o.Material.Metalness > 1:
		return fmt.Errorf("%w: metalness %v outside [0,1]", ErrInvalidOptions, o.Material.Metalness)
	case o.Material.Roughness < 0 || o.Material.Roughness > 1:
		return fmt.Errorf("%w: roughness %v outside [0,1]", ErrInvalidOptions, o.Material.Roughness)
	case !o.Material.Color.Valid() || !o.Light.Color.Valid():
		return fmt.Errorf("%w: color out of range", ErrInvalidOptions)
	case o.Light.Intensity < 0 || o.Light.Distance < 0 || o.Light.HelperSize < 0:
		return fmt.Errorf("%w: light intensity, distance and helper size must not be negative", ErrInvalidOptions)
	case o.Camera.Fov <= 0 || o.Camera.Fov >= 180:
		return fmt.Errorf("%w: fov %v outside (0,180)", ErrInvalidOptions, o.Camera.Fov)
	case o.Camera.Near <= 0 || o.Camera.Far <= o.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalidOptions, o.Camera.Near, o.Camera.Far)
	case o.Camera.Position == o.Camera.Target:
		return fmt.Errorf("%w: camera position equals its target", ErrInvalidOptions)
	}
	return nil
}

// Mesh is a sphere with a material. Rotation is XYZ Euler angles in radians.
type Mesh struct {
	Geometry SphereGeometry
	Material StandardMaterial
	Position mgl32.Vec3
	Rotation mgl32.Vec3
}

// Scene is the assembled graph plus direct handles to the objects the loop and panel touch.
type Scene struct {
	Graph  Graph
	Sphere *Mesh
	Light  *light.PointLight
	Helper *light.Helper
	Camera *camera.Perspective
}

// Assemble builds the scene once. aspect is the initial surface width/height.
func Assemble(opts Options, aspect float32) (*Scene, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{}

	s.Sphere = &Mesh{Geometry: opts.Sphere, Material: opts.Material}
	s.Graph.Add("sphere", s.Sphere)

	s.Light = NewLight(opts.Light)
	s.Graph.Add("pointLight", s.Light)

	if opts.Light.HelperSize > 0 {
		s.Helper = light.NewHelper(s.Light, opts.Light.HelperSize)
		s.Graph.Add("pointLightHelper", s.Helper)
	}

	s.Camera = camera.NewPerspective(opts.Camera.Fov, aspect, opts.Camera.Near, opts.Camera.Far)
	s.Camera.Position = opts.Camera.Position
	s.Camera.LookAt(opts.Camera.Target)
	s.Graph.Add("camera", s.Camera)

	return s, nil
}

// NewLight builds the point light described by opts.
func NewLight(opts LightOptions) *light.PointLight {
	l := light.NewPointLight(opts.Color, opts.Intensity)
	l.Position = opts.Position
	l.Distance = opts.Distance
	l.Decay = opts.Decay
	return l
}
