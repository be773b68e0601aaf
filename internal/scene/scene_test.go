package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sphere-scene/internal/camera"
	"sphere-scene/internal/light"
	"sphere-scene/internal/rgb"
)

func TestAssemble_Defaults(t *testing.T) {
	s, err := Assemble(DefaultOptions(), 800.0/600.0)
	require.NoError(t, err)

	assert.Equal(t, SphereGeometry{Radius: 0.5, WidthSegments: 32, HeightSegments: 32}, s.Sphere.Geometry)
	assert.Equal(t, float32(0.5), s.Sphere.Material.Metalness)
	assert.Equal(t, float32(0.9), s.Sphere.Material.Roughness)
	assert.Equal(t, rgb.Color(0xffffff), s.Sphere.Material.Color)
	assert.Equal(t, mgl32.Vec3{}, s.Sphere.Rotation)

	assert.Equal(t, rgb.Color(0xffffff), s.Light.Color)
	assert.Equal(t, float32(0.6), s.Light.Intensity)
	assert.Equal(t, mgl32.Vec3{4, 4, 4}, s.Light.Position)

	require.NotNil(t, s.Helper)
	assert.Same(t, s.Light, s.Helper.Light)
	assert.Equal(t, float32(1), s.Helper.Size)

	assert.Equal(t, float32(75), s.Camera.Fov)
	assert.Equal(t, float32(0.1), s.Camera.Near)
	assert.Equal(t, float32(100), s.Camera.Far)
	assert.Equal(t, float32(800.0/600.0), s.Camera.Aspect)
	assert.Equal(t, mgl32.Vec3{0, 0, 2}, s.Camera.Position)
	assert.Equal(t, mgl32.Vec3{}, s.Camera.Target)
}

func TestAssemble_GraphOrderAndIDs(t *testing.T) {
	s, err := Assemble(DefaultOptions(), 1)
	require.NoError(t, err)
	require.Equal(t, 4, s.Graph.Len())

	var names []string
	ids := map[uuid.UUID]bool{}
	s.Graph.Each(func(n Node) {
		names = append(names, n.Name)
		ids[n.ID] = true
	})
	assert.Equal(t, []string{"sphere", "pointLight", "pointLightHelper", "camera"}, names)
	assert.Len(t, ids, 4)
}

func TestAssemble_ObjectsInGraph(t *testing.T) {
	s, err := Assemble(DefaultOptions(), 1)
	require.NoError(t, err)

	var meshes, lights, helpers, cams int
	s.Graph.Each(func(n Node) {
		switch n.Object.(type) {
		case *Mesh:
			meshes++
		case *light.PointLight:
			lights++
		case *light.Helper:
			helpers++
		case *camera.Perspective:
			cams++
		}
	})
	assert.Equal(t, []int{1, 1, 1, 1}, []int{meshes, lights, helpers, cams})
}

func TestAssemble_NoHelper(t *testing.T) {
	opts := DefaultOptions()
	opts.Light.HelperSize = 0
	s, err := Assemble(opts, 1)
	require.NoError(t, err)
	assert.Nil(t, s.Helper)
	assert.Equal(t, 3, s.Graph.Len())
}

func TestOptions_Validate(t *testing.T) {
	mutations := map[string]func(*Options){
		"radius":    func(o *Options) { o.Sphere.Radius = 0 },
		"segments":  func(o *Options) { o.Sphere.WidthSegments = 2 },
		"metalness": func(o *Options) { o.Material.Metalness = 1.5 },
		"roughness": func(o *Options) { o.Material.Roughness = -0.1 },
		"color":     func(o *Options) { o.Light.Color = 0x1000000 },
		"intensity": func(o *Options) { o.Light.Intensity = -1 },
		"fov":       func(o *Options) { o.Camera.Fov = 180 },
		"near":      func(o *Options) { o.Camera.Near = 0 },
		"far":       func(o *Options) { o.Camera.Far = 0.05 },
		"target":    func(o *Options) { o.Camera.Target = o.Camera.Position },
	}
	for name, mutate := range mutations {
		opts := DefaultOptions()
		mutate(&opts)
		_, err := Assemble(opts, 1)
		assert.ErrorIs(t, err, ErrInvalidOptions, name)
	}
	assert.NoError(t, DefaultOptions().Validate())
}

type recordingDrawer struct {
	order   []string
	meshIDs []uuid.UUID
	helpers []*light.Helper
	err     error
}

func (d *recordingDrawer) DrawMesh(id uuid.UUID, m *Mesh) error {
	d.order = append(d.order, "mesh")
	d.meshIDs = append(d.meshIDs, id)
	return d.err
}

func (d *recordingDrawer) DrawHelper(h *light.Helper) {
	d.order = append(d.order, "helper")
	d.helpers = append(d.helpers, h)
}

func TestGraphDraw_WalksDrawableNodesInOrder(t *testing.T) {
	s, err := Assemble(DefaultOptions(), 1)
	require.NoError(t, err)

	d := &recordingDrawer{}
	require.NoError(t, s.Graph.Draw(d))
	assert.Equal(t, []string{"mesh", "helper"}, d.order)
	assert.Equal(t, []*light.Helper{s.Helper}, d.helpers)

	require.Len(t, d.meshIDs, 1)
	n, ok := s.Graph.Get(d.meshIDs[0])
	require.True(t, ok)
	assert.Same(t, s.Sphere, n.Object)

	// ids are stable across frames so mesh resources can be cached by them
	again := &recordingDrawer{}
	require.NoError(t, s.Graph.Draw(again))
	assert.Equal(t, d.meshIDs, again.meshIDs)
}

func TestGraphDraw_AddedMeshIsDrawn(t *testing.T) {
	s, err := Assemble(DefaultOptions(), 1)
	require.NoError(t, err)
	id := s.Graph.Add("extra", &Mesh{Geometry: s.Sphere.Geometry})

	d := &recordingDrawer{}
	require.NoError(t, s.Graph.Draw(d))
	assert.Equal(t, []string{"mesh", "helper", "mesh"}, d.order)
	assert.Equal(t, id, d.meshIDs[1])
}

func TestGraphDraw_StopsOnMeshError(t *testing.T) {
	s, err := Assemble(DefaultOptions(), 1)
	require.NoError(t, err)

	boom := errors.New("no mesh")
	d := &recordingDrawer{err: boom}
	assert.ErrorIs(t, s.Graph.Draw(d), boom)
	assert.Equal(t, []string{"mesh"}, d.order)
}

func TestGraphGet_Unknown(t *testing.T) {
	var g Graph
	_, ok := g.Get(uuid.New())
	assert.False(t, ok)
}
