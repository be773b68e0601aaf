package graphics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"sphere-scene/internal/camera"
	"sphere-scene/internal/config"
	"sphere-scene/internal/light"
	"sphere-scene/internal/rgb"
	"sphere-scene/internal/scene"
	"sphere-scene/internal/viewport"
)

// The helper is a coarse wire sphere, like a light gizmo rather than geometry.
const (
	helperRings  = 2
	helperSlices = 4
)

// Renderer draws a scene into an off-screen target sized to the drawing buffer and
// blits it to the window. Shader, material, meshes and target are created on first use, after the
// window/OpenGL context exists. Meshes are generated once per graph node.
type Renderer struct {
	viewport.Buffer

	alpha   bool
	target  rl.RenderTexture2D
	targetW int
	targetH int
	shader  *standardShader
	mtl     rl.Material
	meshes  map[uuid.UUID]rl.Mesh
	ready   bool
}

// NewRenderer returns a renderer configured by cfg. It allocates nothing yet.
func NewRenderer(cfg config.Renderer) *Renderer {
	return &Renderer{alpha: cfg.Alpha, meshes: make(map[uuid.UUID]rl.Mesh)}
}

// Render draws one frame by walking the scene graph. Must be called between BeginDrawing
// and EndDrawing (the host's frame callback).
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) error {
	w, h := r.DrawingBufferSize()
	if w <= 0 || h <= 0 {
		return nil // minimized
	}
	if err := r.ensureShader(); err != nil {
		return err
	}
	if err := r.ensureTarget(w, h); err != nil {
		return err
	}

	rl.BeginTextureMode(r.target)
	if r.alpha {
		rl.ClearBackground(rl.Blank)
	} else {
		rl.ClearBackground(rl.Black)
	}
	rl.BeginMode3D(toCamera3D(cam))
	// BeginMode3D derives its own projection; load ours so aspect and clip planes match exactly.
	rl.SetMatrixProjection(toMatrix(cam.ProjectionMatrix()))
	rl.SetMatrixModelview(toMatrix(cam.ViewMatrix()))

	err := s.Graph.Draw(&pass{r: r, viewPos: [3]float32(cam.Position), light: s.Light})

	rl.EndMode3D()
	rl.EndTextureMode()
	if err != nil {
		return err
	}

	// Render textures are stored bottom-up; a negative source height flips them.
	src := rl.NewRectangle(0, 0, float32(w), -float32(h))
	dst := rl.NewRectangle(0, 0, float32(r.Width), float32(r.Height))
	rl.DrawTexturePro(r.target.Texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	return nil
}

// pass draws the graph nodes of one frame.
type pass struct {
	r       *Renderer
	viewPos [3]float32
	light   *light.PointLight
}

func (p *pass) DrawMesh(id uuid.UUID, m *scene.Mesh) error {
	mesh, ok := p.r.meshes[id]
	if !ok {
		g := m.Geometry
		mesh = rl.GenMeshSphere(g.Radius, g.HeightSegments, g.WidthSegments)
		if mesh.VertexCount == 0 {
			return fmt.Errorf("generate sphere mesh for node %s", id)
		}
		p.r.meshes[id] = mesh
	}
	p.r.shader.setUniforms(p.viewPos, p.light, m.Material)
	rl.DrawMesh(mesh, p.r.mtl, toMatrix(modelMatrix(m)))
	return nil
}

func (p *pass) DrawHelper(h *light.Helper) {
	pos := h.Light.Position
	rl.DrawSphereWires(rl.NewVector3(pos[0], pos[1], pos[2]), h.Size, helperRings, helperSlices, toColor(h.Light.Color))
}

func (r *Renderer) ensureShader() error {
	if r.ready {
		return nil
	}
	sh, err := loadStandardShader()
	if err != nil {
		return err
	}
	r.shader = sh
	r.mtl = rl.LoadMaterialDefault()
	r.mtl.Shader = sh.shader
	r.ready = true
	return nil
}

// ensureTarget (re)creates the render texture when the drawing buffer size changed.
func (r *Renderer) ensureTarget(w, h int) error {
	if r.target.ID != 0 && r.targetW == w && r.targetH == h {
		return nil
	}
	if r.target.ID != 0 {
		rl.UnloadRenderTexture(r.target)
	}
	r.target = rl.LoadRenderTexture(int32(w), int32(h))
	if r.target.ID == 0 {
		return fmt.Errorf("create %dx%d render target", w, h)
	}
	r.targetW, r.targetH = w, h
	return nil
}

// Close releases GPU resources. The material owns the shader.
func (r *Renderer) Close() error {
	if r.target.ID != 0 {
		rl.UnloadRenderTexture(r.target)
		r.target = rl.RenderTexture2D{}
	}
	for id, m := range r.meshes {
		rl.UnloadMesh(&m)
		delete(r.meshes, id)
	}
	if r.ready {
		rl.UnloadMaterial(r.mtl)
		r.ready = false
	}
	return nil
}

// modelMatrix is translate × Rx × Ry × Rz (XYZ Euler order).
func modelMatrix(m *scene.Mesh) mgl32.Mat4 {
	rot := mgl32.HomogRotate3DX(m.Rotation[0]).
		Mul4(mgl32.HomogRotate3DY(m.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(m.Rotation[2]))
	return mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2]).Mul4(rot)
}

// toMatrix converts column-major mgl32 to raylib's Matrix, whose Mi fields follow the same indexing.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

func toCamera3D(c *camera.Perspective) rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(c.Position[0], c.Position[1], c.Position[2]),
		Target:     rl.NewVector3(c.Target[0], c.Target[1], c.Target[2]),
		Up:         rl.NewVector3(c.Up[0], c.Up[1], c.Up[2]),
		Fovy:       c.Fov,
		Projection: rl.CameraPerspective,
	}
}

func toColor(c rgb.Color) rl.Color {
	r, g, b := c.Bytes()
	return rl.NewColor(r, g, b, 255)
}
