package viewport

import (
	"github.com/chewxy/math32"
)

// DefaultMaxPixelRatio caps device pixel ratio scaling on high-density displays.
const DefaultMaxPixelRatio = 2

// State is the last observed window size in logical pixels.
type State struct {
	Width  int
	Height int
}

// Aspect returns Width/Height, or 0 when Height is 0.
func (s State) Aspect() float32 {
	if s.Height == 0 {
		return 0
	}
	return float32(s.Width) / float32(s.Height)
}

// Camera is the part of a camera the handler drives.
type Camera interface {
	SetAspect(aspect float32)
	UpdateProjectionMatrix()
}

// Renderer is the part of a renderer the handler drives.
type Renderer interface {
	SetSize(width, height int)
	SetPixelRatio(ratio float32)
}

// Logger receives one debug line per resize.
type Logger interface {
	Debugf(format string, args ...any)
}

// Handler keeps the camera projection and the renderer output in step with the window.
// Every Resize runs synchronously; there is no debouncing.
type Handler struct {
	MaxPixelRatio float32
	camera        Camera
	renderer      Renderer
	log           Logger
	state         State
}

// NewHandler returns a handler that caps the pixel ratio at maxPixelRatio (<= 0 means DefaultMaxPixelRatio).
func NewHandler(cam Camera, r Renderer, maxPixelRatio float32, log Logger) *Handler {
	if maxPixelRatio <= 0 {
		maxPixelRatio = DefaultMaxPixelRatio
	}
	return &Handler{MaxPixelRatio: maxPixelRatio, camera: cam, renderer: r, log: log}
}

// State returns the last size passed to Resize.
func (h *Handler) State() State {
	return h.state
}

// PixelRatio returns the ratio actually applied for devicePixelRatio.
func (h *Handler) PixelRatio(devicePixelRatio float32) float32 {
	if devicePixelRatio <= 0 {
		devicePixelRatio = 1
	}
	return math32.Min(devicePixelRatio, h.MaxPixelRatio)
}

// Resize records the new size, updates the camera aspect and projection, and resizes the renderer.
// A zero dimension (minimized window) leaves the camera untouched so the projection stays finite.
func (h *Handler) Resize(width, height int, devicePixelRatio float32) {
	h.state = State{Width: width, Height: height}
	if width > 0 && height > 0 {
		h.camera.SetAspect(h.state.Aspect())
		h.camera.UpdateProjectionMatrix()
	}
	ratio := h.PixelRatio(devicePixelRatio)
	h.renderer.SetSize(width, height)
	h.renderer.SetPixelRatio(ratio)
	if h.log != nil {
		h.log.Debugf("resize %dx%d pixel ratio %.2f (device %.2f)", width, height, ratio, devicePixelRatio)
	}
}

// Buffer tracks a renderer's logical size and pixel ratio. Renderers embed it.
type Buffer struct {
	Width      int
	Height     int
	PixelRatio float32
}

// SetSize sets the logical output size.
func (b *Buffer) SetSize(width, height int) {
	b.Width, b.Height = width, height
}

// SetPixelRatio sets the scale between logical and drawing-buffer pixels.
func (b *Buffer) SetPixelRatio(ratio float32) {
	b.PixelRatio = ratio
}

// DrawingBufferSize is the output resolution: logical size scaled by PixelRatio.
func (b *Buffer) DrawingBufferSize() (width, height int) {
	ratio := b.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	return int(math32.Floor(float32(b.Width) * ratio)), int(math32.Floor(float32(b.Height) * ratio))
}
