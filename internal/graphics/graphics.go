package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"sphere-scene/internal/app"
	"sphere-scene/internal/camera"
	"sphere-scene/internal/config"
	"sphere-scene/internal/debug"
)

// Window is the raylib window seen as a display surface. Sizes are logical (screen) pixels.
type Window struct{}

func (Window) Size() (width, height int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (Window) PixelRatio() float32 {
	return rl.GetWindowScaleDPI().X
}

// Input is one frame of mouse state, as the panel and the orbit controls want it.
type Input struct {
	Pointer debug.PointerEvent
	Camera  camera.Input
}

// Host owns the window and drives frames. Each frame it polls resize, runs update hooks,
// dispatches input, runs the queued frame callback and then draws overlays on top.
// Everything runs on the thread that called Run.
type Host struct {
	window    config.Window
	antialias bool
	surfaces  map[string]app.Surface
	pending   func()

	onResize func(width, height int, devicePixelRatio float32)
	onInput  func(Input)
	updates  []func()
	overlays []func()

	lastW, lastH int
	lastDPR      float32
	open         bool
}

// NewHost returns a host for the configured window. Call Open before looking up surfaces.
func NewHost(w config.Window, r config.Renderer) *Host {
	return &Host{window: w, antialias: r.Antialias, surfaces: make(map[string]app.Surface)}
}

// Open creates the resizable high-DPI window and registers it under the configured selector.
func (h *Host) Open() {
	flags := uint32(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagVsyncHint)
	if h.antialias {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(h.window.Width), int32(h.window.Height), h.window.Title)
	if h.window.TargetFPS > 0 {
		rl.SetTargetFPS(int32(h.window.TargetFPS))
	}
	h.open = true
	h.surfaces[h.window.Selector] = Window{}
	h.lastW, h.lastH = Window{}.Size()
	h.lastDPR = Window{}.PixelRatio()
}

// Surface returns the surface registered under selector.
func (h *Host) Surface(selector string) (app.Surface, bool) {
	s, ok := h.surfaces[selector]
	return s, ok
}

// RequestFrame queues fn for the next display frame. Only one callback is kept; a second
// request in the same frame replaces the first.
func (h *Host) RequestFrame(fn func()) {
	h.pending = fn
}

// OnResize sets the resize listener. It fires when the window size or its DPI scale changes.
func (h *Host) OnResize(fn func(width, height int, devicePixelRatio float32)) {
	h.onResize = fn
}

// OnInput sets the per-frame mouse listener.
func (h *Host) OnInput(fn func(Input)) {
	h.onInput = fn
}

// OnUpdate adds a hook run every frame before input dispatch (keyboard handling).
func (h *Host) OnUpdate(fn func()) {
	h.updates = append(h.updates, fn)
}

// AddOverlay adds a 2D draw hook run after the scene, in the order added.
func (h *Host) AddOverlay(fn func()) {
	h.overlays = append(h.overlays, fn)
}

// Run drives frames until the window is closed.
func (h *Host) Run() {
	for !rl.WindowShouldClose() {
		h.pollResize()
		for _, fn := range h.updates {
			fn()
		}
		if h.onInput != nil {
			h.onInput(readInput())
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		if fn := h.pending; fn != nil {
			h.pending = nil
			fn()
		}
		for _, fn := range h.overlays {
			fn()
		}
		rl.EndDrawing()
	}
}

// Close closes the window. Release GPU resources before calling it.
func (h *Host) Close() {
	if !h.open {
		return
	}
	h.open = false
	rl.CloseWindow()
}

func (h *Host) pollResize() {
	w, ht := Window{}.Size()
	dpr := Window{}.PixelRatio()
	if !rl.IsWindowResized() && w == h.lastW && ht == h.lastH && dpr == h.lastDPR {
		return
	}
	h.lastW, h.lastH, h.lastDPR = w, ht, dpr
	if h.onResize != nil {
		h.onResize(w, ht, dpr)
	}
}

// readInput maps raylib mouse state: left drag rotates, right drag (or shift + left) pans, wheel dollies.
func readInput() Input {
	pos := rl.GetMousePosition()
	in := Input{Pointer: debug.PointerEvent{
		X:        pos.X,
		Y:        pos.Y,
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Down:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
	}}
	delta := rl.GetMouseDelta()
	d := [2]float32{delta.X, delta.Y}
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	switch {
	case rl.IsMouseButtonDown(rl.MouseButtonRight), in.Pointer.Down && shift:
		in.Camera.Pan = d
	case in.Pointer.Down:
		in.Camera.Rotate = d
	}
	in.Camera.Wheel = rl.GetMouseWheelMove()
	in.Camera.ViewportHeight = float32(rl.GetScreenHeight())
	return in
}
