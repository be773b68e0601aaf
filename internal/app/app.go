package app

import (
	"errors"
	"fmt"

	"sphere-scene/internal/camera"
	"sphere-scene/internal/clock"
	"sphere-scene/internal/config"
	"sphere-scene/internal/debug"
	"sphere-scene/internal/light"
	"sphere-scene/internal/loop"
	"sphere-scene/internal/scene"
	"sphere-scene/internal/viewport"
)

// ErrSurfaceNotFound is returned by New when the host has no surface for the configured selector.
var ErrSurfaceNotFound = errors.New("display surface not found")

// Surface is the drawable the scene renders into.
type Surface interface {
	Size() (width, height int)
	PixelRatio() float32
}

// Host provides the display surface and the refresh-synchronized frame scheduler.
type Host interface {
	loop.Scheduler
	Surface(selector string) (Surface, bool)
}

// Renderer draws frames and follows the viewport.
type Renderer interface {
	loop.Renderer
	viewport.Renderer
	Close() error
}

// Logger is the leveled logger the app reports through.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Overlay holds the on/off state of the stats overlay.
type Overlay struct {
	FPS bool
	Mem bool
}

// App owns every graphics resource of the scene and wires the render loop,
// resize handling and debug panel together. All methods run on the host's thread.
type App struct {
	Scene    *scene.Scene
	Controls *camera.OrbitControls
	GUI      *debug.GUI
	Light    *debug.LightBinding
	Panel    *debug.Panel
	Viewport *viewport.Handler
	Loop     *loop.Loop
	Overlay  Overlay

	cfg           config.Config
	configPath    string
	host          Host
	renderer      Renderer
	log           Logger
	lightDefaults light.PointLight
	started       bool
	closed        bool
}

// Option tweaks New.
type Option func(*options)

type options struct {
	clock      loop.Clock
	configPath string
}

// WithClock replaces the animation clock (tests).
func WithClock(c loop.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithConfigPath sets where `cmd config -save` writes.
func WithConfigPath(path string) Option {
	return func(o *options) { o.configPath = path }
}

// New checks that the display surface exists, assembles the scene, binds the debug panel,
// applies the initial viewport size and prepares the render loop. Nothing is drawn until Start.
func New(cfg config.Config, host Host, r Renderer, log Logger, opts ...Option) (*App, error) {
	o := options{configPath: config.DefaultPath}
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	surface, ok := host.Surface(cfg.Window.Selector)
	if !ok || surface == nil {
		return nil, fmt.Errorf("%w: no surface matches %q", ErrSurfaceNotFound, cfg.Window.Selector)
	}
	width, height := surface.Size()
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}

	scn, err := scene.Assemble(cfg.Scene, aspect)
	if err != nil {
		return nil, err
	}

	a := &App{
		Scene:         scn,
		Controls:      camera.NewOrbitControls(scn.Camera, cfg.Controls.OrbitConfig),
		GUI:           debug.NewGUI(),
		Overlay:       Overlay{FPS: cfg.Debug.ShowFPS, Mem: cfg.Debug.ShowMem},
		cfg:           cfg,
		configPath:    o.configPath,
		host:          host,
		renderer:      r,
		log:           log,
		lightDefaults: *scn.Light,
	}
	a.GUI.Visible = cfg.Debug.Panel
	a.Light = debug.BindPointLight(a.GUI, scn.Light)
	a.Panel = debug.NewPanel(a.GUI, debug.DefaultLayout())

	a.Viewport = viewport.NewHandler(scn.Camera, r, cfg.Renderer.MaxPixelRatio, log)
	a.Viewport.Resize(width, height, surface.PixelRatio())
	a.Panel.Place(float32(width))

	clk := o.clock
	if clk == nil {
		clk = clock.New()
	}
	a.Loop = loop.New(loop.Config{
		RotationSpeed:  cfg.Animation.RotationSpeed,
		UpdateControls: cfg.Controls.UpdateEachFrame,
	}, clk, scn, r, host, a.Controls, log)

	log.Infof("scene assembled: %d nodes, surface %q %dx%d", scn.Graph.Len(), cfg.Window.Selector, width, height)
	return a, nil
}

// Config returns the configuration the app was built with.
func (a *App) Config() config.Config {
	return a.cfg
}

// Start runs the first frame; the loop keeps itself scheduled from then on.
func (a *App) Start() {
	if a.started || a.closed {
		return
	}
	a.started = true
	a.Loop.Tick()
}

// Resize forwards a window resize event and re-anchors the panel, so hit-testing
// in the same frame already uses the new width.
func (a *App) Resize(width, height int, devicePixelRatio float32) {
	a.Viewport.Resize(width, height, devicePixelRatio)
	if width > 0 {
		a.Panel.Place(float32(width))
	}
}

// Input routes one frame of input: the panel sees the pointer first and the camera gets
// the movement only if the panel did not consume it.
func (a *App) Input(pointer debug.PointerEvent, cam camera.Input) {
	if a.Panel.Pointer(pointer) {
		return
	}
	if cam.Empty() {
		return
	}
	if cam.ViewportHeight <= 0 {
		cam.ViewportHeight = float32(a.Viewport.State().Height)
	}
	a.Controls.HandleInput(cam)
}

// Close stops the render loop and releases the renderer. Safe to call twice.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.Loop.Stop()
	if err := a.renderer.Close(); err != nil {
		return fmt.Errorf("close renderer: %w", err)
	}
	return nil
}
