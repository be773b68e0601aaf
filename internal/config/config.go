package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"sphere-scene/internal/camera"
	"sphere-scene/internal/scene"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/scene.yaml"

// ErrInvalid is wrapped by validation and env override failures.
var ErrInvalid = errors.New("config: invalid")

// Window configures the host window.
type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"` // 0 = uncapped, vsync only
	// Selector names the display surface the scene draws into. The host registers its window
	// under this name; the app refuses to start if it cannot be found.
	Selector string `yaml:"selector"`
}

// Renderer configures output.
type Renderer struct {
	Alpha         bool    `yaml:"alpha"` // clear to transparent instead of opaque black
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"`
	Antialias     bool    `yaml:"antialias"`
}

// Controls configures the orbit controls.
type Controls struct {
	camera.OrbitConfig `yaml:",inline"`
	// UpdateEachFrame makes the render loop call the controls' Update every frame.
	// Off by default: damping is configured but inert, as the scene has always shipped.
	UpdateEachFrame bool `yaml:"update_each_frame"`
}

// Animation configures the sphere spin.
type Animation struct {
	RotationSpeed float64 `yaml:"rotation_speed"` // radians per second
}

// Debug configures development aids.
type Debug struct {
	Panel   bool   `yaml:"panel"`
	ShowFPS bool   `yaml:"show_fps"`
	ShowMem bool   `yaml:"show_mem"`
	Verbose bool   `yaml:"verbose"`
	LogPath string `yaml:"log_path"`
	// Stylesheet overrides the built-in overlay stylesheet when set.
	Stylesheet string `yaml:"stylesheet"`
	// Font is a font name searched under assets/fonts; empty takes the first font found.
	Font string `yaml:"font"`
}

// Config is everything the program reads at startup.
type Config struct {
	Window    Window        `yaml:"window"`
	Renderer  Renderer      `yaml:"renderer"`
	Scene     scene.Options `yaml:"scene"`
	Controls  Controls      `yaml:"controls"`
	Animation Animation     `yaml:"animation"`
	Debug     Debug         `yaml:"debug"`
}

// Default returns the shipped configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:     "sphere-scene",
			Width:     1280,
			Height:    720,
			TargetFPS: 0,
			Selector:  "canvas.webgl",
		},
		Renderer: Renderer{
			Alpha:         true,
			MaxPixelRatio: 2,
			Antialias:     true,
		},
		Scene:     scene.DefaultOptions(),
		Controls:  Controls{OrbitConfig: camera.DefaultOrbitConfig()},
		Animation: Animation{RotationSpeed: 0.5},
		Debug: Debug{
			Panel:   true,
			LogPath: "logs/scene.txt",
		},
	}
}

// Load reads path over Default(): keys missing from the file keep their defaults.
// A missing file returns Default() without error; a malformed or invalid file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the program cannot run without.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.Selector == "":
		return fmt.Errorf("%w: empty surface selector", ErrInvalid)
	case c.Window.TargetFPS < 0:
		return fmt.Errorf("%w: target fps %d", ErrInvalid, c.Window.TargetFPS)
	case c.Renderer.MaxPixelRatio <= 0:
		return fmt.Errorf("%w: max pixel ratio %v", ErrInvalid, c.Renderer.MaxPixelRatio)
	case math.IsNaN(c.Animation.RotationSpeed) || math.IsInf(c.Animation.RotationSpeed, 0):
		return fmt.Errorf("%w: rotation speed %v", ErrInvalid, c.Animation.RotationSpeed)
	case c.Controls.EnableDamping && (c.Controls.DampingFactor <= 0 || c.Controls.DampingFactor > 1):
		return fmt.Errorf("%w: damping factor %v outside (0,1]", ErrInvalid, c.Controls.DampingFactor)
	case c.Controls.MaxDistance != 0 && c.Controls.MaxDistance < c.Controls.MinDistance:
		return fmt.Errorf("%w: max distance below min distance", ErrInvalid)
	}
	if err := c.Scene.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Environment keys read by ApplyEnv.
const (
	EnvPath          = "SCENE_CONFIG"
	EnvDebug         = "SCENE_DEBUG"
	EnvLog           = "SCENE_LOG"
	EnvPanel         = "SCENE_PANEL"
	EnvSelector      = "SCENE_SELECTOR"
	EnvRotationSpeed = "SCENE_ROTATION_SPEED"
)

// ApplyEnv overrides fields from environment variables read through lookup (os.LookupEnv in main).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvDebug, v)
		}
		c.Debug.Verbose = b
	}
	if v, ok := lookup(EnvPanel); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvPanel, v)
		}
		c.Debug.Panel = b
	}
	if v, ok := lookup(EnvLog); ok && v != "" {
		c.Debug.LogPath = v
	}
	if v, ok := lookup(EnvSelector); ok && v != "" {
		c.Window.Selector = v
	}
	if v, ok := lookup(EnvRotationSpeed); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvRotationSpeed, v)
		}
		c.Animation.RotationSpeed = f
	}
	return c.Validate()
}
