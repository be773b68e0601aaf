package app

import (
	"flag"
	"fmt"
	"strings"

	"sphere-scene/internal/commands"
	"sphere-scene/internal/config"
	"sphere-scene/internal/rgb"
)

// RegisterCommands adds the console commands. Light edits go through the panel controllers
// so clamping and change hooks behave exactly as when dragging a slider.
func (a *App) RegisterCommands(reg *commands.Registry) {
	reg.Register("light", "-x -y -z <-3..3> -color <#rrggbb|name> -intensity <n> -reset", a.lightCommand)
	reg.Register("panel", "-show <bool> (no flags toggles)", a.panelCommand)
	reg.Register("stats", "-fps <bool> -mem <bool>", a.statsCommand)
	reg.Register("controls", "-update-each-frame <bool> -damping <bool>", a.controlsCommand)
	reg.Register("config", "-save [-path file]", a.configCommand)
	reg.Register("help", "list commands", func(fs *flag.FlagSet) func() error {
		return func() error {
			for _, line := range reg.Usage() {
				a.log.Infof("%s", line)
			}
			return nil
		}
	})
}

func visited(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func (a *App) lightCommand(fs *flag.FlagSet) func() error {
	x := fs.Float64("x", 0, "position x")
	y := fs.Float64("y", 0, "position y")
	z := fs.Float64("z", 0, "position z")
	color := fs.String("color", "", "color")
	intensity := fs.Float64("intensity", 0, "intensity")
	reset := fs.Bool("reset", false, "restore startup values")
	return func() error {
		set := visited(fs)
		l := a.Scene.Light
		if *reset {
			if err := l.Reset(a.lightDefaults); err != nil {
				return err
			}
			a.Light.Sync()
		}
		if set["color"] {
			c, err := rgb.Parse(*color)
			if err != nil {
				return err
			}
			if err := a.Light.Color.SetValue(c); err != nil {
				return err
			}
		}
		if set["intensity"] {
			if *intensity < 0 {
				return fmt.Errorf("intensity %v must not be negative", *intensity)
			}
			l.Intensity = float32(*intensity)
		}
		if set["x"] {
			a.Light.X.SetValue(float32(*x))
		}
		if set["y"] {
			a.Light.Y.SetValue(float32(*y))
		}
		if set["z"] {
			a.Light.Z.SetValue(float32(*z))
		}
		a.log.Infof("light position (%.2f, %.2f, %.2f) color %s intensity %.2f",
			l.Position.X(), l.Position.Y(), l.Position.Z(), l.Color, l.Intensity)
		return nil
	}
}

func (a *App) panelCommand(fs *flag.FlagSet) func() error {
	show := fs.Bool("show", true, "show the debug panel")
	return func() error {
		if visited(fs)["show"] {
			a.GUI.Visible = *show
		} else {
			a.GUI.Visible = !a.GUI.Visible
		}
		a.log.Infof("panel visible: %v", a.GUI.Visible)
		return nil
	}
}

func (a *App) statsCommand(fs *flag.FlagSet) func() error {
	fps := fs.Bool("fps", false, "frames per second")
	mem := fs.Bool("mem", false, "heap in use")
	return func() error {
		set := visited(fs)
		if set["fps"] {
			a.Overlay.FPS = *fps
		}
		if set["mem"] {
			a.Overlay.Mem = *mem
		}
		a.log.Infof("stats fps=%v mem=%v", a.Overlay.FPS, a.Overlay.Mem)
		return nil
	}
}

func (a *App) controlsCommand(fs *flag.FlagSet) func() error {
	each := fs.Bool("update-each-frame", false, "update orbit controls every frame")
	damping := fs.Bool("damping", true, "damped orbiting")
	return func() error {
		set := visited(fs)
		if set["update-each-frame"] {
			a.Loop.SetUpdateControls(*each)
		}
		if set["damping"] {
			a.Controls.SetDamping(*damping)
		}
		a.log.Infof("controls update-each-frame=%v damping=%v", a.Loop.UpdateControls(), a.Controls.Config().EnableDamping)
		return nil
	}
}

func (a *App) configCommand(fs *flag.FlagSet) func() error {
	save := fs.Bool("save", false, "write the current state")
	path := fs.String("path", a.configPath, "file to write")
	return func() error {
		if !*save {
			return fmt.Errorf("nothing to do; use -save")
		}
		cfg := a.Snapshot()
		if err := config.Save(*path, cfg); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		a.log.Infof("config saved to %s", strings.TrimSpace(*path))
		return nil
	}
}

// Snapshot returns the startup configuration updated with the live light, panel,
// overlay and controls settings.
func (a *App) Snapshot() config.Config {
	cfg := a.cfg
	l := a.Scene.Light
	cfg.Scene.Light.Position = l.Position
	cfg.Scene.Light.Color = l.Color
	cfg.Scene.Light.Intensity = l.Intensity
	cfg.Debug.Panel = a.GUI.Visible
	cfg.Debug.ShowFPS = a.Overlay.FPS
	cfg.Debug.ShowMem = a.Overlay.Mem
	cfg.Controls.UpdateEachFrame = a.Loop.UpdateControls()
	cfg.Controls.EnableDamping = a.Controls.Config().EnableDamping
	return cfg
}
