package main

import (
	"fmt"
	"os"

	"sphere-scene/internal/app"
	"sphere-scene/internal/commands"
	"sphere-scene/internal/config"
	"sphere-scene/internal/env"
	"sphere-scene/internal/fonts"
	"sphere-scene/internal/graphics"
	"sphere-scene/internal/logger"
	"sphere-scene/internal/terminal"
	"sphere-scene/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	envKeys, envErr := env.Load(".env")

	cfgPath := config.DefaultPath
	if v, ok := os.LookupEnv(config.EnvPath); ok && v != "" {
		cfgPath = v
	}
	cfg, cfgErr := config.Load(cfgPath)
	overrideErr := cfg.ApplyEnv(os.LookupEnv)

	log, logErr := logger.New(logger.Options{Path: cfg.Debug.LogPath, Debug: cfg.Debug.Verbose})
	defer log.Close()
	if logErr != nil {
		log.Warnf("log file %s unavailable: %v", cfg.Debug.LogPath, logErr)
	}
	if envErr != nil {
		log.Warnf(".env: %v", envErr)
	} else if len(envKeys) > 0 {
		log.Debugf(".env set %d variables", len(envKeys))
	}
	if cfgErr != nil {
		log.Warnf("config %s: %v; using defaults", cfgPath, cfgErr)
	}
	if overrideErr != nil {
		log.Errorf("environment overrides: %v", overrideErr)
		return 1
	}

	host := graphics.NewHost(cfg.Window, cfg.Renderer)
	host.Open()
	defer host.Close()

	a, err := app.New(cfg, host, graphics.NewRenderer(cfg.Renderer), log, app.WithConfigPath(cfgPath))
	if err != nil {
		log.Errorf("startup: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer a.Close()

	reg := commands.NewRegistry()
	a.RegisterCommands(reg)
	term := terminal.New(log, reg)

	engine := ui.New()
	defer engine.Close()
	if cfg.Debug.Stylesheet != "" {
		if err := engine.LoadCSS(cfg.Debug.Stylesheet); err != nil {
			log.Warnf("stylesheet %s: %v; using built-in", cfg.Debug.Stylesheet, err)
		}
	}
	if path, err := fonts.FindFont(cfg.Debug.Font); err == nil {
		if err := engine.LoadFont(path); err != nil {
			log.Warnf("font %s: %v", path, err)
		}
	} else {
		log.Debugf("no overlay font under %v; using raylib default", fonts.BaseDirs())
	}

	panel := ui.NewPanelView(engine, a.Panel)
	stats := ui.NewStats(engine)
	console := ui.NewConsole(engine, term)

	host.OnResize(a.Resize)
	host.OnUpdate(func() {
		panel.Update(!console.Update())
	})
	host.OnInput(func(in graphics.Input) {
		a.Input(in.Pointer, in.Camera)
	})
	var nodes []*ui.Node
	host.AddOverlay(panel.Draw)
	host.AddOverlay(func() {
		nodes = stats.AppendNodes(nodes[:0], a.Overlay)
		engine.Draw(nodes)
	})
	host.AddOverlay(console.Draw)

	// The first tick runs inside the first display frame; the loop reschedules itself from there.
	host.RequestFrame(a.Start)
	log.Infof("running; ` opens the console, H toggles the panel")
	host.Run()

	if err := a.Loop.Err(); err != nil {
		return 1
	}
	return 0
}
