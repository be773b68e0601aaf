package ui

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sphere-scene/internal/app"
)

// memSampleFrames is how often heap usage is re-read; ReadMemStats stops the world.
const memSampleFrames = 30

// Stats is the top-left FPS / memory readout. It owns its nodes and updates their text
// when AppendNodes is called. Which lines show is decided by app.Overlay.
type Stats struct {
	engine *Engine
	panel  *Node
	fps    *Node
	mem    *Node
	frames int
	heapMB float64
}

// NewStats creates the readout with nodes styled by #stats and .stat.
func NewStats(e *Engine) *Stats {
	panel := NewNode("panel", "", "stats", "")
	panel.Anchored = true
	return &Stats{
		engine: e,
		panel:  panel,
		fps:    NewNode("label", "stat", "", ""),
		mem:    NewNode("label", "stat", "", ""),
	}
}

// AppendNodes appends the readout to dst when any line of overlay is on; otherwise dst is returned unchanged.
// Call every frame so visibility and content stay in sync.
func (s *Stats) AppendNodes(dst []*Node, overlay app.Overlay) []*Node {
	if !overlay.FPS && !overlay.Mem {
		return dst
	}
	if s.frames%memSampleFrames == 0 {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		s.heapMB = float64(m.HeapInuse) / (1 << 20)
	}
	s.frames++

	s.engine.Place(s.panel)
	dst = append(dst, s.panel)
	line := s.panel.Bounds.Y
	const lineHeight = 20
	if overlay.FPS {
		s.fps.Text = fmt.Sprintf("FPS: %d", rl.GetFPS())
		s.fps.Bounds = rl.NewRectangle(s.panel.Bounds.X, line, s.panel.Bounds.Width, lineHeight)
		line += lineHeight
		dst = append(dst, s.fps)
	}
	if overlay.Mem {
		s.mem.Text = fmt.Sprintf("Heap: %.1f MB", s.heapMB)
		s.mem.Bounds = rl.NewRectangle(s.panel.Bounds.X, line, s.panel.Bounds.Width, lineHeight)
		dst = append(dst, s.mem)
	}
	return dst
}
