package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"sphere-scene/internal/terminal"
)

const (
	barHeight = 40
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	prompt           = "> "
)

// Console feeds raylib keys to a terminal.Terminal and draws it at the bottom of the screen.
// The grave key (`) shows and hides it.
type Console struct {
	engine *Engine
	term   *terminal.Terminal
	log    *Node
	bar    *Node
}

// NewConsole returns a console view for t, styled by #console-log and #console-bar.
func NewConsole(e *Engine, t *terminal.Terminal) *Console {
	return &Console{
		engine: e,
		term:   t,
		log:    NewNode("panel", "", "console-log", ""),
		bar:    NewNode("panel", "", "console-bar", ""),
	}
}

// Update handles the toggle key and, when open, typing, paste, backspace, history and enter.
// It returns true when the console has the keyboard, so other key bindings should be skipped.
func (c *Console) Update() bool {
	if rl.IsKeyPressed(rl.KeyGrave) {
		c.term.Toggle()
	}
	if !c.term.IsOpen() {
		return false
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		c.term.Paste(rl.GetClipboardText())
	} else {
		for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
			c.term.Type(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace) {
		c.term.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		c.term.HistoryPrev()
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		c.term.HistoryNext()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		// errors are already in the log
		_ = c.term.Submit()
	}
	return true
}

// Draw draws the input bar and the recent log lines above it when open.
func (c *Console) Draw() {
	if !c.term.IsOpen() {
		return
	}
	e := c.engine
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())
	logStyle := e.Style("", "console-log")
	lineHeight := float32(logStyle.FontSize + 4)

	barY := screenH - barHeight
	chatHeight := maxLinesOnScreen*lineHeight + 2*float32(logStyle.Padding)
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight, chatY = barY, 0
	}
	c.log.Bounds = rl.NewRectangle(0, chatY, screenW, chatHeight)
	c.bar.Bounds = rl.NewRectangle(0, barY, screenW, barHeight)
	c.bar.Text = prompt + c.term.Input() + "|"
	e.Draw([]*Node{c.log, c.bar})

	for i, line := range c.term.Tail(maxLinesOnScreen) {
		y := chatY + float32(logStyle.Padding) + float32(i)*lineHeight
		e.Text(line, logStyle.Padding, int32(y), logStyle)
	}
}
