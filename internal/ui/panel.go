package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"sphere-scene/internal/debug"
	"sphere-scene/internal/rgb"
	"sphere-scene/internal/ui/css"
)

// PanelView draws a debug.Panel. Sizes come from the .panel, .row and .label rules,
// colors from .folder, .row, .slider and .swatch.
type PanelView struct {
	engine *Engine
	panel  *debug.Panel
}

// NewPanelView returns a view of p and applies the stylesheet's sizes to its layout.
func NewPanelView(e *Engine, p *debug.Panel) *PanelView {
	v := &PanelView{engine: e, panel: p}
	v.ApplyLayout()
	return v
}

// ApplyLayout copies widths and row height from the stylesheet into the panel layout,
// keeping the current value for anything the sheet leaves unset.
func (v *PanelView) ApplyLayout() {
	l := &v.panel.Layout
	if s := v.engine.Style("panel", ""); s.Width > 0 {
		l.Width = float32(s.Width)
	}
	if s := v.engine.Style("row", ""); s.Height > 0 {
		l.RowHeight = float32(s.Height)
	}
	if s := v.engine.Style("label", ""); s.Width > 0 {
		l.LabelWidth = float32(s.Width)
	}
}

// Update toggles the panel with the H key. Pass keyboardFree false while the console has the keyboard.
func (v *PanelView) Update(keyboardFree bool) {
	if keyboardFree && rl.IsKeyPressed(rl.KeyH) {
		v.panel.GUI.Visible = !v.panel.GUI.Visible
	}
}

// Draw anchors the panel to the current screen width and draws every visible row.
func (v *PanelView) Draw() {
	v.panel.Place(float32(rl.GetScreenWidth()))
	rows := v.panel.Rows()
	if len(rows) == 0 {
		return
	}
	e := v.engine
	if b := v.panel.Bounds(); b.W > 0 {
		bg := e.Style("panel", "")
		rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), bg.Background)
	}
	slider := e.Style("slider", "")
	for _, r := range rows {
		class := "row"
		if r.Kind == debug.RowFolder {
			class = "folder"
		}
		style := e.Style(class, "")
		x, y := int32(r.Rect.X), int32(r.Rect.Y)
		w, h := int32(r.Rect.W), int32(r.Rect.H)
		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		e.Text(r.Label, x+style.Padding, y+style.Padding, style)

		switch r.Kind {
		case debug.RowFolder:
			marker := r.ValueText()
			e.Text(marker, x+w-e.MeasureText(marker, style)-style.Padding, y+style.Padding, style)
		case debug.RowColor:
			v.drawSwatch(r, style)
		case debug.RowNumber, debug.RowChannel:
			s := r.Slider
			rl.DrawRectangle(int32(s.X), int32(s.Y), int32(s.W), int32(s.H), slider.Background)
			rl.DrawRectangle(int32(s.X), int32(s.Y), int32(s.W*r.Fraction()), int32(s.H), slider.Accent)
			text := r.ValueText()
			tx := int32(s.X+s.W) - e.MeasureText(text, slider) - slider.Padding
			e.Text(text, tx, y+slider.Padding, slider)
		}
	}
}

// drawSwatch fills the value area of a color row with the color and its hex code.
func (v *PanelView) drawSwatch(r debug.Row, rowStyle css.ComputedStyle) {
	e := v.engine
	lw := v.panel.Layout.LabelWidth
	x := int32(r.Rect.X + lw)
	y := int32(r.Rect.Y + 2)
	w := int32(r.Rect.W-lw) - 4
	h := int32(r.Rect.H) - 4
	c := r.Color.Value()
	rl.DrawRectangle(x, y, w, h, c.RGBA())
	if sw := e.Style("swatch", ""); sw.HasBorder {
		rl.DrawRectangleLines(x, y, w, h, sw.Border)
	}
	text := c.Hex()
	style := rowStyle
	style.Color = contrast(c)
	e.Text(text, x+style.Padding, int32(r.Rect.Y)+style.Padding, style)
}

// contrast picks black or white text for legibility on c.
func contrast(c rgb.Color) rl.Color {
	r, g, b := c.Bytes()
	if 299*int(r)+587*int(g)+114*int(b) > 128000 {
		return rl.Black
	}
	return rl.White
}
