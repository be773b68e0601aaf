package debug

import (
	"math"
	"strconv"
)

// Rect is a screen rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// RowKind tells the drawing code how to render a row.
type RowKind int

const (
	RowFolder RowKind = iota
	RowNumber
	RowColor
	RowChannel
)

var channelNames = [3]string{"r", "g", "b"}

// Row is one laid-out line of the panel.
type Row struct {
	Kind    RowKind
	Rect    Rect
	Slider  Rect // value area; empty for folder rows
	Label   string
	Folder  *Folder
	Number  *NumberController
	Color   *ColorController
	Channel int
}

// Fraction returns the slider fill (0–1) for number and channel rows.
func (r Row) Fraction() float32 {
	switch r.Kind {
	case RowNumber:
		return r.Number.Fraction()
	case RowChannel:
		return float32(r.Color.Value().Channel(r.Channel)) / 255
	}
	return 0
}

// ValueText returns the value shown at the right of the row.
func (r Row) ValueText() string {
	switch r.Kind {
	case RowNumber:
		return r.Number.Format()
	case RowColor:
		return r.Color.Value().Hex()
	case RowChannel:
		return strconv.Itoa(int(r.Color.Value().Channel(r.Channel)))
	case RowFolder:
		if r.Folder.Open {
			return "-"
		}
		return "+"
	}
	return ""
}

// Layout sizes the panel. It is anchored to the top-right corner of the window.
type Layout struct {
	Width      float32
	RowHeight  float32
	LabelWidth float32
	Margin     float32
}

// DefaultLayout is a 260px wide panel with 24px rows.
func DefaultLayout() Layout {
	return Layout{Width: 260, RowHeight: 24, LabelWidth: 90, Margin: 0}
}

// PointerEvent is the mouse state for one frame.
type PointerEvent struct {
	X, Y     float32
	Pressed  bool // primary button went down this frame
	Down     bool // primary button is held
	Released bool // primary button went up this frame
}

// Panel turns a GUI into rows and applies pointer edits to the controllers.
type Panel struct {
	GUI    *GUI
	Layout Layout
	screenW float32
	active int // index into rows being dragged, -1 when idle
}

// NewPanel returns a panel for g placed at the top-left until Place is called.
func NewPanel(g *GUI, layout Layout) *Panel {
	return &Panel{GUI: g, Layout: layout, active: -1}
}

// Place anchors the panel to the top-right of a window screenWidth wide.
// Layout changes made afterwards are picked up without placing again.
func (p *Panel) Place(screenWidth float32) {
	p.screenW = screenWidth
}

func (p *Panel) origin() (x, y float32) {
	if p.screenW <= 0 {
		return p.Layout.Margin, p.Layout.Margin
	}
	return p.screenW - p.Layout.Width - p.Layout.Margin, p.Layout.Margin
}

// Rows lays out the visible rows from the current GUI state. Closed folders show only their header.
func (p *Panel) Rows() []Row {
	if !p.GUI.Visible {
		return nil
	}
	var rows []Row
	x, y := p.origin()
	add := func(r Row) {
		r.Rect = Rect{X: x, Y: y, W: p.Layout.Width, H: p.Layout.RowHeight}
		if r.Kind != RowFolder && r.Kind != RowColor {
			r.Slider = Rect{
				X: x + p.Layout.LabelWidth,
				Y: y + 2,
				W: p.Layout.Width - p.Layout.LabelWidth - 4,
				H: p.Layout.RowHeight - 4,
			}
		}
		rows = append(rows, r)
		y += p.Layout.RowHeight
	}
	for _, f := range p.GUI.Folders() {
		add(Row{Kind: RowFolder, Label: f.Name, Folder: f})
		if !f.Open {
			continue
		}
		for _, c := range f.Controllers() {
			switch c := c.(type) {
			case *NumberController:
				add(Row{Kind: RowNumber, Label: c.Name(), Folder: f, Number: c})
			case *ColorController:
				add(Row{Kind: RowColor, Label: c.Name(), Folder: f, Color: c})
				for ch := range channelNames {
					add(Row{Kind: RowChannel, Label: "  " + channelNames[ch], Folder: f, Color: c, Channel: ch})
				}
			}
		}
	}
	return rows
}

// Bounds returns the area covered by the visible rows.
func (p *Panel) Bounds() Rect {
	rows := p.Rows()
	if len(rows) == 0 {
		return Rect{}
	}
	x, y := p.origin()
	return Rect{X: x, Y: y, W: p.Layout.Width, H: float32(len(rows)) * p.Layout.RowHeight}
}

// Dragging reports whether a slider drag is in progress.
func (p *Panel) Dragging() bool {
	return p.active >= 0
}

// Pointer applies one frame of mouse input. It returns true when the panel consumed the event,
// in which case the camera controls must not see it.
func (p *Panel) Pointer(ev PointerEvent) bool {
	if !p.GUI.Visible {
		p.active = -1
		return false
	}
	rows := p.Rows()
	if p.active >= 0 {
		if p.active >= len(rows) || !ev.Down || ev.Released {
			p.active = -1
			return true
		}
		applySlider(rows[p.active], ev.X)
		return true
	}
	for i, r := range rows {
		if !r.Rect.Contains(ev.X, ev.Y) {
			continue
		}
		if !ev.Pressed {
			return true
		}
		switch r.Kind {
		case RowFolder:
			r.Folder.Open = !r.Folder.Open
		case RowNumber, RowChannel:
			if r.Slider.Contains(ev.X, ev.Y) {
				p.active = i
				applySlider(r, ev.X)
			}
		}
		return true
	}
	return false
}

func applySlider(r Row, x float32) {
	f := float32(0)
	if r.Slider.W > 0 {
		f = (x - r.Slider.X) / r.Slider.W
	}
	f = float32(math.Max(0, math.Min(1, float64(f))))
	switch r.Kind {
	case RowNumber:
		r.Number.SetFraction(f)
	case RowChannel:
		v := uint8(math.Round(float64(f) * 255))
		// WithChannel stays within 0xffffff, so SetValue cannot fail here.
		_ = r.Color.SetValue(r.Color.Value().WithChannel(r.Channel, v))
	}
}
