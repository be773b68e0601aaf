package debug

import (
	"math"
	"strconv"

	"sphere-scene/internal/rgb"
)

// Controller is one editable field in a Folder.
type Controller interface {
	Name() string
}

// NumberController edits a float32 in place. Min, Max and Step apply to edits only;
// the initial value of the target is left as it is, even when outside the range.
type NumberController struct {
	name     string
	target   *float32
	min      float32
	max      float32
	step     float32
	hasMin   bool
	hasMax   bool
	onChange func(float32)
}

// Name returns the field label.
func (c *NumberController) Name() string { return c.name }

// Min sets the lower bound.
func (c *NumberController) Min(v float32) *NumberController {
	c.min, c.hasMin = v, true
	return c
}

// Max sets the upper bound.
func (c *NumberController) Max(v float32) *NumberController {
	c.max, c.hasMax = v, true
	return c
}

// Step sets the increment values snap to.
func (c *NumberController) Step(v float32) *NumberController {
	c.step = v
	return c
}

// OnChange registers fn, called after every SetValue with the stored value.
func (c *NumberController) OnChange(fn func(float32)) *NumberController {
	c.onChange = fn
	return c
}

// Value reads the target.
func (c *NumberController) Value() float32 { return *c.target }

// Range returns the bounds; ok is false unless both are set.
func (c *NumberController) Range() (lo, hi float32, ok bool) {
	return c.min, c.max, c.hasMin && c.hasMax
}

// StepSize returns the step (0 = continuous).
func (c *NumberController) StepSize() float32 { return c.step }

// SetValue clamps v to the bounds, snaps it to the step, writes the target and fires OnChange.
// It returns the stored value.
func (c *NumberController) SetValue(v float32) float32 {
	v = c.clamp(v)
	if c.step > 0 {
		snapped := math.Round(float64(v)/float64(c.step)) * float64(c.step)
		v = c.clamp(float32(snapped))
	}
	*c.target = v
	if c.onChange != nil {
		c.onChange(v)
	}
	return v
}

func (c *NumberController) clamp(v float32) float32 {
	if c.hasMin && v < c.min {
		v = c.min
	}
	if c.hasMax && v > c.max {
		v = c.max
	}
	return v
}

// Fraction returns where the current value sits in the range (0–1), clamped.
func (c *NumberController) Fraction() float32 {
	lo, hi, ok := c.Range()
	if !ok || hi <= lo {
		return 0
	}
	f := (c.Value() - lo) / (hi - lo)
	return float32(math.Max(0, math.Min(1, float64(f))))
}

// SetFraction sets the value at fraction f of the range. No-op without a range.
func (c *NumberController) SetFraction(f float32) {
	lo, hi, ok := c.Range()
	if !ok {
		return
	}
	c.SetValue(lo + f*(hi-lo))
}

// Format renders the value with as many decimals as the step needs.
func (c *NumberController) Format() string {
	return strconv.FormatFloat(float64(c.Value()), 'f', decimals(c.step), 32)
}

func decimals(step float32) int {
	if step <= 0 {
		return 3
	}
	d := 0
	for s := float64(step); d < 6 && math.Abs(s-math.Round(s)) > 1e-6; s *= 10 {
		d++
	}
	return d
}

// ColorController edits a packed RGB color in place.
type ColorController struct {
	name     string
	target   *rgb.Color
	onChange func(rgb.Color)
}

// Name returns the field label.
func (c *ColorController) Name() string { return c.name }

// OnChange registers fn, called after every accepted SetValue.
func (c *ColorController) OnChange(fn func(rgb.Color)) *ColorController {
	c.onChange = fn
	return c
}

// Value reads the target.
func (c *ColorController) Value() rgb.Color { return *c.target }

// SetValue stores v and fires OnChange. Values wider than 24 bits are rejected.
func (c *ColorController) SetValue(v rgb.Color) error {
	if !v.Valid() {
		return rgb.ErrOutOfRange
	}
	*c.target = v
	if c.onChange != nil {
		c.onChange(v)
	}
	return nil
}

// Folder groups controllers under a collapsible header. Folders start closed.
type Folder struct {
	Name        string
	Open        bool
	controllers []Controller
}

// Add binds a number field.
func (f *Folder) Add(target *float32, name string) *NumberController {
	c := &NumberController{name: name, target: target}
	f.controllers = append(f.controllers, c)
	return c
}

// AddColor binds a color field.
func (f *Folder) AddColor(target *rgb.Color, name string) *ColorController {
	c := &ColorController{name: name, target: target}
	f.controllers = append(f.controllers, c)
	return c
}

// Controllers returns the controllers in insertion order.
func (f *Folder) Controllers() []Controller {
	return f.controllers
}

// Controller finds a controller by name.
func (f *Folder) Controller(name string) (Controller, bool) {
	for _, c := range f.controllers {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// GUI is the root of the debug panel.
type GUI struct {
	Visible bool
	folders []*Folder
}

// NewGUI returns a visible, empty panel.
func NewGUI() *GUI {
	return &GUI{Visible: true}
}

// AddFolder appends a closed folder.
func (g *GUI) AddFolder(name string) *Folder {
	f := &Folder{Name: name}
	g.folders = append(g.folders, f)
	return f
}

// Folders returns folders in insertion order.
func (g *GUI) Folders() []*Folder {
	return g.folders
}

// Folder finds a folder by name.
func (g *GUI) Folder(name string) (*Folder, bool) {
	for _, f := range g.folders {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}
