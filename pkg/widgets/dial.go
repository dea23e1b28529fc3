package widgets

import (
	"strconv"

	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
)

// Dial is an element displaying a bounded integer value, adjusted while
// selected by an externally polled delta source (a crank, d-pad repeats,
// whatever the host wires in). Values clamp at the limits rather than wrap,
// and the displayed text is redrawn only when the value actually changed.
type Dial struct {
	*core.Element

	value int
	step  int

	hasLower, hasUpper bool
	lower, upper       int

	getDelta   func() int
	isSelected core.Predicate

	shown      int
	shownValid bool
	textColor  graphics.Color
}

// NewDial creates a dial with the given step size. Non-positive steps are
// reported and coerced to 1.
func NewDial(name string, width, height float64, step int) *Dial {
	if step <= 0 {
		errors.Reportf("widgets.NewDial", errors.KindAuthoring,
			"%q: step must be positive, got %d; using 1", name, step)
		step = 1
	}
	return &Dial{
		Element:   core.New(name, width, height),
		step:      step,
		textColor: graphics.ColorBlack,
	}
}

// SetLowerLimit sets the value floor.
func (d *Dial) SetLowerLimit(v int) {
	d.hasLower = true
	d.lower = v
	d.value = d.clamp(d.value)
}

// SetUpperLimit sets the value ceiling.
func (d *Dial) SetUpperLimit(v int) {
	d.hasUpper = true
	d.upper = v
	d.value = d.clamp(d.value)
}

// SetValue sets the current value, clamped to the limits.
func (d *Dial) SetValue(v int) {
	d.value = d.clamp(v)
}

// Value returns the current value.
func (d *Dial) Value() int { return d.value }

// SetDeltaSource installs the function polled once per update while the
// dial is selected; its result is multiplied by the step size.
func (d *Dial) SetDeltaSource(fn func() int) {
	if fn == nil {
		errors.Reportf("widgets.Dial.SetDeltaSource", errors.KindAuthoring,
			"%q: nil delta source ignored", d.Name())
		return
	}
	d.getDelta = fn
}

// SetSelectedCriteria installs the selection predicate. Lists overwrite
// this for their children.
func (d *Dial) SetSelectedCriteria(p core.Predicate) {
	if p == nil {
		errors.Reportf("widgets.Dial.SetSelectedCriteria", errors.KindAuthoring,
			"%q: nil criteria ignored", d.Name())
		return
	}
	d.isSelected = p
}

// SetTextColor sets the color the value is displayed in.
func (d *Dial) SetTextColor(c graphics.Color) {
	d.textColor = c
	d.shownValid = false
}

// IsSelected reports the selection predicate's current answer.
func (d *Dial) IsSelected() bool {
	if d.isSelected == nil {
		errors.WarnOnce(d.Name()+"/isSelected",
			"dial %q has no isSelected criteria; treating as unselected", d.Name())
		return false
	}
	return d.isSelected()
}

// Update runs the element frame step; while selected it polls the delta
// source, applies step and limits, and refreshes the displayed value only
// when it differs from the previous frame's.
func (d *Dial) Update() bool {
	if !d.Element.Update() {
		return false
	}

	if d.IsSelected() && d.getDelta != nil {
		if delta := d.getDelta(); delta != 0 {
			d.value = d.clamp(d.value + delta*d.step)
		}
	}

	// Dirty-check: redraw the displayed value only when it changed.
	if !d.shownValid || d.value != d.shown {
		d.SetTextLayer(strconv.Itoa(d.value), d.textColor)
		d.shown = d.value
		d.shownValid = true
		d.Redraw()
	}
	return true
}

func (d *Dial) clamp(v int) int {
	if d.hasLower && v < d.lower {
		return d.lower
	}
	if d.hasUpper && v > d.upper {
		return d.upper
	}
	return v
}
