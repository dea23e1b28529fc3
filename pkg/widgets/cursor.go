package widgets

import (
	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
)

// SelectionSource is a node the cursor can ask "are you selected right now".
type SelectionSource interface {
	core.Node
	IsSelected() bool
}

// AnchorFunc computes the point a cursor should sit at for a target.
type AnchorFunc func(target *core.Element) graphics.Offset

// AnchorTopLeft anchors the cursor at the target's current position.
func AnchorTopLeft(target *core.Element) graphics.Offset {
	return target.Position()
}

// AnchorLeftOf returns an anchor a fixed gap left of the target's
// vertical center.
func AnchorLeftOf(gap float64) AnchorFunc {
	return func(target *core.Element) graphics.Offset {
		p := target.Position()
		return graphics.Offset{X: p.X - gap, Y: p.Y + target.Size().Height/2}
	}
}

type cursorTarget struct {
	source SelectionSource
	anchor AnchorFunc
}

// Cursor is an element that follows the selection: each update it scans its
// registered targets and, when the selected target changes, animates to
// that target's anchor point. Staying on the same target is a no-op, so
// there is no animation churn frame over frame.
type Cursor struct {
	*core.Element

	targets []cursorTarget
	tracked SelectionSource
}

// NewCursor creates a cursor element.
func NewCursor(name string, width, height float64) *Cursor {
	return &Cursor{Element: core.New(name, width, height)}
}

// Track registers a target and the anchor function computing where the
// cursor sits when that target is selected.
func (c *Cursor) Track(source SelectionSource, anchor AnchorFunc) {
	if source == nil || source.Base() == nil {
		errors.Reportf("widgets.Cursor.Track", errors.KindAuthoring,
			"%q: nil target ignored", c.Name())
		return
	}
	if anchor == nil {
		anchor = AnchorTopLeft
	}
	c.targets = append(c.targets, cursorTarget{source: source, anchor: anchor})
}

// Tracked returns the target the cursor most recently moved to, or nil.
func (c *Cursor) Tracked() SelectionSource { return c.tracked }

// Update runs the element frame step, then the selection scan. Exactly one
// target should be selected at a time; observing several indicates a
// caller-side selection-exclusivity bug, reported once but not faulted —
// the first selected target wins.
func (c *Cursor) Update() bool {
	if !c.Element.Update() {
		return false
	}

	var current *cursorTarget
	selectedCount := 0
	for i := range c.targets {
		if c.targets[i].source.IsSelected() {
			selectedCount++
			if current == nil {
				current = &c.targets[i]
			}
		}
	}
	if selectedCount > 1 {
		errors.WarnOnce(c.Name()+"/multi-select",
			"cursor %q saw %d simultaneously selected targets; tracking the first",
			c.Name(), selectedCount)
	}
	if current == nil || current.source == c.tracked {
		return true
	}

	c.tracked = current.source
	c.Reposition(c.Position(), current.anchor(current.source.Base()), nil, false)
	return true
}
