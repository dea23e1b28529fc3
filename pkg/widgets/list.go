// Package widgets provides the element specializations the timer screens
// are built from: axis-layout lists with a selection cursor, press-animated
// buttons, selection-tracking cursors, and bounded numeric dials.
package widgets

import (
	"math"

	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
)

// Orientation is the axis a list lays its children along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Selectable is a node that can report whether it is the current selection.
// Buttons and dials satisfy it; lists overwrite their children's selection
// criteria so that it means "is the selected index in the parent list".
type Selectable interface {
	core.Node
	SetSelectedCriteria(p core.Predicate)
}

// List is an element that lays out children along one axis with fixed
// spacing and maintains a single selected-child cursor, advanced by
// directional input and wrapping at both ends.
type List struct {
	*core.Element

	orientation Orientation
	spacing     float64

	// nextFree is the next free local position along the axis; appending a
	// child advances it past the child's far edge plus spacing.
	nextFree float64

	// selected is 1-based, 0 while the list is empty.
	selected int
}

// NewList creates a list. Zero width or height default to the display
// dimensions, as with any element.
func NewList(name string, width, height float64, orientation Orientation, spacing float64) *List {
	return &List{
		Element:     core.New(name, width, height),
		orientation: orientation,
		spacing:     spacing,
	}
}

// AddChildren places each child in the next free slot along the list's
// axis, then delegates to the element's base placement for parenting and
// z-ordering. Each selectable child's selection criteria is overwritten to
// mean "is the currently selected index in this list".
func (l *List) AddChildren(nodes []core.Node, alwaysOnScreenWithParent bool) []*core.Element {
	for _, n := range nodes {
		if n == nil || n.Base() == nil {
			continue // base placement reports it
		}
		child := n.Base()
		if l.orientation == Vertical {
			child.PlaceAt(graphics.Offset{Y: l.nextFree})
			l.nextFree += child.Size().Height + l.spacing
		} else {
			child.PlaceAt(graphics.Offset{X: l.nextFree})
			l.nextFree += child.Size().Width + l.spacing
		}
	}

	added := l.Element.AddChildren(nodes, alwaysOnScreenWithParent)

	for _, n := range nodes {
		sel, ok := n.(Selectable)
		if !ok || sel.Base() == nil {
			continue
		}
		idx := l.indexOf(sel.Base())
		if idx == 0 {
			continue
		}
		list := l
		sel.SetSelectedCriteria(func() bool { return list.selected == idx })
	}

	if l.selected == 0 && len(l.Children()) > 0 {
		l.selected = 1
	}
	return added
}

func (l *List) indexOf(child *core.Element) int {
	for i, c := range l.Children() {
		if c == child {
			return i + 1
		}
	}
	return 0
}

// Selected returns the 1-based selected index, 0 while the list is empty.
func (l *List) Selected() int { return l.selected }

// SelectedChild returns the currently selected child, or nil.
func (l *List) SelectedChild() *core.Element {
	children := l.Children()
	if l.selected < 1 || l.selected > len(children) {
		return nil
	}
	return children[l.selected-1]
}

// Next advances the selected index, wrapping past the last child.
func (l *List) Next() {
	n := len(l.Children())
	if n == 0 {
		return
	}
	l.selected = l.selected%n + 1
}

// Prev retreats the selected index, wrapping past the first child.
func (l *List) Prev() {
	n := len(l.Children())
	if n == 0 {
		return
	}
	l.selected = (l.selected+n-2)%n + 1
}

// GetMaxContentDim computes the per-child size that would let nNewElements
// equally sized new children fit in the space remaining after existing
// children and spacing. A non-zero remainder is reported as leftover unused
// pixels but does not prevent anything.
func (l *List) GetMaxContentDim(nNewElements int) graphics.Size {
	if nNewElements <= 0 {
		errors.Reportf("widgets.List.GetMaxContentDim", errors.KindAuthoring,
			"%q: element count must be positive, got %d", l.Name(), nNewElements)
		return graphics.Size{}
	}

	axisLen := l.Size().Height
	cross := l.Size().Width
	if l.orientation == Horizontal {
		axisLen = l.Size().Width
		cross = l.Size().Height
	}

	usable := axisLen - l.nextFree - l.spacing*float64(nNewElements-1)
	if usable < 0 {
		errors.Warnf("list %q: no room for %d more children (%.0fpx over)",
			l.Name(), nNewElements, -usable)
		usable = 0
	}
	per := math.Floor(usable / float64(nNewElements))
	if leftover := usable - per*float64(nNewElements); leftover > 0 {
		errors.Warnf("list %q: %.0fpx left unused after fitting %d children",
			l.Name(), leftover, nNewElements)
	}

	if l.orientation == Horizontal {
		return graphics.Size{Width: per, Height: cross}
	}
	return graphics.Size{Width: cross, Height: per}
}
