// Package core implements the element composition, state-switching, and
// action-locking engine: the visual node hierarchy, predicate-driven
// visibility, position animation as a suspension mechanism, propagated
// z-ordering, and the advisory locks that serialize dependent UI actions.
//
// Everything here is single-threaded and frame-driven. A host ticks every
// live element once per frame (see [Stage]); an element whose position
// animation is in flight reports itself unavailable for input that frame,
// and callers honor that by skipping its input handling.
package core

import (
	"github.com/go-slate/slate/pkg/animation"
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
)

// Built-in dependable actions. Every element pre-registers its own action
// lock under these; widgets may register more (e.g. "pressed").
const (
	ActionEnteringScreen = "enteringScreen"
	ActionExitingScreen  = "exitingScreen"
)

// OffsetDisabled is the named offset an element rests at while off screen;
// Add and Remove animate between it and the default position.
const OffsetDisabled = "disabled"

var displaySize = graphics.Size{Width: 400, Height: 240}

// SetDisplaySize configures the full-screen dimensions that elements
// created with zero width or height default to.
func SetDisplaySize(s graphics.Size) {
	if s.IsEmpty() {
		errors.Reportf("core.SetDisplaySize", errors.KindAuthoring,
			"ignoring empty display size %+v", s)
		return
	}
	displaySize = s
}

// DisplaySize returns the configured full-screen dimensions.
func DisplaySize() graphics.Size { return displaySize }

// Node is anything built on an Element. Specializations (List, Button,
// Cursor, Dial) satisfy it by embedding *Element.
type Node interface {
	Base() *Element
}

// Element is a composable visual node: it has a place in the hierarchy, a
// rest position with named offset vectors, render layers, a switch deciding
// its per-frame state, and a table of dependable-action locks.
type Element struct {
	name     string
	parent   *Element
	children []*Element

	// self is the most derived node handle this element was added under; the
	// stage dispatches frame updates through it so specializations with their
	// own Update run theirs.
	self Node

	width, height float64

	// defaultPos is the rest position; pos is where the element is this
	// frame (they diverge only during moves and MoveTo).
	defaultPos graphics.Offset
	pos        graphics.Offset
	offsets    map[string]graphics.Offset
	zIndex     int

	move      *animation.Move
	moveSpeed float64

	sw   *Switch
	lock *Lock
	// actions maps a dependable-action name to the locks held for the
	// action's duration. The element's own lock is pre-registered under
	// every action it declares.
	actions map[string][]*Lock

	onScreen     bool
	updating     bool
	interactable bool

	layers layerSet
}

// New creates an element with a required diagnostic name. Zero width or
// height default to the full display dimensions.
func New(name string, width, height float64) *Element {
	if width <= 0 {
		width = displaySize.Width
	}
	if height <= 0 {
		height = displaySize.Height
	}
	lock := NewLock(name)
	e := &Element{
		name:    name,
		width:   width,
		height:  height,
		offsets: map[string]graphics.Offset{},
		lock:    lock,
		sw:      NewSwitch(name, lock),
	}
	e.actions = map[string][]*Lock{}
	e.RegisterAction(ActionEnteringScreen)
	e.RegisterAction(ActionExitingScreen)
	return e
}

// Base returns the element itself, satisfying Node.
func (e *Element) Base() *Element { return e }

// Name returns the element's diagnostic name.
func (e *Element) Name() string { return e.name }

// Size returns the element's dimensions.
func (e *Element) Size() graphics.Size {
	return graphics.Size{Width: e.width, Height: e.height}
}

// Parent returns the owning element, or nil for a root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children in insertion order. The returned
// slice is the element's own; callers must not mutate it.
func (e *Element) Children() []*Element { return e.children }

// Position returns the element's position this frame.
func (e *Element) Position() graphics.Offset { return e.pos }

// DefaultPosition returns the element's rest position.
func (e *Element) DefaultPosition() graphics.Offset { return e.defaultPos }

// ZIndex returns the element's current z-index.
func (e *Element) ZIndex() int { return e.zIndex }

// IsOnScreen reports the switch's on-screen flag from the latest Update.
func (e *Element) IsOnScreen() bool { return e.onScreen }

// IsUpdating reports the switch's updating flag from the latest Update.
func (e *Element) IsUpdating() bool { return e.updating }

// IsInteractable reports the switch's interactable flag from the latest Update.
func (e *Element) IsInteractable() bool { return e.interactable }

// IsMoving reports whether a position animation is in flight.
func (e *Element) IsMoving() bool { return e.move != nil }

// ActionLock returns the element's own lock, the one gating its switch and
// held during its dependable actions. Other elements hand this to
// [Element.LockWhile] to serialize against it.
func (e *Element) ActionLock() *Lock { return e.lock }

// AddChildren re-parents the given nodes under this element: each child's
// rest position is shifted by the parent's, its z-index raised by the
// parent's, and, when alwaysOnScreenWithParent is set, its on-screen
// criteria wired to the parent's on-screen status. Nil nodes are reported
// and skipped rather than faulted; the successfully added elements are
// returned.
func (e *Element) AddChildren(nodes []Node, alwaysOnScreenWithParent bool) []*Element {
	added := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n == nil || n.Base() == nil {
			errors.Reportf("core.Element.AddChildren", errors.KindAuthoring,
				"%q: skipping nil child", e.name)
			continue
		}
		child := n.Base()
		if child == e || child.isAncestorOf(e) {
			errors.Reportf("core.Element.AddChildren", errors.KindAuthoring,
				"%q: adding %q would create a cycle", e.name, child.name)
			continue
		}
		if old := child.parent; old != nil {
			// Undo the old parent's contribution so a reparented child keeps
			// only its own local position and z offset.
			old.removeChild(child)
			child.translate(old.defaultPos.Scale(-1))
			child.shiftZ(-old.zIndex)
		}
		child.parent = e
		child.self = n
		e.children = append(e.children, child)
		child.translate(e.defaultPos)
		child.shiftZ(e.zIndex)
		if alwaysOnScreenWithParent {
			parent := e
			child.SetOnScreenCriteria(func() bool { return parent.onScreen })
		}
		added = append(added, child)
	}
	return added
}

func (e *Element) isAncestorOf(other *Element) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == e {
			return true
		}
	}
	return false
}

func (e *Element) removeChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// translate shifts the element and its whole subtree: rest position and
// current position both move so children keep their place relative to the
// ancestor being shifted.
func (e *Element) translate(delta graphics.Offset) {
	if delta.IsZero() {
		return
	}
	e.defaultPos = e.defaultPos.Add(delta)
	e.pos = e.pos.Add(delta)
	for _, c := range e.children {
		c.translate(delta)
	}
}

func (e *Element) shiftZ(delta int) {
	if delta == 0 {
		return
	}
	e.zIndex += delta
	for _, c := range e.children {
		c.shiftZ(delta)
	}
}

// SetPosition sets the rest position. It does not move the element on
// screen; the position takes effect through Add, Remove, or MoveTo.
func (e *Element) SetPosition(p graphics.Offset) {
	e.defaultPos = p
}

// PlaceAt sets both the rest position and the on-screen position, for
// elements laid out before their first frame.
func (e *Element) PlaceAt(p graphics.Offset) {
	e.defaultPos = p
	e.pos = p
}

// OffsetPositions additively merges named offset vectors: repeated calls
// with the same name accumulate rather than overwrite. Call ResetOffsets
// first if idempotent replacement is wanted.
func (e *Element) OffsetPositions(vectors map[string]graphics.Offset) {
	for name, v := range vectors {
		e.offsets[name] = e.offsets[name].Add(v)
	}
}

// ResetOffsets zeroes exactly the named offsets, leaving others untouched.
func (e *Element) ResetOffsets(names ...string) {
	for _, name := range names {
		delete(e.offsets, name)
	}
}

// Offset returns the accumulated vector registered under a name; unset
// names are the zero vector.
func (e *Element) Offset(name string) graphics.Offset {
	return e.offsets[name]
}

// OffsetPosition returns the rest position displaced by a named offset.
func (e *Element) OffsetPosition(name string) graphics.Offset {
	return e.defaultPos.Add(e.offsets[name])
}

// SetMoveSpeed overrides the travel speed, in pixels per second, of this
// element's position animations. Non-positive restores the default.
func (e *Element) SetMoveSpeed(speed float64) {
	e.moveSpeed = speed
}

func (e *Element) speed() float64 {
	if e.moveSpeed > 0 {
		return e.moveSpeed
	}
	return animation.DefaultSpeed
}

// Reposition begins an eased position animation from origin to destination;
// the duration is proportional to the distance between them. onArrive fires
// exactly once on arrival, and when reverses is set the element animates
// back to origin after arriving. A reposition replaces any move already in
// flight: the old move's arrival callback is dropped without firing, though
// its lock releases still run.
//
// While the move is in flight, Update reports the element unavailable for
// input.
func (e *Element) Reposition(origin, destination graphics.Offset, onArrive func(), reverses bool) {
	e.reposition(origin, destination, onArrive, reverses, nil)
}

func (e *Element) reposition(origin, destination graphics.Offset, onArrive func(), reverses bool, onDone func(cancelled bool)) {
	if e.move != nil {
		e.move.Cancel()
		e.move = nil
	}
	m := animation.NewMoveWithSpeed(origin, destination, e.speed())
	m.Reverses = reverses
	m.OnArrive = onArrive
	m.OnDone = func(cancelled bool) {
		if e.move == m {
			e.move = nil
		}
		if onDone != nil {
			onDone(cancelled)
		}
	}
	e.pos = origin
	e.move = m
}

// BeginAction starts a dependable action: every lock registered under the
// action is held, the element animates from origin to destination, and the
// holds are released only after the arrival callback has fired. If the move
// is superseded before arriving, onArrive is dropped but the holds are
// still released, so a dependent can never be left waiting on an abandoned
// action.
func (e *Element) BeginAction(action string, origin, destination graphics.Offset, onArrive func()) {
	locks, ok := e.actions[action]
	if !ok {
		errors.Reportf("core.Element.BeginAction", errors.KindAuthoring,
			"%q: unknown dependable action %q", e.name, action)
		e.Reposition(origin, destination, onArrive, false)
		return
	}
	held := make([]*Lock, len(locks))
	copy(held, locks)
	for _, l := range held {
		l.Lock()
	}
	e.reposition(origin, destination, onArrive, false, func(bool) {
		for _, l := range held {
			l.Unlock()
		}
	})
}

// Add animates the element from its disabled-offset position to its rest
// position, holding the enteringScreen locks until arrival. Dependents
// never observe a half-entered element as available.
func (e *Element) Add() {
	e.BeginAction(ActionEnteringScreen, e.OffsetPosition(OffsetDisabled), e.defaultPos, nil)
}

// Remove animates the element from its rest position to its disabled-offset
// position, holding the exitingScreen locks until arrival.
func (e *Element) Remove() {
	e.BeginAction(ActionExitingScreen, e.defaultPos, e.OffsetPosition(OffsetDisabled), nil)
}

// MoveTo repositions the element immediately, without animation. Unless
// suppressed, every descendant is translated by the same delta, preserving
// its position relative to this element.
func (e *Element) MoveTo(p graphics.Offset, dontMoveChildren bool) {
	delta := p.Sub(e.pos)
	e.pos = p
	if dontMoveChildren {
		return
	}
	for _, c := range e.children {
		c.translate(delta)
	}
}

// SetZIndex sets this element's z-index and eagerly shifts every descendant
// by the same delta, preserving relative order among siblings.
func (e *Element) SetZIndex(z int) {
	e.shiftZ(z - e.zIndex)
}

// SetOnScreenCriteria installs the switch's on-screen predicate. A nil
// predicate is rejected with a diagnostic and no change.
func (e *Element) SetOnScreenCriteria(p Predicate) {
	if !e.validCriteria("SetOnScreenCriteria", p) {
		return
	}
	e.sw.setOnScreen(p)
}

// SetUpdatingCriteria installs the switch's updating predicate.
func (e *Element) SetUpdatingCriteria(p Predicate) {
	if !e.validCriteria("SetUpdatingCriteria", p) {
		return
	}
	e.sw.setUpdating(p)
}

// SetInteractivityCriteria installs the switch's interactable predicate.
// The element's action lock still gates the result: a held lock means not
// interactable regardless of the predicate.
func (e *Element) SetInteractivityCriteria(p Predicate) {
	if !e.validCriteria("SetInteractivityCriteria", p) {
		return
	}
	e.sw.setInteractable(p)
}

// SetEnablingCriteria replaces the switch wholesale with freshly configured
// predicates, keeping the element's action lock as the interactability gate.
func (e *Element) SetEnablingCriteria(onScreen, updating, interactable Predicate) {
	sw := NewSwitch(e.name, e.lock)
	if e.validCriteria("SetEnablingCriteria", onScreen) {
		sw.setOnScreen(onScreen)
	}
	if e.validCriteria("SetEnablingCriteria", updating) {
		sw.setUpdating(updating)
	}
	if e.validCriteria("SetEnablingCriteria", interactable) {
		sw.setInteractable(interactable)
	}
	e.sw = sw
}

func (e *Element) validCriteria(op string, p Predicate) bool {
	if p == nil {
		errors.Reportf("core.Element."+op, errors.KindAuthoring,
			"%q: nil criteria ignored", e.name)
		return false
	}
	return true
}

// RegisterAction declares a dependable action on this element, with the
// element's own lock pre-registered for it. Registering an existing action
// is a no-op.
func (e *Element) RegisterAction(name string) {
	if _, ok := e.actions[name]; ok {
		return
	}
	e.actions[name] = []*Lock{e.lock}
}

// LockWhile registers a lock to be held for the named action's duration.
// Unknown action names and nil locks are rejected with a diagnostic.
func (e *Element) LockWhile(action string, l *Lock) {
	if l == nil {
		errors.Reportf("core.Element.LockWhile", errors.KindAuthoring,
			"%q: nil lock for action %q", e.name, action)
		return
	}
	if _, ok := e.actions[action]; !ok {
		errors.Reportf("core.Element.LockWhile", errors.KindAuthoring,
			"%q: unknown dependable action %q", e.name, action)
		return
	}
	e.actions[action] = append(e.actions[action], l)
}

// Update runs the element's frame step: it evaluates the switch, advances
// any foreground animation loop, and advances an in-flight move. It returns
// false while a move is in flight — the suspension signal telling callers
// the element is not available for input this frame.
func (e *Element) Update() bool {
	e.onScreen, e.updating, e.interactable = e.sw.Evaluate()

	e.layers.advance(e)

	if e.move == nil {
		return true
	}
	m := e.move
	pos, _ := m.Advance()
	// An arrival callback may have begun a replacement move, which already
	// placed the element at its own origin; only write the polled position
	// when this move is still the current one (or just finished).
	if e.move == m || e.move == nil {
		e.pos = pos
	}
	// The arrival frame still counts as suspended; input resumes next frame.
	return false
}
