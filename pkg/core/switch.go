package core

import "github.com/go-slate/slate/pkg/errors"

// Predicate is a caller-supplied enabling criterion, polled once per frame.
type Predicate func() bool

// Switch is the per-element three-way state machine deciding whether its
// element is on screen, updating, and interactable. Every slot defaults to
// closed: an element must be explicitly wired into the state machine, and
// the first evaluation of an unconfigured slot surfaces a one-time
// diagnostic, since silent default-enablement is an authoring bug worth
// flagging.
type Switch struct {
	owner string

	shouldBeOnScreen     Predicate
	shouldUpdate         Predicate
	shouldBeInteractable Predicate

	// lock gates interactability: an element whose action lock is held
	// (an in-flight press, entrance, or exit) cannot become interactable
	// even if its own predicate says yes.
	lock *Lock
}

// NewSwitch creates a switch for the named owner, gated by the given lock.
func NewSwitch(owner string, lock *Lock) *Switch {
	return &Switch{owner: owner, lock: lock}
}

// Evaluate computes the three state flags for this frame.
func (s *Switch) Evaluate() (onScreen, updating, interactable bool) {
	onScreen = s.eval("shouldBeOnScreen", s.shouldBeOnScreen)
	updating = s.eval("shouldUpdate", s.shouldUpdate)
	interactable = s.eval("shouldBeInteractable", s.shouldBeInteractable) &&
		(s.lock == nil || s.lock.IsUnlocked())
	return onScreen, updating, interactable
}

func (s *Switch) eval(slot string, p Predicate) bool {
	if p == nil {
		errors.WarnOnce(s.owner+"/"+slot,
			"switch for %q has no %s criteria; treating as closed", s.owner, slot)
		return false
	}
	return p()
}

func (s *Switch) setOnScreen(p Predicate) { s.shouldBeOnScreen = p }
func (s *Switch) setUpdating(p Predicate) { s.shouldUpdate = p }
func (s *Switch) setInteractable(p Predicate) { s.shouldBeInteractable = p }
