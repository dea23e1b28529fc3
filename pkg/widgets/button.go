package widgets

import (
	"github.com/go-slate/slate/pkg/core"
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/platform"
)

// ActionPressed is the dependable action a button holds locks against for
// the full duration of its press animation and press callback.
const ActionPressed = "pressed"

// Named offsets a button repositions between.
const (
	OffsetSelected = "selected"
	OffsetPressed  = "pressed"
)

// SoundCues names the cues a button triggers. Empty names are skipped.
type SoundCues struct {
	// Touched plays once on the press edge, not repeated while held.
	Touched string
	// Held starts on the press edge and is stopped on release.
	Held string
	// Clicked plays when the press animation arrives, alongside the press
	// action.
	Clicked string
}

// Button is an element with press detection. A press acquires the "pressed"
// dependable-action locks, animates toward the pressed offset, and defers
// both the clicked cue and the caller's press action to the animation's
// arrival — so the action fires only after genuine visual feedback, and
// dependents serialized on the button cannot race ahead of it.
type Button struct {
	*core.Element

	isSelected core.Predicate
	isPressed  core.Predicate
	wasPressed bool

	sounds platform.SoundPlayer
	cues   SoundCues

	onPress   func()
	onRelease func()
}

// NewButton creates a button. Sound playback defaults to a no-op player.
func NewButton(name string, width, height float64) *Button {
	b := &Button{
		Element: core.New(name, width, height),
		sounds:  platform.NopSound{},
	}
	b.RegisterAction(ActionPressed)
	return b
}

// SetSelectedCriteria installs the externally supplied selection predicate.
// Lists overwrite this for their children.
func (b *Button) SetSelectedCriteria(p core.Predicate) {
	if p == nil {
		errors.Reportf("widgets.Button.SetSelectedCriteria", errors.KindAuthoring,
			"%q: nil criteria ignored", b.Name())
		return
	}
	b.isSelected = p
}

// SetPressedCriteria installs the externally supplied press predicate,
// typically built on the host's input polling.
func (b *Button) SetPressedCriteria(p core.Predicate) {
	if p == nil {
		errors.Reportf("widgets.Button.SetPressedCriteria", errors.KindAuthoring,
			"%q: nil criteria ignored", b.Name())
		return
	}
	b.isPressed = p
}

// SetSounds wires the button's sound cues to a player.
func (b *Button) SetSounds(player platform.SoundPlayer, cues SoundCues) {
	if player == nil {
		errors.Reportf("widgets.Button.SetSounds", errors.KindAuthoring,
			"%q: nil sound player ignored", b.Name())
		return
	}
	b.sounds = player
	b.cues = cues
}

// SetPressAction installs the callback deferred to the press animation's
// arrival.
func (b *Button) SetPressAction(fn func()) { b.onPress = fn }

// SetReleaseAction installs the callback deferred to the release
// animation's arrival.
func (b *Button) SetReleaseAction(fn func()) { b.onRelease = fn }

// IsSelected reports the selection predicate's current answer. An
// unconfigured predicate is closed, with a one-time diagnostic.
func (b *Button) IsSelected() bool {
	if b.isSelected == nil {
		errors.WarnOnce(b.Name()+"/isSelected",
			"button %q has no isSelected criteria; treating as unselected", b.Name())
		return false
	}
	return b.isSelected()
}

// IsPressed reports the press predicate's current answer.
func (b *Button) IsPressed() bool {
	if b.isPressed == nil {
		errors.WarnOnce(b.Name()+"/isPressed",
			"button %q has no isPressed criteria; treating as unpressed", b.Name())
		return false
	}
	return b.isPressed()
}

// Update runs the element frame step and then the press state machine:
// unselected, selected-idle, selected-pressed. Transitions are driven by
// the polled predicates; while a press animation is in flight the element
// reports suspended and the state machine does not run, so a press cannot
// re-enter itself.
func (b *Button) Update() bool {
	if !b.Element.Update() {
		return false
	}

	pressed := b.IsInteractable() && b.IsSelected() && b.IsPressed()
	switch {
	case pressed && !b.wasPressed:
		b.wasPressed = true
		b.press()
	case !pressed && b.wasPressed:
		b.wasPressed = false
		b.release()
	}
	return true
}

func (b *Button) press() {
	b.playCue(b.cues.Touched)
	b.playCue(b.cues.Held)
	b.BeginAction(ActionPressed, b.Position(), b.OffsetPosition(OffsetPressed), func() {
		b.playCue(b.cues.Clicked)
		if b.onPress != nil {
			b.onPress()
		}
	})
}

func (b *Button) release() {
	if b.cues.Held != "" {
		b.sounds.Stop(b.cues.Held)
	}
	b.Reposition(b.Position(), b.OffsetPosition(OffsetSelected), func() {
		if b.onRelease != nil {
			b.onRelease()
		}
	}, false)
}

func (b *Button) playCue(name string) {
	if name != "" {
		b.sounds.Play(name)
	}
}
