package platform

// Button identifies a physical input on the handheld.
type Button int

const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonA
	ButtonB
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonA:
		return "a"
	case ButtonB:
		return "b"
	default:
		return "unknown"
	}
}

// Input polls physical button state. Lists and buttons build their
// selection and press predicates on top of it.
type Input interface {
	// ButtonJustPressed reports a press edge since the previous frame.
	ButtonJustPressed(b Button) bool
	// ButtonIsPressed reports the button's current held state.
	ButtonIsPressed(b Button) bool
}

// NopInput reports no input at all.
type NopInput struct{}

// ButtonJustPressed implements Input.
func (NopInput) ButtonJustPressed(Button) bool { return false }

// ButtonIsPressed implements Input.
func (NopInput) ButtonIsPressed(Button) bool { return false }
