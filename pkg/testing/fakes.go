package testing

import (
	"fmt"

	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/platform"
)

// RecordingSurface implements platform.Surface by recording draw calls as
// readable op strings, for asserting on composition order and placement.
type RecordingSurface struct {
	size      graphics.Size
	translate graphics.Offset
	stack     []graphics.Offset

	// Ops records every draw call in order.
	Ops []string
}

// NewRecordingSurface creates a recording surface of the given size.
func NewRecordingSurface(width, height int) *RecordingSurface {
	return &RecordingSurface{size: graphics.Size{Width: float64(width), Height: float64(height)}}
}

// RecordingProvider is a platform.SurfaceProvider yielding recording
// surfaces.
func RecordingProvider(width, height int) platform.Surface {
	return NewRecordingSurface(width, height)
}

func (s *RecordingSurface) record(format string, args ...any) {
	s.Ops = append(s.Ops, fmt.Sprintf(format, args...))
}

// Size implements platform.Surface.
func (s *RecordingSurface) Size() graphics.Size { return s.size }

// Clear implements platform.Surface.
func (s *RecordingSurface) Clear(c graphics.Color) {
	s.record("clear %08x", uint32(c))
}

// FillRect implements platform.Surface.
func (s *RecordingSurface) FillRect(r graphics.Rect, c graphics.Color) {
	r = r.Translate(s.translate)
	s.record("fill (%g,%g %gx%g) %08x", r.Left, r.Top, r.Width(), r.Height(), uint32(c))
}

// StrokeRect implements platform.Surface.
func (s *RecordingSurface) StrokeRect(r graphics.Rect, c graphics.Color) {
	r = r.Translate(s.translate)
	s.record("stroke (%g,%g %gx%g) %08x", r.Left, r.Top, r.Width(), r.Height(), uint32(c))
}

// DrawLine implements platform.Surface.
func (s *RecordingSurface) DrawLine(from, to graphics.Offset, c graphics.Color) {
	from = from.Add(s.translate)
	to = to.Add(s.translate)
	s.record("line (%g,%g)-(%g,%g) %08x", from.X, from.Y, to.X, to.Y, uint32(c))
}

// DrawText implements platform.Surface.
func (s *RecordingSurface) DrawText(text string, at graphics.Offset, c graphics.Color) {
	at = at.Add(s.translate)
	s.record("text %q (%g,%g) %08x", text, at.X, at.Y, uint32(c))
}

// Push implements platform.Surface.
func (s *RecordingSurface) Push() {
	s.stack = append(s.stack, s.translate)
}

// Translate implements platform.Surface.
func (s *RecordingSurface) Translate(o graphics.Offset) {
	s.translate = s.translate.Add(o)
}

// Pop implements platform.Surface.
func (s *RecordingSurface) Pop() {
	if len(s.stack) == 0 {
		return
	}
	s.translate = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Composite implements platform.Surface, recording the source's size and
// placement.
func (s *RecordingSurface) Composite(src platform.Surface, at graphics.Offset) {
	at = at.Add(s.translate)
	sz := src.Size()
	s.record("composite %gx%g @(%g,%g)", sz.Width, sz.Height, at.X, at.Y)
}

// FakeInput implements platform.Input with directly settable button state.
type FakeInput struct {
	just map[platform.Button]bool
	held map[platform.Button]bool
}

// NewFakeInput creates an input fake with no buttons down.
func NewFakeInput() *FakeInput {
	return &FakeInput{
		just: map[platform.Button]bool{},
		held: map[platform.Button]bool{},
	}
}

// Press marks a button as just pressed and held.
func (f *FakeInput) Press(b platform.Button) {
	f.just[b] = true
	f.held[b] = true
}

// Release clears a button entirely.
func (f *FakeInput) Release(b platform.Button) {
	delete(f.just, b)
	delete(f.held, b)
}

// EndFrame clears the just-pressed edges, as a real poll would between
// frames, leaving held state intact.
func (f *FakeInput) EndFrame() {
	f.just = map[platform.Button]bool{}
}

// ButtonJustPressed implements platform.Input.
func (f *FakeInput) ButtonJustPressed(b platform.Button) bool { return f.just[b] }

// ButtonIsPressed implements platform.Input.
func (f *FakeInput) ButtonIsPressed(b platform.Button) bool { return f.held[b] }

// RecordingSound implements platform.SoundPlayer by recording calls.
type RecordingSound struct {
	Played  []string
	Stopped []string
	Volumes map[string]float64
}

// NewRecordingSound creates an empty sound recorder.
func NewRecordingSound() *RecordingSound {
	return &RecordingSound{Volumes: map[string]float64{}}
}

// Play implements platform.SoundPlayer.
func (r *RecordingSound) Play(name string) { r.Played = append(r.Played, name) }

// Stop implements platform.SoundPlayer.
func (r *RecordingSound) Stop(name string) { r.Stopped = append(r.Stopped, name) }

// SetVolume implements platform.SoundPlayer.
func (r *RecordingSound) SetVolume(name string, v float64) { r.Volumes[name] = v }

// PlayCount returns how many times a cue was played.
func (r *RecordingSound) PlayCount(name string) int {
	n := 0
	for _, p := range r.Played {
		if p == name {
			n++
		}
	}
	return n
}

// RecordingHandler implements errors.ErrorHandler by collecting reports,
// for asserting on diagnostics.
type RecordingHandler struct {
	Errors   []*errors.SlateError
	Warnings []string
}

// HandleError implements errors.ErrorHandler.
func (h *RecordingHandler) HandleError(err *errors.SlateError) {
	h.Errors = append(h.Errors, err)
}

// HandleWarning implements errors.ErrorHandler.
func (h *RecordingHandler) HandleWarning(message string) {
	h.Warnings = append(h.Warnings, message)
}
