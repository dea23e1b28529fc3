package widgets

import (
	"strings"
	"testing"
	"time"

	"github.com/go-slate/slate/pkg/graphics"
)

type cursorFixture struct {
	cursor *Cursor
	b1, b2 *Button
	sel1   bool
	sel2   bool
}

func newCursorFixture(t *testing.T) (*cursorFixture, *recordingHandler) {
	t.Helper()
	h := withRecordingHandler(t)
	withRecordingSurfaces(t)

	f := &cursorFixture{}
	f.b1 = NewButton("b1", 20, 10)
	f.b2 = NewButton("b2", 20, 10)
	f.b1.PlaceAt(graphics.Offset{X: 10, Y: 10})
	f.b2.PlaceAt(graphics.Offset{X: 10, Y: 30})
	f.b1.SetSelectedCriteria(func() bool { return f.sel1 })
	f.b2.SetSelectedCriteria(func() bool { return f.sel2 })

	f.cursor = NewCursor("cursor", 8, 8)
	enableAll(f.cursor)
	f.cursor.SetMoveSpeed(1000)
	f.cursor.Track(f.b1, AnchorTopLeft)
	f.cursor.Track(f.b2, AnchorTopLeft)
	return f, h
}

func (f *cursorFixture) settle(t *testing.T, clk interface{ Advance(time.Duration) }) {
	t.Helper()
	for i := 0; i < 50; i++ {
		clk.Advance(20 * time.Millisecond)
		if f.cursor.Update() {
			return
		}
	}
	t.Fatal("cursor never settled")
}

func TestCursorFollowsSelectionChanges(t *testing.T) {
	f, _ := newCursorFixture(t)
	clk := withFakeClock(t)

	f.sel1 = true
	f.cursor.Update()
	if !f.cursor.IsMoving() {
		t.Fatal("cursor must start moving when a target becomes selected")
	}
	f.settle(t, clk)
	if got := f.cursor.Position(); got != f.b1.Position() {
		t.Fatalf("cursor at %+v, want b1's anchor %+v", got, f.b1.Position())
	}

	f.sel1, f.sel2 = false, true
	f.cursor.Update()
	f.settle(t, clk)
	if got := f.cursor.Position(); got != f.b2.Position() {
		t.Fatalf("cursor at %+v, want b2's anchor %+v", got, f.b2.Position())
	}
	if f.cursor.Tracked() != SelectionSource(f.b2) {
		t.Fatal("cursor must track the newly selected target")
	}
}

func TestCursorNoChurnOnStableSelection(t *testing.T) {
	f, _ := newCursorFixture(t)
	clk := withFakeClock(t)

	f.sel1 = true
	f.cursor.Update()
	f.settle(t, clk)

	// Same selection every frame after settling: no new animation.
	for i := 0; i < 5; i++ {
		f.cursor.Update()
		if f.cursor.IsMoving() {
			t.Fatal("cursor must not re-animate while the selection is unchanged")
		}
	}
}

func TestCursorReportsSelectionExclusivityBug(t *testing.T) {
	f, h := newCursorFixture(t)
	withFakeClock(t)

	f.sel1, f.sel2 = true, true
	f.cursor.Update()

	found := false
	for _, w := range h.warnings {
		if strings.Contains(w, "simultaneously selected") {
			found = true
		}
	}
	if !found {
		t.Fatalf("multi-selection must be reported, warnings=%v", h.warnings)
	}
	// First selected target wins; no fault.
	if f.cursor.Tracked() != SelectionSource(f.b1) {
		t.Fatal("cursor must track the first selected target")
	}
}

func TestCursorTrackValidation(t *testing.T) {
	h := withRecordingHandler(t)

	c := NewCursor("c", 8, 8)
	c.Track(nil, AnchorTopLeft)
	if len(h.errs) != 1 {
		t.Fatalf("nil target must be reported, errs=%d", len(h.errs))
	}
}
