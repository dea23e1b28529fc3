package core

import (
	"testing"
	"time"

	"github.com/go-slate/slate/pkg/animation"
	"github.com/go-slate/slate/pkg/graphics"
	slatetest "github.com/go-slate/slate/pkg/testing"
)

func withFakeClock(t *testing.T) *slatetest.FakeClock {
	t.Helper()
	clk := slatetest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func alwaysOn(e *Element) {
	e.SetEnablingCriteria(
		func() bool { return true },
		func() bool { return true },
		func() bool { return true },
	)
}

func TestAddChildrenShiftsPositionAndZIndex(t *testing.T) {
	withRecordingHandler(t)

	parent := New("parent", 100, 100)
	parent.SetPosition(graphics.Offset{X: 10, Y: 20})
	parent.SetZIndex(3)

	child := New("child", 10, 10)
	child.PlaceAt(graphics.Offset{X: 5, Y: 5})
	child.SetZIndex(2)

	added := parent.AddChildren([]Node{child}, false)
	if len(added) != 1 || added[0] != child {
		t.Fatalf("added = %v, want the child", added)
	}
	if got := child.DefaultPosition(); got != (graphics.Offset{X: 15, Y: 25}) {
		t.Fatalf("child default position = %+v, want {15 25}", got)
	}
	if got := child.ZIndex(); got != 5 {
		t.Fatalf("child z = %d, want own 2 + parent 3 = 5", got)
	}
	if child.Parent() != parent {
		t.Fatal("child parent not set")
	}
}

func TestAddChildrenSkipsNilChildren(t *testing.T) {
	h := withRecordingHandler(t)

	parent := New("parent", 100, 100)
	child := New("child", 10, 10)

	added := parent.AddChildren([]Node{nil, child, (*Element)(nil)}, false)
	if len(added) != 1 {
		t.Fatalf("added %d children, want 1", len(added))
	}
	if len(h.errs) != 2 {
		t.Fatalf("want 2 authoring diagnostics, got %d", len(h.errs))
	}
}

func TestReparentingRederivesPositionAndZ(t *testing.T) {
	withRecordingHandler(t)

	p1 := New("p1", 100, 100)
	p1.SetPosition(graphics.Offset{X: 10, Y: 10})
	p1.SetZIndex(5)
	p2 := New("p2", 100, 100)
	p2.SetPosition(graphics.Offset{X: 20, Y: 20})
	p2.SetZIndex(10)

	child := New("child", 10, 10)
	child.PlaceAt(graphics.Offset{X: 1, Y: 1})
	child.SetZIndex(1)
	leaf := New("leaf", 5, 5)
	leaf.SetZIndex(1)
	child.AddChildren([]Node{leaf}, false)

	p1.AddChildren([]Node{child}, false)
	p2.AddChildren([]Node{child}, false)

	// Only the child's own local offsets plus the current parent's remain.
	if got := child.DefaultPosition(); got != (graphics.Offset{X: 21, Y: 21}) {
		t.Fatalf("child default pos = %+v, want {21 21}", got)
	}
	if got := child.ZIndex(); got != 11 {
		t.Fatalf("child z = %d, want own 1 + p2's 10 = 11", got)
	}
	if got := leaf.ZIndex(); got != 12 {
		t.Fatalf("leaf z = %d, want own 1 + child's 11 = 12", got)
	}
	if child.Parent() != p2 || len(p1.Children()) != 0 {
		t.Fatal("child must have moved from p1 to p2")
	}
}

func TestAddChildrenRejectsCycles(t *testing.T) {
	h := withRecordingHandler(t)

	grand := New("grand", 100, 100)
	parent := New("parent", 50, 50)
	child := New("child", 10, 10)
	grand.AddChildren([]Node{parent}, false)
	parent.AddChildren([]Node{child}, false)

	if added := child.AddChildren([]Node{grand}, false); len(added) != 0 {
		t.Fatal("adding an ancestor as a child must be rejected")
	}
	if added := child.AddChildren([]Node{child}, false); len(added) != 0 {
		t.Fatal("adding an element to itself must be rejected")
	}
	if grand.Parent() != nil {
		t.Fatal("rejected add must not re-parent the ancestor")
	}
	if len(h.errs) != 2 {
		t.Fatalf("want 2 authoring diagnostics, got %d", len(h.errs))
	}
}

func TestAddChildrenWiresOnScreenToParent(t *testing.T) {
	withRecordingHandler(t)
	withFakeClock(t)

	parent := New("parent", 100, 100)
	parentVisible := false
	parent.SetEnablingCriteria(
		func() bool { return parentVisible },
		func() bool { return true },
		func() bool { return true },
	)

	child := New("child", 10, 10)
	child.SetUpdatingCriteria(func() bool { return true })
	child.SetInteractivityCriteria(func() bool { return true })
	parent.AddChildren([]Node{child}, true)

	parent.Update()
	child.Update()
	if child.IsOnScreen() {
		t.Fatal("child should be off screen while parent is")
	}

	parentVisible = true
	parent.Update()
	child.Update()
	if !child.IsOnScreen() {
		t.Fatal("child should be on screen with parent")
	}
}

func TestOffsetPositionsAccumulate(t *testing.T) {
	withRecordingHandler(t)

	e := New("e", 10, 10)
	e.OffsetPositions(map[string]graphics.Offset{"selected": {X: 1}})
	e.OffsetPositions(map[string]graphics.Offset{"selected": {X: 1}})

	if got := e.Offset("selected"); got != (graphics.Offset{X: 2}) {
		t.Fatalf("selected offset = %+v, want accumulated {2 0}", got)
	}
}

func TestResetOffsetsZeroesOnlyNamed(t *testing.T) {
	withRecordingHandler(t)

	e := New("e", 10, 10)
	e.OffsetPositions(map[string]graphics.Offset{
		"selected": {X: 2},
		"pressed":  {Y: 3},
	})
	e.ResetOffsets("selected")

	if got := e.Offset("selected"); !got.IsZero() {
		t.Fatalf("selected offset = %+v, want zero", got)
	}
	if got := e.Offset("pressed"); got != (graphics.Offset{Y: 3}) {
		t.Fatalf("pressed offset = %+v, want untouched {0 3}", got)
	}
}

func TestSetZIndexPropagatesEagerly(t *testing.T) {
	withRecordingHandler(t)

	root := New("root", 100, 100)
	a := New("a", 10, 10)
	b := New("b", 10, 10)
	leaf := New("leaf", 5, 5)

	a.SetZIndex(1)
	b.SetZIndex(2)
	root.AddChildren([]Node{a, b}, false)
	a.AddChildren([]Node{leaf}, false)

	root.SetZIndex(10)
	if got := a.ZIndex(); got != 11 {
		t.Fatalf("a.z = %d, want 11", got)
	}
	if got := b.ZIndex(); got != 12 {
		t.Fatalf("b.z = %d, want 12", got)
	}
	if got := leaf.ZIndex(); got != 11 {
		t.Fatalf("leaf.z = %d, want 11", got)
	}
	if a.ZIndex() >= b.ZIndex() {
		t.Fatal("relative sibling order must be preserved")
	}

	// A second change re-derives from the prior values.
	root.SetZIndex(0)
	if a.ZIndex() != 1 || b.ZIndex() != 2 || leaf.ZIndex() != 1 {
		t.Fatalf("after reset: a=%d b=%d leaf=%d, want 1 2 1",
			a.ZIndex(), b.ZIndex(), leaf.ZIndex())
	}
}

func TestMoveToTranslatesDescendants(t *testing.T) {
	withRecordingHandler(t)

	parent := New("parent", 100, 100)
	parent.PlaceAt(graphics.Offset{X: 10, Y: 10})
	child := New("child", 10, 10)
	child.PlaceAt(graphics.Offset{X: 5, Y: 0})
	parent.AddChildren([]Node{child}, false)

	childBefore := child.Position()
	parent.MoveTo(graphics.Offset{X: 30, Y: 10}, false)

	wantChild := childBefore.Add(graphics.Offset{X: 20})
	if got := child.Position(); got != wantChild {
		t.Fatalf("child position = %+v, want %+v", got, wantChild)
	}

	parent.MoveTo(graphics.Offset{X: 0, Y: 0}, true)
	if got := child.Position(); got != wantChild {
		t.Fatalf("child moved despite dontMoveChildren: %+v", got)
	}
}

func TestRepositionSuspendsUpdatesUntilArrival(t *testing.T) {
	withRecordingHandler(t)
	clk := withFakeClock(t)

	e := New("e", 10, 10)
	alwaysOn(e)
	e.SetMoveSpeed(100) // 100px at 100px/s: one second of travel

	arrivals := 0
	e.Reposition(graphics.Offset{}, graphics.Offset{X: 100}, func() { arrivals++ }, false)

	if e.Update() {
		t.Fatal("update must report suspended at move start")
	}
	clk.Advance(500 * time.Millisecond)
	if e.Update() {
		t.Fatal("update must report suspended mid-flight")
	}
	clk.Advance(600 * time.Millisecond)
	if e.Update() {
		t.Fatal("the arrival frame still counts as suspended")
	}
	if arrivals != 1 {
		t.Fatalf("arrival callback fired %d times, want exactly 1", arrivals)
	}
	if !e.Update() {
		t.Fatal("update must report available after arrival")
	}
	if got := e.Position(); got != (graphics.Offset{X: 100}) {
		t.Fatalf("position = %+v, want destination", got)
	}
	if arrivals != 1 {
		t.Fatalf("arrival callback re-fired: %d", arrivals)
	}
}

func TestZeroDistanceRepositionArrivesOnFirstUpdate(t *testing.T) {
	withRecordingHandler(t)
	withFakeClock(t)

	e := New("e", 10, 10)
	alwaysOn(e)

	arrived := false
	at := graphics.Offset{X: 7, Y: 7}
	e.Reposition(at, at, func() { arrived = true }, false)

	e.Update() // the arrival frame
	if !arrived {
		t.Fatal("zero-distance move must arrive on its first poll")
	}
	if !e.Update() {
		t.Fatal("element must be available the frame after instant arrival")
	}
}

func TestBeginActionHoldsLocksUntilArrival(t *testing.T) {
	withRecordingHandler(t)
	clk := withFakeClock(t)

	e := New("e", 10, 10)
	alwaysOn(e)
	e.SetMoveSpeed(100)
	e.OffsetPositions(map[string]graphics.Offset{OffsetDisabled: {Y: 100}})

	dep := NewLock("dep")
	e.LockWhile(ActionEnteringScreen, dep)

	e.Add()
	if dep.IsUnlocked() || e.ActionLock().IsUnlocked() {
		t.Fatal("entering locks must be held for the action's duration")
	}

	clk.Advance(500 * time.Millisecond)
	e.Update()
	if dep.IsUnlocked() {
		t.Fatal("entering locks must stay held mid-flight")
	}

	clk.Advance(600 * time.Millisecond)
	e.Update()
	if !dep.IsUnlocked() || !e.ActionLock().IsUnlocked() {
		t.Fatal("entering locks must be released after arrival")
	}
	if got := e.Position(); got != e.DefaultPosition() {
		t.Fatalf("position = %+v, want default %+v", got, e.DefaultPosition())
	}
}

func TestRemoveThenAddSupersedesRemoval(t *testing.T) {
	withRecordingHandler(t)
	clk := withFakeClock(t)

	e := New("e", 10, 10)
	alwaysOn(e)
	e.SetMoveSpeed(100)
	e.PlaceAt(graphics.Offset{X: 50, Y: 50})
	e.OffsetPositions(map[string]graphics.Offset{OffsetDisabled: {Y: 100}})

	removed := false
	e.BeginAction(ActionExitingScreen, e.DefaultPosition(),
		e.OffsetPosition(OffsetDisabled), func() { removed = true })

	clk.Advance(200 * time.Millisecond)
	e.Update()

	// Re-add mid-exit: the removal's arrival callback is superseded, but
	// its lock hold must not leak.
	e.Add()
	if e.ActionLock().Holds() != 1 {
		t.Fatalf("action lock holds = %d, want only the entering hold", e.ActionLock().Holds())
	}

	for i := 0; i < 30; i++ {
		clk.Advance(100 * time.Millisecond)
		e.Update()
	}

	if removed {
		t.Fatal("superseded removal callback must never fire")
	}
	if !e.ActionLock().IsUnlocked() {
		t.Fatal("all action locks must be released once the add arrives")
	}
	if got := e.Position(); got != e.DefaultPosition() {
		t.Fatalf("element must end in the added state at %+v, got %+v",
			e.DefaultPosition(), got)
	}
}

func TestLockWhileValidation(t *testing.T) {
	h := withRecordingHandler(t)

	e := New("e", 10, 10)
	e.LockWhile("no-such-action", NewLock("x"))
	e.LockWhile(ActionEnteringScreen, nil)

	if len(h.errs) != 2 {
		t.Fatalf("want 2 authoring diagnostics, got %d", len(h.errs))
	}
}

func TestSetCriteriaRejectsNil(t *testing.T) {
	h := withRecordingHandler(t)

	e := New("e", 10, 10)
	e.SetOnScreenCriteria(nil)
	e.SetUpdatingCriteria(nil)
	e.SetInteractivityCriteria(nil)

	if len(h.errs) != 3 {
		t.Fatalf("want 3 authoring diagnostics, got %d", len(h.errs))
	}
}
