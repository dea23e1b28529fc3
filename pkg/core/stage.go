package core

import (
	"sort"

	"github.com/go-slate/slate/pkg/platform"
)

// Updater is a node with per-frame behavior beyond the base element step.
// The stage dispatches the tick through it when a node implements it, which
// is how widget specializations get their Update run.
type Updater interface {
	Node
	Update() bool
}

// Stage is the frame driver: it owns the top-level elements and runs the
// per-frame tick that every live element's Update hangs off. Hosts call
// Tick once per display refresh and Render when they want a composite.
type Stage struct {
	roots []*Element
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// Manage adds top-level elements to the stage's tick and render traversal.
func (st *Stage) Manage(nodes ...Node) {
	for _, n := range nodes {
		if n == nil || n.Base() == nil {
			continue
		}
		el := n.Base()
		el.self = n
		st.roots = append(st.roots, el)
	}
}

// Release removes a top-level element from the stage. Its subtree stays
// intact; it simply stops being ticked and rendered.
func (st *Stage) Release(n Node) {
	if n == nil || n.Base() == nil {
		return
	}
	el := n.Base()
	for i, r := range st.roots {
		if r == el {
			st.roots = append(st.roots[:i], st.roots[i+1:]...)
			return
		}
	}
}

// Tick runs one frame: every element in every managed tree is updated,
// depth-first in insertion order. Elements whose switch reports them not
// updating still evaluate their switch (that is how the flags refresh) but
// their subtree is skipped.
func (st *Stage) Tick() {
	for _, r := range st.roots {
		tickTree(r)
	}
}

func tickTree(e *Element) {
	if u, ok := e.self.(Updater); ok {
		u.Update()
	} else {
		e.Update()
	}
	if !e.updating {
		return
	}
	for _, c := range e.children {
		tickTree(c)
	}
}

// Render composites every on-screen element, bottom-to-top by z-index, onto
// dst. The sort is stable so siblings with equal z keep insertion order.
func (st *Stage) Render(dst platform.Surface) {
	var visible []*Element
	for _, r := range st.roots {
		collectVisible(r, &visible)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].zIndex < visible[j].zIndex
	})
	for _, e := range visible {
		e.Draw(dst)
	}
}

func collectVisible(e *Element, out *[]*Element) {
	if e.onScreen {
		*out = append(*out, e)
	}
	for _, c := range e.children {
		collectVisible(c, out)
	}
}
