package core

import (
	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/platform"
)

// layerSet holds an element's render layers and its offscreen composite.
// Layers are composited bottom-to-top (background, foreground, text) onto
// one surface, redrawn only when something changed.
type layerSet struct {
	background platform.Drawable
	foreground platform.Drawable
	fgTable    platform.ImageTable
	text       string
	textColor  graphics.Color

	surface platform.Surface
	dirty   bool
}

// advance steps an animated foreground one frame and marks the composite
// dirty when the frame changed, then redraws if needed.
func (ls *layerSet) advance(e *Element) {
	if ls.fgTable != nil && ls.fgTable.Advance() {
		ls.dirty = true
	}
	if ls.dirty {
		e.Redraw()
	}
}

// SetBackground installs the bottom render layer. Nil clears the layer.
func (e *Element) SetBackground(d platform.Drawable) {
	e.layers.background = d
	e.checkLayerBounds("SetBackground", d)
	e.layers.dirty = true
}

// SetForeground installs a static middle render layer. Nil clears the
// layer, including any animated foreground.
func (e *Element) SetForeground(d platform.Drawable) {
	e.layers.foreground = d
	e.layers.fgTable = nil
	e.checkLayerBounds("SetForeground", d)
	e.layers.dirty = true
}

// SetAnimatedForeground installs an image-table foreground whose playback
// advances once per update while playing.
func (e *Element) SetAnimatedForeground(t platform.ImageTable) {
	if t == nil {
		errors.Reportf("core.Element.SetAnimatedForeground", errors.KindAuthoring,
			"%q: nil image table ignored", e.name)
		return
	}
	e.layers.fgTable = t
	e.layers.foreground = platform.TableDrawable{Table: t}
	e.layers.dirty = true
}

// ForegroundTable returns the animated foreground's image table, or nil when
// the foreground is static.
func (e *Element) ForegroundTable() platform.ImageTable {
	return e.layers.fgTable
}

// SetTextLayer installs the top render layer.
func (e *Element) SetTextLayer(text string, c graphics.Color) {
	e.layers.text = text
	e.layers.textColor = c
	e.layers.dirty = true
}

// TextLayer returns the current text layer contents.
func (e *Element) TextLayer() string { return e.layers.text }

func (e *Element) checkLayerBounds(op string, d platform.Drawable) {
	if d == nil {
		return
	}
	s := d.DrawSize()
	if s.Width > e.width || s.Height > e.height {
		errors.WarnOnce(e.name+"/"+op,
			"%q: layer content %.0fx%.0f exceeds element bounds %.0fx%.0f; drawing anyway",
			e.name, s.Width, s.Height, e.width, e.height)
	}
}

// Redraw composites the layers bottom-to-top onto the element's offscreen
// surface. The surface is allocated lazily from the registered provider.
func (e *Element) Redraw() {
	if e.layers.surface == nil {
		e.layers.surface = platform.NewSurface(int(e.width), int(e.height))
	}
	s := e.layers.surface
	s.Clear(graphics.ColorTransparent)
	if e.layers.background != nil {
		e.layers.background.Draw(s, graphics.Offset{})
	}
	if e.layers.foreground != nil {
		e.layers.foreground.Draw(s, graphics.Offset{})
	}
	if e.layers.text != "" {
		// Baseline roughly centered for the small built-in faces.
		at := graphics.Offset{X: 4, Y: e.height/2 + 4}
		s.DrawText(e.layers.text, at, e.layers.textColor)
	}
	e.layers.dirty = false
}

// Draw composites the element's offscreen surface onto dst at the element's
// current position. Elements that are not on screen draw nothing. Children
// are not drawn here; the [Stage] composites all visible elements in
// z order.
func (e *Element) Draw(dst platform.Surface) {
	if !e.onScreen || dst == nil {
		return
	}
	if e.layers.surface == nil || e.layers.dirty {
		e.Redraw()
	}
	dst.Composite(e.layers.surface, e.pos)
}
