// Package platform defines the narrow interfaces through which the slate
// core consumes its host: a rendering surface, frame-sequence playback,
// sound cues, and input polling. The core never talks to hardware directly;
// hosts register concrete implementations and the core degrades to safe
// no-ops when a collaborator is left unwired.
package platform

import (
	"sync"

	"github.com/go-slate/slate/pkg/graphics"
)

// Surface is the drawing abstraction elements composite their layers onto.
// Implementations are not required to be safe for concurrent use; the frame
// loop is single-threaded by contract.
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() graphics.Size
	// Clear fills the whole surface with a color.
	Clear(c graphics.Color)
	// FillRect fills a rectangle.
	FillRect(r graphics.Rect, c graphics.Color)
	// StrokeRect outlines a rectangle with a 1px border.
	StrokeRect(r graphics.Rect, c graphics.Color)
	// DrawLine draws a 1px line between two points.
	DrawLine(from, to graphics.Offset, c graphics.Color)
	// DrawText renders text with its baseline-left at the given point.
	DrawText(text string, at graphics.Offset, c graphics.Color)
	// Push saves the current drawing translation.
	Push()
	// Translate shifts subsequent drawing by the given offset.
	Translate(o graphics.Offset)
	// Pop restores the most recently pushed translation.
	Pop()
	// Composite draws another surface onto this one at an offset.
	Composite(src Surface, at graphics.Offset)
}

// Drawable is anything an element layer can render.
type Drawable interface {
	// Draw renders the drawable onto dst with its top-left at the point.
	Draw(dst Surface, at graphics.Offset)
	// DrawSize returns the drawable's natural dimensions.
	DrawSize() graphics.Size
}

// SurfaceProvider allocates offscreen surfaces for element layer
// composition. Hosts register one at startup.
type SurfaceProvider func(width, height int) Surface

var (
	surfaceMu       sync.RWMutex
	surfaceProvider SurfaceProvider = newNopSurface
)

// SetSurfaceProvider registers the host's offscreen surface factory.
// Passing nil restores the no-op provider. Returns the previous provider.
func SetSurfaceProvider(p SurfaceProvider) SurfaceProvider {
	surfaceMu.Lock()
	defer surfaceMu.Unlock()
	prev := surfaceProvider
	if p == nil {
		p = newNopSurface
	}
	surfaceProvider = p
	return prev
}

// NewSurface allocates an offscreen surface from the registered provider.
func NewSurface(width, height int) Surface {
	surfaceMu.RLock()
	p := surfaceProvider
	surfaceMu.RUnlock()
	return p(width, height)
}

// nopSurface silently absorbs draw calls. It is the default so that element
// logic can be exercised (and unit-tested) with no renderer wired in.
type nopSurface struct {
	size graphics.Size
}

func newNopSurface(width, height int) Surface {
	return &nopSurface{size: graphics.Size{Width: float64(width), Height: float64(height)}}
}

func (s *nopSurface) Size() graphics.Size { return s.size }

func (s *nopSurface) Clear(graphics.Color) {}

func (s *nopSurface) FillRect(graphics.Rect, graphics.Color) {}

func (s *nopSurface) StrokeRect(graphics.Rect, graphics.Color) {}

func (s *nopSurface) DrawLine(_, _ graphics.Offset, _ graphics.Color) {}

func (s *nopSurface) DrawText(_ string, _ graphics.Offset, _ graphics.Color) {}

func (s *nopSurface) Push() {}

func (s *nopSurface) Translate(graphics.Offset) {}

func (s *nopSurface) Pop() {}

func (s *nopSurface) Composite(Surface, graphics.Offset) {}
