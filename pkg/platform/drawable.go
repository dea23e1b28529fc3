package platform

import "github.com/go-slate/slate/pkg/graphics"

// RectDrawable is a plain filled (and optionally outlined) rectangle,
// enough for the flat panels and frames the timer screens use.
type RectDrawable struct {
	Size   graphics.Size
	Fill   graphics.Color
	Stroke graphics.Color
}

// Draw renders the rectangle with its top-left at the point.
func (r RectDrawable) Draw(dst Surface, at graphics.Offset) {
	rect := graphics.RectFromLTWH(at.X, at.Y, r.Size.Width, r.Size.Height)
	if r.Fill != graphics.ColorTransparent {
		dst.FillRect(rect, r.Fill)
	}
	if r.Stroke != graphics.ColorTransparent {
		dst.StrokeRect(rect, r.Stroke)
	}
}

// DrawSize returns the rectangle's dimensions.
func (r RectDrawable) DrawSize() graphics.Size { return r.Size }
