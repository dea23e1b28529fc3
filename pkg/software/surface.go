// Package software implements the rendering surface abstraction in pure
// software, over an image.RGBA. Hosts without hardware rendering (desktop
// previews, golden tests, headless frame dumps) register its Provider so
// element layer composition produces real pixels.
package software

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/platform"
)

// Surface is a software implementation of platform.Surface.
type Surface struct {
	img       *image.RGBA
	face      font.Face
	translate graphics.Offset
	stack     []graphics.Offset
}

// New creates a software surface of the given pixel dimensions.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("software: invalid surface size %dx%d", width, height)
	}
	return &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}, nil
}

// Provider is a platform.SurfaceProvider backed by software surfaces.
// Invalid dimensions are reported and coerced to a 1x1 surface so element
// logic never faults on a bad allocation.
func Provider(width, height int) platform.Surface {
	s, err := New(width, height)
	if err != nil {
		errors.Report("software.Provider", errors.KindRender, err)
		s, _ = New(1, 1)
	}
	return s
}

// RGBA exposes the backing image so hosts can encode or blit frames.
func (s *Surface) RGBA() *image.RGBA { return s.img }

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() graphics.Size {
	b := s.img.Bounds()
	return graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Clear fills the whole surface with a color, replacing existing pixels.
func (s *Surface) Clear(c graphics.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{}, draw.Src)
}

// FillRect fills a rectangle.
func (s *Surface) FillRect(r graphics.Rect, c graphics.Color) {
	draw.Draw(s.img, s.imageRect(r), image.NewUniform(toNRGBA(c)), image.Point{}, draw.Over)
}

// StrokeRect outlines a rectangle with a 1px border.
func (s *Surface) StrokeRect(r graphics.Rect, c graphics.Color) {
	s.FillRect(graphics.RectFromLTWH(r.Left, r.Top, r.Width(), 1), c)
	s.FillRect(graphics.RectFromLTWH(r.Left, r.Bottom-1, r.Width(), 1), c)
	s.FillRect(graphics.RectFromLTWH(r.Left, r.Top, 1, r.Height()), c)
	s.FillRect(graphics.RectFromLTWH(r.Right-1, r.Top, 1, r.Height()), c)
}

// DrawLine draws a 1px line between two points.
func (s *Surface) DrawLine(from, to graphics.Offset, c graphics.Color) {
	from = from.Add(s.translate)
	to = to.Add(s.translate)
	col := toNRGBA(c)

	steps := math.Max(math.Abs(to.X-from.X), math.Abs(to.Y-from.Y))
	if steps < 1 {
		s.img.Set(int(math.Round(from.X)), int(math.Round(from.Y)), col)
		return
	}
	dx := (to.X - from.X) / steps
	dy := (to.Y - from.Y) / steps
	x, y := from.X, from.Y
	for i := 0.0; i <= steps; i++ {
		s.img.Set(int(math.Round(x)), int(math.Round(y)), col)
		x += dx
		y += dy
	}
}

// DrawText renders text with its baseline-left at the given point, using
// the built-in 7x13 bitmap face.
func (s *Surface) DrawText(text string, at graphics.Offset, c graphics.Color) {
	at = at.Add(s.translate)
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(toNRGBA(c)),
		Face: s.face,
		Dot:  fixed.P(int(math.Round(at.X)), int(math.Round(at.Y))),
	}
	d.DrawString(text)
}

// Push saves the current drawing translation.
func (s *Surface) Push() {
	s.stack = append(s.stack, s.translate)
}

// Translate shifts subsequent drawing by the given offset.
func (s *Surface) Translate(o graphics.Offset) {
	s.translate = s.translate.Add(o)
}

// Pop restores the most recently pushed translation. Unbalanced pops are
// reported and ignored.
func (s *Surface) Pop() {
	if len(s.stack) == 0 {
		errors.Reportf("software.Surface.Pop", errors.KindRender, "pop without matching push")
		return
	}
	s.translate = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Composite draws another surface onto this one at an offset. Sources that
// are not software surfaces are reported and skipped.
func (s *Surface) Composite(src platform.Surface, at graphics.Offset) {
	ss, ok := src.(*Surface)
	if !ok {
		errors.Reportf("software.Surface.Composite", errors.KindRender,
			"cannot composite %T onto a software surface", src)
		return
	}
	at = at.Add(s.translate)
	b := ss.img.Bounds()
	dst := image.Rect(
		int(math.Round(at.X)), int(math.Round(at.Y)),
		int(math.Round(at.X))+b.Dx(), int(math.Round(at.Y))+b.Dy(),
	)
	draw.Draw(s.img, dst, ss.img, b.Min, draw.Over)
}

func (s *Surface) imageRect(r graphics.Rect) image.Rectangle {
	r = r.Translate(s.translate)
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}

func toNRGBA(c graphics.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}
