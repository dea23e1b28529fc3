// Package graphics provides the geometry and color value types shared by the
// slate element tree, its animations, and its rendering collaborators.
package graphics

import "math"

// Offset represents a 2D point or translation vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns the component-wise difference of two offsets.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale returns the offset multiplied by a scalar.
func (o Offset) Scale(f float64) Offset {
	return Offset{X: o.X * f, Y: o.Y * f}
}

// Distance returns the Euclidean distance to another offset.
func (o Offset) Distance(other Offset) float64 {
	return math.Hypot(other.X-o.X, other.Y-o.Y)
}

// IsZero reports whether both components are exactly zero.
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Lerp linearly interpolates between two offsets at progress t in [0, 1].
func Lerp(a, b Offset, t float64) Offset {
	return Offset{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty reports whether either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// TopLeft returns the rectangle's top-left corner.
func (r Rect) TopLeft() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(o Offset) Rect {
	return Rect{
		Left:   r.Left + o.X,
		Top:    r.Top + o.Y,
		Right:  r.Right + o.X,
		Bottom: r.Bottom + o.Y,
	}
}

// Contains reports whether the point lies within the rectangle
// (inclusive left/top, exclusive right/bottom).
func (r Rect) Contains(o Offset) bool {
	return o.X >= r.Left && o.X < r.Right && o.Y >= r.Top && o.Y < r.Bottom
}
