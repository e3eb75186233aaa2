// Package geometry provides the sizes, points, rectangles and size proposals
// exchanged between a container layout and its subviews.
package geometry

import (
	"fmt"
	"math"
)

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in layout coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions.
type Size struct {
	Width  float64
	Height float64
}

// IsFinite reports whether both dimensions are finite numbers.
func (s Size) IsFinite() bool {
	return isFinite(s.Width) && isFinite(s.Height)
}

// ApproxEqual reports whether two sizes match within a small tolerance.
func (s Size) ApproxEqual(other Size) bool {
	return floatEqual(s.Width, other.Width) && floatEqual(s.Height, other.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
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

// RectFromOffsetSize constructs a Rect with origin at offset.
func RectFromOffsetSize(offset Offset, size Size) Rect {
	return RectFromLTWH(offset.X, offset.Y, size.Width, size.Height)
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

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Overlaps reports whether the interiors of two rectangles intersect.
func (r Rect) Overlaps(other Rect) bool {
	return r.Left < other.Right-epsilon && other.Left < r.Right-epsilon &&
		r.Top < other.Bottom-epsilon && other.Top < r.Bottom-epsilon
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
