package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/stacks/pkg/geometry"
)

// Box is a leaf subview with an ideal size and a minimum size.
//
// For an unspecified dimension a Box reports its ideal extent. For a
// concrete proposal it takes the proposal clamped to [Min, Ideal], or to
// [Min, +Inf) when Greedy is set. A zero proposal therefore yields Min.
type Box struct {
	Label  string
	Ideal  geometry.Size
	Min    geometry.Size
	Greedy bool

	origin   geometry.Offset
	resolved geometry.Size
	placed   bool
}

// FixedBox returns a box that is always width by height.
func FixedBox(width, height float64) *Box {
	size := geometry.Size{Width: width, Height: height}
	return &Box{Ideal: size, Min: size}
}

// SizeThatFits implements Measurable.
func (b *Box) SizeThatFits(proposal geometry.ProposedSize) geometry.Size {
	return geometry.Size{
		Width:  b.resolve(proposal.Width, b.Min.Width, b.Ideal.Width),
		Height: b.resolve(proposal.Height, b.Min.Height, b.Ideal.Height),
	}
}

func (b *Box) resolve(e geometry.Extent, lo, ideal float64) float64 {
	v, ok := e.Value()
	if !ok {
		return ideal
	}
	hi := ideal
	if b.Greedy {
		hi = math.Inf(1)
	}
	return math.Max(lo, math.Min(v, hi))
}

// Place implements Subview.
func (b *Box) Place(at geometry.Offset, proposal geometry.ProposedSize) {
	b.origin = at
	b.resolved = b.SizeThatFits(proposal)
	b.placed = true
}

// Frame implements Framed.
func (b *Box) Frame() (geometry.Rect, bool) {
	return geometry.RectFromOffsetSize(b.origin, b.resolved), b.placed
}

func (b *Box) String() string {
	if b.Label != "" {
		return fmt.Sprintf("Box(%s)", b.Label)
	}
	return fmt.Sprintf("Box(%v)", b.Ideal)
}
