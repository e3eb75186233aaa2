package stacks

import (
	"github.com/go-drift/stacks/pkg/geometry"
	"github.com/go-drift/stacks/pkg/layout"
)

// Row stacks subviews horizontally from the leading edge.
//
// Row follows the same sizing rules as [Column] with the axes swapped: its
// width is the sum of the subviews' widths and its height is the tallest
// subview's height. Every subview sits at the top edge of the bounds.
type Row struct {
	Arrangement Arrangement
}

var _ layout.Layout[*CacheData] = Row{}

// NewRow returns a row container hosting subviews.
func NewRow(arrangement Arrangement, subviews ...layout.Subview) *layout.Container[*CacheData] {
	return layout.NewContainer[*CacheData](Row{Arrangement: arrangement}, subviews...)
}

func (r Row) engine() stack {
	return stack{name: "Row", axis: AxisHorizontal, arrangement: r.Arrangement}
}

// MakeCache allocates the per-container cache.
func (r Row) MakeCache(layout.Subviews) *CacheData {
	return &CacheData{}
}

// SizeThatFits returns the size the row needs for proposal.
func (r Row) SizeThatFits(proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) geometry.Size {
	return r.engine().sizeThatFits(proposal, subviews, cache)
}

// PlaceSubviews positions every subview inside bounds.
func (r Row) PlaceSubviews(bounds geometry.Rect, proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) {
	r.engine().placeSubviews(bounds, proposal, subviews, cache)
}

// Frames returns the frame each subview would be placed at, without
// placing anything.
func (r Row) Frames(bounds geometry.Rect, proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) []geometry.Rect {
	return r.engine().frames("Frames", bounds, proposal, subviews, cache)
}

func (r Row) String() string {
	return "row " + r.Arrangement.NameFor(AxisHorizontal)
}
