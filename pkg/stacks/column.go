package stacks

import (
	"github.com/go-drift/stacks/pkg/geometry"
	"github.com/go-drift/stacks/pkg/layout"
)

// Column stacks subviews vertically from top to bottom.
//
// # Sizing Behavior
//
// When the subviews' natural sizes fit the proposal, the column is as tall
// as their summed heights and as wide as the widest of them. Otherwise every
// subview collapses to its minimal size, and the subviews whose minimal
// height is zero share whatever height the proposal leaves over.
//
// # Arrangement
//
// Arrangement decides where leftover height goes once the column has been
// given its final bounds. Horizontally every subview sits at the left edge
// of the bounds and keeps its own width.
type Column struct {
	Arrangement Arrangement
}

var _ layout.Layout[*CacheData] = Column{}

// NewColumn returns a column container hosting subviews.
func NewColumn(arrangement Arrangement, subviews ...layout.Subview) *layout.Container[*CacheData] {
	return layout.NewContainer[*CacheData](Column{Arrangement: arrangement}, subviews...)
}

func (c Column) engine() stack {
	return stack{name: "Column", axis: AxisVertical, arrangement: c.Arrangement}
}

// MakeCache allocates the per-container cache.
func (c Column) MakeCache(layout.Subviews) *CacheData {
	return &CacheData{}
}

// SizeThatFits returns the size the column needs for proposal.
func (c Column) SizeThatFits(proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) geometry.Size {
	return c.engine().sizeThatFits(proposal, subviews, cache)
}

// PlaceSubviews positions every subview inside bounds.
func (c Column) PlaceSubviews(bounds geometry.Rect, proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) {
	c.engine().placeSubviews(bounds, proposal, subviews, cache)
}

// Frames returns the frame each subview would be placed at, without
// placing anything.
func (c Column) Frames(bounds geometry.Rect, proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) []geometry.Rect {
	return c.engine().frames("Frames", bounds, proposal, subviews, cache)
}

func (c Column) String() string {
	return "column " + c.Arrangement.NameFor(AxisVertical)
}
