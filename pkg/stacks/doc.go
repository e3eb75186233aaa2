// Package stacks provides Column and Row, single-axis stack layouts with a
// choice of how leftover space is arranged between subviews.
//
// A stack answers two questions for its host. SizeThatFits reports how big
// the stack wants to be for a size proposal. PlaceSubviews, given the final
// bounds, puts every subview at an offset along the main axis:
//
//	col := stacks.NewColumn(stacks.SpaceBetween,
//	    layout.FixedBox(80, 10),
//	    layout.FixedBox(60, 20),
//	)
//	size := col.SizeThatFits(geometry.UnspecifiedProposal)
//	col.PlaceIn(geometry.RectFromLTWH(0, 0, size.Width, 50), geometry.UnspecifiedProposal)
//
// # Sizing
//
// Sizing runs in up to two passes. The first asks every subview for its
// natural size. If the sum along the main axis, or the largest cross-axis
// extent, exceeds what the proposal offers, a second pass asks every subview
// for its minimal size and splits the remaining main-axis space equally
// among subviews whose minimal main extent is zero. Flexible subviews keep
// the proposal's cross-axis extent in that split.
//
// Every measure sizes the subviews afresh and records the result in the
// container's [CacheData]. The placement that directly follows a measure
// with the same proposal reuses those sizes; any other placement sizes the
// subviews again.
//
// # Contract Violations
//
// Layout passes cannot fail gracefully. Positive slack with no flexible
// subview, [SpaceBetween] with exactly one subview, and a nil cache are
// reported through pkg/errors and then panic with a *errors.LayoutError.
// With no subviews at all, every arrangement measures to zero and places
// nothing.
package stacks
