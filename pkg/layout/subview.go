// Package layout defines the contract between a container layout and the
// subviews it measures and places.
//
// A subview answers size queries for arbitrary proposals and accepts a
// final position. Two proposals carry special meaning: an unspecified
// proposal asks for the ideal size, and a zero proposal asks for the size
// the subview collapses to. Subviews must answer deterministically within a
// layout pass.
package layout

import "github.com/go-drift/stacks/pkg/geometry"

// Measurable reports its size for a proposal.
type Measurable interface {
	SizeThatFits(proposal geometry.ProposedSize) geometry.Size
}

// Subview is a measurable view that a container can position.
type Subview interface {
	Measurable
	// Place fixes the subview's origin and the size proposal it should
	// resolve against for the current pass.
	Place(at geometry.Offset, proposal geometry.ProposedSize)
}

// Subviews is an ordered list of subviews.
type Subviews []Subview

// NaturalSizer is implemented by subviews that can report their ideal size
// without going through SizeThatFits.
type NaturalSizer interface {
	NaturalSize() geometry.Size
}

// MinimalSizer is implemented by subviews that can report their collapsed
// size without going through SizeThatFits.
type MinimalSizer interface {
	MinimalSize() geometry.Size
}

// NaturalSize returns the size m reports for an unspecified proposal.
func NaturalSize(m Measurable) geometry.Size {
	if n, ok := m.(NaturalSizer); ok {
		return n.NaturalSize()
	}
	return m.SizeThatFits(geometry.UnspecifiedProposal)
}

// MinimalSize returns the size m reports for a zero proposal.
func MinimalSize(m Measurable) geometry.Size {
	if n, ok := m.(MinimalSizer); ok {
		return n.MinimalSize()
	}
	return m.SizeThatFits(geometry.ZeroProposal)
}

// Framed is implemented by subviews that remember where they were placed.
type Framed interface {
	// Frame returns the last placed frame and whether Place has been called.
	Frame() (geometry.Rect, bool)
}

// Sizer adapts a size function into a Subview. Placement is discarded.
type Sizer func(proposal geometry.ProposedSize) geometry.Size

// SizeThatFits calls f.
func (f Sizer) SizeThatFits(proposal geometry.ProposedSize) geometry.Size {
	return f(proposal)
}

// Place does nothing.
func (f Sizer) Place(geometry.Offset, geometry.ProposedSize) {}
