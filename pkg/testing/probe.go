package testing

import (
	"github.com/go-drift/stacks/pkg/geometry"
	"github.com/go-drift/stacks/pkg/layout"
)

// Probe wraps a measurable and records the queries and placement it
// receives.
type Probe struct {
	Inner layout.Measurable

	// Queries counts SizeThatFits calls.
	Queries int
	// Proposals lists every proposal passed to SizeThatFits, in order.
	Proposals []geometry.ProposedSize
	// Origin and Proposal are set by the most recent Place call.
	Origin   geometry.Offset
	Proposal geometry.ProposedSize
	// Placements counts Place calls.
	Placements int
}

// NewProbe wraps inner.
func NewProbe(inner layout.Measurable) *Probe {
	return &Probe{Inner: inner}
}

// SizeThatFits implements layout.Measurable.
func (p *Probe) SizeThatFits(proposal geometry.ProposedSize) geometry.Size {
	p.Queries++
	p.Proposals = append(p.Proposals, proposal)
	return p.Inner.SizeThatFits(proposal)
}

// Place implements layout.Subview and forwards to the inner subview when
// it has one.
func (p *Probe) Place(at geometry.Offset, proposal geometry.ProposedSize) {
	p.Placements++
	p.Origin = at
	p.Proposal = proposal
	if sv, ok := p.Inner.(layout.Subview); ok {
		sv.Place(at, proposal)
	}
}

// Frame implements layout.Framed using the last placement.
func (p *Probe) Frame() (geometry.Rect, bool) {
	if p.Placements == 0 {
		return geometry.Rect{}, false
	}
	return geometry.RectFromOffsetSize(p.Origin, p.Inner.SizeThatFits(p.Proposal)), true
}

// Reset clears the recorded queries and placement.
func (p *Probe) Reset() {
	p.Queries = 0
	p.Proposals = nil
	p.Placements = 0
	p.Origin = geometry.Offset{}
	p.Proposal = geometry.ProposedSize{}
}

// Probes wraps each measurable in a Probe.
func Probes(inner ...layout.Measurable) []*Probe {
	probes := make([]*Probe, len(inner))
	for i, m := range inner {
		probes[i] = NewProbe(m)
	}
	return probes
}

// Subviews converts probes into a subview list.
func Subviews(probes []*Probe) layout.Subviews {
	subviews := make(layout.Subviews, len(probes))
	for i, p := range probes {
		subviews[i] = p
	}
	return subviews
}
