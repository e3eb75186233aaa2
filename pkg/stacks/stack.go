package stacks

import (
	"fmt"
	"math"

	"github.com/go-drift/stacks/pkg/errors"
	"github.com/go-drift/stacks/pkg/geometry"
	"github.com/go-drift/stacks/pkg/layout"
)

// stack is the axis-generic engine behind Column and Row.
type stack struct {
	name        string
	axis        Axis
	arrangement Arrangement
}

func (s stack) op(method string) string {
	return "stacks." + s.name + "." + method
}

// sizeThatFits always measures the subviews afresh. The result stays
// reusable only for the placement that follows with the same proposal.
func (s stack) sizeThatFits(proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) geometry.Size {
	s.sizeItems("SizeThatFits", proposal, subviews, cache)
	cache.measured = true
	return cache.RequiredSize
}

// sizeItems fills cache for proposal. Subviews get their natural sizes when
// those fit on both axes, otherwise the minimum-size fallback runs.
func (s stack) sizeItems(method string, proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) {
	if cache == nil {
		errors.Fatal(s.op(method), errors.ErrCacheNotPopulated, "nil cache")
	}
	cache.measured = false

	ideal := make([]geometry.Size, len(subviews))
	idealMain, idealCross := 0.0, 0.0
	for i, sv := range subviews {
		size := layout.NaturalSize(sv)
		ideal[i] = size
		idealMain += s.axis.Main(size)
		idealCross = math.Max(idealCross, s.axis.Cross(size))
	}

	if main, ok := s.axis.mainExtent(proposal).Value(); ok && main < idealMain {
		s.sizeMinimal(method, proposal, subviews, cache)
		return
	}
	if cross, ok := s.axis.crossExtent(proposal).Value(); ok && cross < idealCross {
		s.sizeMinimal(method, proposal, subviews, cache)
		return
	}

	cache.store(proposal, ideal, idealMain, s.axis.MakeSize(idealMain, idealCross), false)
}

// sizeMinimal collapses every subview to its minimal size, then splits the
// remaining main-axis space equally among the flexible subviews, those whose
// minimal main extent is zero.
func (s stack) sizeMinimal(method string, proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) {
	minimal := make([]geometry.Size, len(subviews))
	minMain := 0.0
	var flexible []int
	for i, sv := range subviews {
		size := layout.MinimalSize(sv)
		minimal[i] = size
		minMain += s.axis.Main(size)
		if s.axis.Main(size) == 0 {
			flexible = append(flexible, i)
		}
	}

	proposedMain := s.axis.mainExtent(proposal).Or(0)
	slack := proposedMain - minMain
	requiredMain := minMain
	if slack > 0 {
		requiredMain = proposedMain
		if len(flexible) == 0 {
			errors.Fatal(s.op(method), errors.ErrNoFlexibleChildren,
				fmt.Sprintf("slack=%g subviews=%d", slack, len(subviews)))
		}
	}

	share := 0.0
	if len(flexible) > 0 {
		share = math.Max(slack, 0) / float64(len(flexible))
	}
	flexProposal := s.axis.makeProposal(geometry.Exactly(share), s.axis.crossExtent(proposal))

	sizes := minimal
	for _, i := range flexible {
		sizes[i] = subviews[i].SizeThatFits(flexProposal)
	}

	total, cross := 0.0, 0.0
	for _, size := range sizes {
		total += s.axis.Main(size)
		cross = math.Max(cross, s.axis.Cross(size))
	}
	cache.store(proposal, sizes, total, s.axis.MakeSize(requiredMain, cross), true)
}

// frames computes where each subview goes inside bounds.
func (s stack) frames(method string, bounds geometry.Rect, proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) []geometry.Rect {
	if cache == nil {
		errors.Fatal(s.op(method), errors.ErrCacheNotPopulated, "nil cache")
	}
	if !cache.reusable(proposal, len(subviews)) {
		s.sizeItems(method, proposal, subviews, cache)
	}
	if len(cache.ItemSizes) != len(subviews) {
		errors.Fatal(s.op(method), errors.ErrCacheNotPopulated,
			fmt.Sprintf("sizes=%d subviews=%d", len(cache.ItemSizes), len(subviews)))
	}

	slack := math.Max(s.axis.Main(bounds.Size())-cache.TotalMainExtent, 0)
	lead, before, after, err := s.arrangement.spacing(slack, len(subviews))
	if err != nil {
		errors.Fatal(s.op(method), err, fmt.Sprintf("subviews=%d", len(subviews)))
	}

	frames := make([]geometry.Rect, len(subviews))
	cursor := s.axis.mainOrigin(bounds) + lead
	cross := s.axis.crossOrigin(bounds)
	for i, size := range cache.ItemSizes {
		cursor += before
		if math.IsNaN(cursor) || math.IsInf(cursor, 0) || !size.IsFinite() {
			errors.Fatal(s.op(method), errors.ErrNonFiniteGeometry, fmt.Sprintf("index=%d", i))
		}
		frames[i] = geometry.RectFromOffsetSize(s.axis.MakeOffset(cursor, cross), size)
		cursor += s.axis.Main(size) + after
	}
	return frames
}

func (s stack) placeSubviews(bounds geometry.Rect, proposal geometry.ProposedSize, subviews layout.Subviews, cache *CacheData) {
	frames := s.frames("PlaceSubviews", bounds, proposal, subviews, cache)
	cache.measured = false
	for i, frame := range frames {
		subviews[i].Place(frame.Origin(), geometry.ProposalFromSize(frame.Size()))
	}
}
