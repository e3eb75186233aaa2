package stacks

import (
	"slices"

	"github.com/go-drift/stacks/pkg/geometry"
)

// CacheData memoizes the last full sizing computation of one stack
// container. It is created by MakeCache and must not be shared between
// containers.
//
// After a sizing call, len(ItemSizes) equals the subview count and
// TotalMainExtent is the sum of their main-axis extents.
type CacheData struct {
	// ItemSizes holds one resolved size per subview, in subview order.
	ItemSizes []geometry.Size
	// TotalMainExtent is the sum of ItemSizes along the main axis.
	TotalMainExtent float64
	// RequiredSize is the container size for the cached proposal.
	RequiredSize geometry.Size
	// Degraded reports whether the sizes came from the minimum-size fallback.
	Degraded bool

	populated bool
	// measured is set by SizeThatFits and cleared once the sizes have been
	// used for placement.
	measured bool
	proposal geometry.ProposedSize
	count    int
}

// Invalidate drops the memoized computation. Hosts call it when the
// subview list or a subview's sizing behaviour changes.
func (c *CacheData) Invalidate() {
	c.populated = false
	c.measured = false
	c.ItemSizes = nil
	c.TotalMainExtent = 0
	c.RequiredSize = geometry.Size{}
	c.Degraded = false
}

// IsPopulated reports whether the cache holds sizes from a completed
// sizing call.
func (c *CacheData) IsPopulated() bool {
	return c != nil && c.populated
}

// Snapshot returns a copy that does not alias the cache's storage. A nil
// cache yields the zero value.
func (c *CacheData) Snapshot() CacheData {
	if c == nil {
		return CacheData{}
	}
	cp := *c
	cp.ItemSizes = slices.Clone(c.ItemSizes)
	return cp
}

// reusable reports whether placement can take the sizes of the SizeThatFits
// call that preceded it.
func (c *CacheData) reusable(proposal geometry.ProposedSize, count int) bool {
	return c.populated && c.measured && c.proposal == proposal && c.count == count
}

func (c *CacheData) store(proposal geometry.ProposedSize, sizes []geometry.Size, total float64, required geometry.Size, degraded bool) {
	c.ItemSizes = sizes
	c.TotalMainExtent = total
	c.RequiredSize = required
	c.Degraded = degraded
	c.proposal = proposal
	c.count = len(sizes)
	c.populated = true
}
