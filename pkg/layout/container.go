package layout

import (
	"reflect"

	"github.com/go-drift/stacks/pkg/geometry"
)

// Layout computes a container's size and positions its subviews.
//
// C is the layout's per-container cache. The host calls MakeCache once per
// container and passes the same value to every later call, so measure and
// place for one proposal can share work.
type Layout[C any] interface {
	MakeCache(subviews Subviews) C
	SizeThatFits(proposal geometry.ProposedSize, subviews Subviews, cache C) geometry.Size
	PlaceSubviews(bounds geometry.Rect, proposal geometry.ProposedSize, subviews Subviews, cache C)
}

// Invalidator is implemented by caches that must be dropped when the
// subview list changes.
type Invalidator interface {
	Invalidate()
}

// Container hosts a Layout over a list of subviews. It owns the layout's
// cache for its whole lifetime and is itself a Subview, so containers nest.
//
// A Container is not safe for concurrent use.
type Container[C any] struct {
	// Label names the container in dumps and debug renders.
	Label string

	layout   Layout[C]
	subviews Subviews
	cache    C
	frame    geometry.Rect
	placed   bool
}

// NewContainer creates a container and allocates its cache.
func NewContainer[C any](l Layout[C], subviews ...Subview) *Container[C] {
	c := &Container[C]{layout: l, subviews: subviews}
	c.cache = l.MakeCache(c.subviews)
	return c
}

// Layout returns the hosted layout.
func (c *Container[C]) Layout() Layout[C] {
	return c.layout
}

// Subviews returns the hosted subviews.
func (c *Container[C]) Subviews() Subviews {
	return c.subviews
}

// Cache returns the container's cache.
func (c *Container[C]) Cache() C {
	return c.cache
}

// SetSubviews replaces the subviews and invalidates the cache.
func (c *Container[C]) SetSubviews(subviews ...Subview) {
	c.subviews = subviews
	if inv, ok := any(c.cache).(Invalidator); ok {
		inv.Invalidate()
	}
}

// SizeThatFits measures the container for a proposal.
func (c *Container[C]) SizeThatFits(proposal geometry.ProposedSize) geometry.Size {
	return c.layout.SizeThatFits(proposal, c.subviews, c.cache)
}

// Place measures the container for proposal and places its subviews inside
// the resulting frame at origin at.
func (c *Container[C]) Place(at geometry.Offset, proposal geometry.ProposedSize) {
	size := c.SizeThatFits(proposal)
	c.PlaceIn(geometry.RectFromOffsetSize(at, size), proposal)
}

// PlaceIn places the subviews inside bounds, which the host has already
// settled on.
func (c *Container[C]) PlaceIn(bounds geometry.Rect, proposal geometry.ProposedSize) {
	c.layout.PlaceSubviews(bounds, proposal, c.subviews, c.cache)
	c.frame = bounds
	c.placed = true
}

// Frame implements Framed.
func (c *Container[C]) Frame() (geometry.Rect, bool) {
	return c.frame, c.placed
}

// Kind returns the hosted layout's type name, e.g. "Column".
func (c *Container[C]) Kind() string {
	t := reflect.TypeOf(c.layout)
	if t == nil {
		return "Container"
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Describe returns the hosted layout's description when it has one.
func (c *Container[C]) Describe() string {
	if s, ok := c.layout.(interface{ String() string }); ok {
		return s.String()
	}
	return ""
}

// Parent is implemented by subviews that host other subviews.
type Parent interface {
	Subview
	Subviews() Subviews
	Kind() string
}

// Walk visits root and its descendants depth-first in subview order.
// Returning false from fn skips the node's children.
func Walk(root Subview, fn func(depth int, s Subview) bool) {
	walk(root, 0, fn)
}

func walk(s Subview, depth int, fn func(int, Subview) bool) {
	if !fn(depth, s) {
		return
	}
	if p, ok := s.(Parent); ok {
		for _, child := range p.Subviews() {
			walk(child, depth+1, fn)
		}
	}
}
