package layout

import (
	"math"
	"testing"

	"github.com/go-drift/stacks/pkg/geometry"
)

// overlay stacks every subview at the bounds origin and sizes to the largest.
type overlay struct{}

type overlayCache struct {
	made        int
	invalidated int
}

func (c *overlayCache) Invalidate() { c.invalidated++ }

func (overlay) MakeCache(Subviews) *overlayCache {
	return &overlayCache{made: 1}
}

func (overlay) SizeThatFits(p geometry.ProposedSize, subviews Subviews, _ *overlayCache) geometry.Size {
	var size geometry.Size
	for _, s := range subviews {
		child := s.SizeThatFits(p)
		size.Width = math.Max(size.Width, child.Width)
		size.Height = math.Max(size.Height, child.Height)
	}
	return size
}

func (overlay) PlaceSubviews(bounds geometry.Rect, p geometry.ProposedSize, subviews Subviews, _ *overlayCache) {
	for _, s := range subviews {
		s.Place(bounds.Origin(), geometry.ProposalFromSize(bounds.Size()))
	}
}

func (overlay) String() string { return "overlay" }

func TestBoxSizeThatFits(t *testing.T) {
	box := &Box{Ideal: geometry.Size{Width: 40, Height: 20}, Min: geometry.Size{Width: 10, Height: 5}}
	greedy := &Box{Ideal: geometry.Size{Width: 40, Height: 20}, Greedy: true}

	tests := []struct {
		name     string
		box      *Box
		proposal geometry.ProposedSize
		want     geometry.Size
	}{
		{"unspecified gives ideal", box, geometry.UnspecifiedProposal, geometry.Size{Width: 40, Height: 20}},
		{"zero gives min", box, geometry.ZeroProposal, geometry.Size{Width: 10, Height: 5}},
		{"clamped to ideal", box, geometry.ProposalWH(100, 100), geometry.Size{Width: 40, Height: 20}},
		{"between min and ideal", box, geometry.ProposalWH(25, 8), geometry.Size{Width: 25, Height: 8}},
		{"below min", box, geometry.ProposalWH(1, 1), geometry.Size{Width: 10, Height: 5}},
		{"mixed", box, geometry.ProposedSize{Width: geometry.Exactly(30)}, geometry.Size{Width: 30, Height: 20}},
		{"greedy grows", greedy, geometry.ProposalWH(100, 100), geometry.Size{Width: 100, Height: 100}},
		{"greedy zero", greedy, geometry.ZeroProposal, geometry.Size{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.SizeThatFits(tt.proposal); got != tt.want {
				t.Errorf("SizeThatFits(%v) = %v, want %v", tt.proposal, got, tt.want)
			}
		})
	}
}

func TestBoxPlace(t *testing.T) {
	box := FixedBox(10, 20)
	if _, placed := box.Frame(); placed {
		t.Fatal("new box reports placed")
	}

	box.Place(geometry.Offset{X: 3, Y: 4}, geometry.ProposalWH(50, 50))
	frame, placed := box.Frame()
	if !placed {
		t.Fatal("box not placed")
	}
	if frame != geometry.RectFromLTWH(3, 4, 10, 20) {
		t.Errorf("frame = %+v", frame)
	}
}

func TestNaturalAndMinimalSize(t *testing.T) {
	var seen []geometry.ProposedSize
	s := Sizer(func(p geometry.ProposedSize) geometry.Size {
		seen = append(seen, p)
		return geometry.Size{Width: p.Width.Or(7), Height: p.Height.Or(9)}
	})

	if got := NaturalSize(s); got != (geometry.Size{Width: 7, Height: 9}) {
		t.Errorf("NaturalSize = %v", got)
	}
	if got := MinimalSize(s); got != (geometry.Size{}) {
		t.Errorf("MinimalSize = %v", got)
	}
	if len(seen) != 2 || seen[0] != geometry.UnspecifiedProposal || seen[1] != geometry.ZeroProposal {
		t.Errorf("proposals = %v", seen)
	}
	s.Place(geometry.Offset{}, geometry.ZeroProposal)
}

func TestContainer(t *testing.T) {
	a := FixedBox(10, 10)
	b := &Box{Label: "b", Ideal: geometry.Size{Width: 30, Height: 5}}
	c := NewContainer[*overlayCache](overlay{}, a, b)
	c.Label = "stack"

	if c.Cache().made != 1 {
		t.Fatalf("cache made %d times", c.Cache().made)
	}
	if got := c.SizeThatFits(geometry.UnspecifiedProposal); got != (geometry.Size{Width: 30, Height: 10}) {
		t.Errorf("size = %v, want 30x10", got)
	}

	c.Place(geometry.Offset{X: 1, Y: 2}, geometry.UnspecifiedProposal)
	if frame, _ := c.Frame(); frame != geometry.RectFromLTWH(1, 2, 30, 10) {
		t.Errorf("container frame = %+v", frame)
	}
	if frame, _ := b.Frame(); frame != geometry.RectFromLTWH(1, 2, 30, 5) {
		t.Errorf("b frame = %+v", frame)
	}

	if c.Kind() != "overlay" || c.Describe() != "overlay" {
		t.Errorf("Kind = %q, Describe = %q", c.Kind(), c.Describe())
	}

	c.SetSubviews(a)
	if c.Cache().invalidated != 1 {
		t.Errorf("SetSubviews invalidated %d times, want 1", c.Cache().invalidated)
	}
	if len(c.Subviews()) != 1 {
		t.Errorf("subviews = %d, want 1", len(c.Subviews()))
	}
}

func TestWalk(t *testing.T) {
	leaf := FixedBox(1, 1)
	inner := NewContainer[*overlayCache](overlay{}, leaf)
	root := NewContainer[*overlayCache](overlay{}, FixedBox(2, 2), inner)

	var depths []int
	Walk(root, func(depth int, s Subview) bool {
		depths = append(depths, depth)
		return true
	})
	want := []int{0, 1, 1, 2}
	if len(depths) != len(want) {
		t.Fatalf("visited %v, want %v", depths, want)
	}
	for i := range want {
		if depths[i] != want[i] {
			t.Fatalf("visited %v, want %v", depths, want)
		}
	}

	visited := 0
	Walk(root, func(depth int, s Subview) bool {
		visited++
		return depth == 0
	})
	if visited != 3 {
		t.Errorf("visited %d nodes with pruning, want 3", visited)
	}
}
