package geometry

import (
	"math"
	"testing"
)

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Errorf("size = %v, want 30x40", r.Size())
	}
	if r.Origin() != (Offset{X: 10, Y: 20}) {
		t.Errorf("origin = %v, want (10, 20)", r.Origin())
	}
}

func TestRectOverlaps(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"touching edge", RectFromLTWH(10, 0, 10, 10), false},
		{"inside", RectFromLTWH(2, 2, 2, 2), true},
		{"apart", RectFromLTWH(20, 20, 5, 5), false},
		{"partial", RectFromLTWH(5, 5, 10, 10), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeIsFinite(t *testing.T) {
	if !(Size{Width: 1, Height: 2}).IsFinite() {
		t.Error("expected finite size")
	}
	if (Size{Width: math.NaN()}).IsFinite() {
		t.Error("NaN width should not be finite")
	}
	if (Size{Height: math.Inf(1)}).IsFinite() {
		t.Error("infinite height should not be finite")
	}
}

func TestExtent(t *testing.T) {
	if Unspecified.IsSpecified() {
		t.Error("zero Extent should be unspecified")
	}
	if got := Unspecified.Or(7); got != 7 {
		t.Errorf("Unspecified.Or(7) = %v, want 7", got)
	}
	v, ok := Exactly(0).Value()
	if !ok || v != 0 {
		t.Errorf("Exactly(0).Value() = %v, %v; want 0, true", v, ok)
	}
	if got := Exactly(3).Or(7); got != 3 {
		t.Errorf("Exactly(3).Or(7) = %v, want 3", got)
	}
}

func TestProposedSize(t *testing.T) {
	if ZeroProposal == UnspecifiedProposal {
		t.Fatal("zero and unspecified proposals must differ")
	}
	p := ProposedSize{Width: Exactly(5)}
	got := p.Replacing(Size{Width: 1, Height: 2})
	if got != (Size{Width: 5, Height: 2}) {
		t.Errorf("Replacing = %v, want 5x2", got)
	}
	if s := p.String(); s != "(5, nil)" {
		t.Errorf("String = %q, want %q", s, "(5, nil)")
	}
	if ProposalFromSize(Size{Width: 3, Height: 4}) != ProposalWH(3, 4) {
		t.Error("ProposalFromSize and ProposalWH disagree")
	}
}
