package geometry

import "fmt"

// Extent is one dimension of a size proposal. The zero value is
// unspecified, meaning the subview may take as much as it wants.
type Extent struct {
	value float64
	set   bool
}

// Unspecified is an extent with no constraint.
var Unspecified = Extent{}

// Exactly returns an extent proposing the given value.
func Exactly(v float64) Extent {
	return Extent{value: v, set: true}
}

// Value returns the proposed value and whether one is present.
func (e Extent) Value() (float64, bool) {
	return e.value, e.set
}

// IsSpecified reports whether the extent carries a concrete value.
func (e Extent) IsSpecified() bool {
	return e.set
}

// Or returns the proposed value, or fallback when unspecified.
func (e Extent) Or(fallback float64) float64 {
	if !e.set {
		return fallback
	}
	return e.value
}

func (e Extent) String() string {
	if !e.set {
		return "nil"
	}
	return fmt.Sprintf("%g", e.value)
}

// ProposedSize is the size a container offers to a subview. Each dimension
// is independently unspecified or concrete; a concrete zero asks the subview
// for its collapsed minimum.
type ProposedSize struct {
	Width  Extent
	Height Extent
}

var (
	// UnspecifiedProposal asks for a subview's ideal size.
	UnspecifiedProposal = ProposedSize{}
	// ZeroProposal asks for a subview's minimal size.
	ZeroProposal = ProposedSize{Width: Exactly(0), Height: Exactly(0)}
)

// ProposalFromSize proposes exactly the given size.
func ProposalFromSize(s Size) ProposedSize {
	return ProposedSize{Width: Exactly(s.Width), Height: Exactly(s.Height)}
}

// ProposalWH proposes concrete width and height.
func ProposalWH(width, height float64) ProposedSize {
	return ProposedSize{Width: Exactly(width), Height: Exactly(height)}
}

// Replacing returns p with unspecified dimensions filled from fallback.
func (p ProposedSize) Replacing(fallback Size) Size {
	return Size{Width: p.Width.Or(fallback.Width), Height: p.Height.Or(fallback.Height)}
}

func (p ProposedSize) String() string {
	return fmt.Sprintf("(%s, %s)", p.Width, p.Height)
}
