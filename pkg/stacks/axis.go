package stacks

import (
	"fmt"

	"github.com/go-drift/stacks/pkg/geometry"
)

// Axis represents the stacking direction.
// AxisVertical is the zero value.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Main returns the main-axis component of size.
func (a Axis) Main(size geometry.Size) float64 {
	if a == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

// Cross returns the cross-axis component of size.
func (a Axis) Cross(size geometry.Size) float64 {
	if a == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

// MakeSize builds a size from main and cross components.
func (a Axis) MakeSize(main, cross float64) geometry.Size {
	if a == AxisHorizontal {
		return geometry.Size{Width: main, Height: cross}
	}
	return geometry.Size{Width: cross, Height: main}
}

// MakeOffset builds a point from main and cross components.
func (a Axis) MakeOffset(main, cross float64) geometry.Offset {
	if a == AxisHorizontal {
		return geometry.Offset{X: main, Y: cross}
	}
	return geometry.Offset{X: cross, Y: main}
}

func (a Axis) mainOrigin(r geometry.Rect) float64 {
	if a == AxisHorizontal {
		return r.Left
	}
	return r.Top
}

func (a Axis) crossOrigin(r geometry.Rect) float64 {
	if a == AxisHorizontal {
		return r.Top
	}
	return r.Left
}

func (a Axis) mainExtent(p geometry.ProposedSize) geometry.Extent {
	if a == AxisHorizontal {
		return p.Width
	}
	return p.Height
}

func (a Axis) crossExtent(p geometry.ProposedSize) geometry.Extent {
	if a == AxisHorizontal {
		return p.Height
	}
	return p.Width
}

func (a Axis) makeProposal(main, cross geometry.Extent) geometry.ProposedSize {
	if a == AxisHorizontal {
		return geometry.ProposedSize{Width: main, Height: cross}
	}
	return geometry.ProposedSize{Width: cross, Height: main}
}
