package scene

import (
	"github.com/go-drift/stacks/pkg/errors"
	"github.com/go-drift/stacks/pkg/geometry"
	"github.com/go-drift/stacks/pkg/layout"
	"github.com/go-drift/stacks/pkg/stacks"
)

// Frame is one placed element of a scene.
type Frame struct {
	Depth  int           `json:"depth"`
	Kind   string        `json:"kind"`
	Label  string        `json:"label,omitempty"`
	Layout string        `json:"layout,omitempty"`
	Rect   geometry.Rect `json:"rect"`
	Placed bool          `json:"placed"`
}

// Result is the outcome of running a scene.
type Result struct {
	Title  string        `json:"title"`
	Size   geometry.Size `json:"size"`
	Bounds geometry.Rect `json:"bounds"`
	Frames []Frame       `json:"frames"`
}

// Build turns the scene tree into subviews.
func (s *Scene) Build() layout.Subview {
	return s.Root.build()
}

func (n *Node) build() layout.Subview {
	if n.Box != nil {
		b := &layout.Box{
			Label:  n.Label,
			Ideal:  pairSize(n.Box.Ideal),
			Min:    pairSize(n.Box.Min),
			Greedy: n.Box.Greedy,
		}
		return b
	}

	children := make([]layout.Subview, len(n.Children))
	for i := range n.Children {
		children[i] = n.Children[i].build()
	}
	var c *layout.Container[*stacks.CacheData]
	if n.Column != nil {
		c = stacks.NewColumn(n.Column.Value, children...)
	} else {
		c = stacks.NewRow(n.Row.Value, children...)
	}
	c.Label = n.Label
	return c
}

func pairSize(pair []float64) geometry.Size {
	if len(pair) != 2 {
		return geometry.Size{}
	}
	return geometry.Size{Width: pair[0], Height: pair[1]}
}

// Measure returns the root's size for the scene proposal.
func (s *Scene) Measure() geometry.Size {
	return s.Build().SizeThatFits(s.ProposedSize())
}

// Run measures and places the scene. Violated layout contracts are returned
// as errors rather than panics.
func (s *Scene) Run() (res *Result, err error) {
	defer errors.RecoverWithCallback("scene.Run", func(r any) {
		res = nil
		if le, ok := r.(*errors.LayoutError); ok {
			err = le
			return
		}
		err = &errors.PanicError{Op: "scene.Run", Value: r}
	})

	root := s.Build()
	proposal := s.ProposedSize()
	size := root.SizeThatFits(proposal)

	bounds := geometry.RectFromOffsetSize(geometry.Offset{}, size)
	if s.Bounds != nil {
		bounds = geometry.RectFromLTWH(s.Bounds.X, s.Bounds.Y, s.Bounds.Width, s.Bounds.Height)
	}

	if c, ok := root.(interface {
		PlaceIn(geometry.Rect, geometry.ProposedSize)
	}); ok {
		c.PlaceIn(bounds, proposal)
	} else {
		root.Place(bounds.Origin(), geometry.ProposalFromSize(bounds.Size()))
	}

	return &Result{
		Title:  s.Title,
		Size:   size,
		Bounds: bounds,
		Frames: collectFrames(root),
	}, nil
}

func collectFrames(root layout.Subview) []Frame {
	var frames []Frame
	layout.Walk(root, func(depth int, sv layout.Subview) bool {
		f := Frame{Depth: depth, Kind: "Box"}
		if fr, ok := sv.(layout.Framed); ok {
			f.Rect, f.Placed = fr.Frame()
		}
		switch v := sv.(type) {
		case *layout.Box:
			f.Label = v.Label
		case *layout.Container[*stacks.CacheData]:
			f.Kind = v.Kind()
			f.Label = v.Label
			f.Layout = v.Describe()
		}
		frames = append(frames, f)
		return true
	})
	return frames
}
