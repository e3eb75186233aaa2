// Package scene decodes YAML scene files describing a tree of stacks and
// boxes, and runs a measure and place pass over them.
//
// A scene looks like:
//
//	version: v1
//	title: toolbar
//	proposal: {width: 200}
//	bounds: {width: 200, height: 40}
//	root:
//	  row: space_between
//	  children:
//	    - box: {ideal: [40, 20]}
//	      label: back
//	    - column: {spaced_by: 2}
//	      children:
//	        - box: {ideal: [80, 12], min: [0, 12], greedy: true}
//
// Omitted proposal dimensions are unspecified. Omitted bounds default to
// the measured size at the origin.
package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/stacks/pkg/errors"
	"github.com/go-drift/stacks/pkg/geometry"
	"github.com/go-drift/stacks/pkg/stacks"
)

// SupportedMajor is the scene format major version this tool reads.
const SupportedMajor = "v1"

// Scene is a decoded scene file.
type Scene struct {
	Version  string       `yaml:"version"`
	Title    string       `yaml:"title,omitempty"`
	Proposal ProposalSpec `yaml:"proposal"`
	Bounds   *BoundsSpec  `yaml:"bounds,omitempty"`
	Root     Node         `yaml:"root"`
}

// ProposalSpec is a size proposal with optional dimensions.
type ProposalSpec struct {
	Width  *float64 `yaml:"width,omitempty"`
	Height *float64 `yaml:"height,omitempty"`
}

// BoundsSpec is the final rectangle handed to the root.
type BoundsSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Node is one element of the scene tree: a column, a row or a box.
type Node struct {
	Label    string           `yaml:"label,omitempty"`
	Column   *ArrangementSpec `yaml:"column,omitempty"`
	Row      *ArrangementSpec `yaml:"row,omitempty"`
	Box      *BoxSpec         `yaml:"box,omitempty"`
	Children []Node           `yaml:"children,omitempty"`
}

// BoxSpec describes a leaf box. Ideal and Min are [width, height] pairs.
type BoxSpec struct {
	Ideal  []float64 `yaml:"ideal"`
	Min    []float64 `yaml:"min,omitempty"`
	Greedy bool      `yaml:"greedy,omitempty"`
}

// ArrangementSpec decodes an arrangement from either a scalar such as
// "space_between" or a mapping such as {spaced_by: 8}.
type ArrangementSpec struct {
	Value stacks.Arrangement
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *ArrangementSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := stacks.ParseArrangement(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		a.Value = parsed
		return nil
	case yaml.MappingNode:
		var m struct {
			SpacedBy *float64 `yaml:"spaced_by"`
		}
		if err := value.Decode(&m); err != nil {
			return err
		}
		if m.SpacedBy == nil {
			return fmt.Errorf("line %d: arrangement mapping needs spaced_by", value.Line)
		}
		a.Value = stacks.SpacedBy(*m.SpacedBy)
		return nil
	default:
		return fmt.Errorf("line %d: arrangement must be a name or a mapping", value.Line)
	}
}

// MarshalYAML implements yaml.Marshaler.
func (a ArrangementSpec) MarshalYAML() (any, error) {
	if gap, ok := a.Value.Gap(); ok {
		return map[string]float64{"spaced_by": gap}, nil
	}
	return a.Value.String(), nil
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.LayoutError{Op: "scene.Load", Kind: errors.KindConfig, Err: err}
	}
	defer f.Close()
	return Decode(f, path)
}

// Parse decodes and validates a scene from data.
func Parse(data []byte, source string) (*Scene, error) {
	return Decode(bytes.NewReader(data), source)
}

// Decode reads a scene from r. Unknown fields are rejected.
func Decode(r io.Reader, source string) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, &errors.LayoutError{Op: "scene.Decode", Kind: errors.KindParsing, Detail: source, Err: err}
	}
	if err := s.Validate(); err != nil {
		return nil, &errors.LayoutError{Op: "scene.Validate", Kind: errors.KindConfig, Detail: source, Err: err}
	}
	return &s, nil
}

// Encode writes s as YAML.
func (s *Scene) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the version and the tree shape.
func (s *Scene) Validate() error {
	if s.Version == "" {
		s.Version = SupportedMajor
	}
	if !semver.IsValid(s.Version) {
		return fmt.Errorf("version %q is not a semantic version", s.Version)
	}
	if major := semver.Major(s.Version); major != SupportedMajor {
		return fmt.Errorf("unsupported scene version %s (this tool reads %s)", s.Version, SupportedMajor)
	}
	if s.Bounds != nil && (s.Bounds.Width < 0 || s.Bounds.Height < 0) {
		return fmt.Errorf("bounds cannot have a negative size")
	}
	if err := validateExtent("proposal.width", s.Proposal.Width); err != nil {
		return err
	}
	if err := validateExtent("proposal.height", s.Proposal.Height); err != nil {
		return err
	}
	return s.Root.validate("root")
}

func validateExtent(name string, v *float64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s cannot be negative", name)
	}
	return nil
}

func (n *Node) validate(path string) error {
	kinds := 0
	for _, set := range []bool{n.Column != nil, n.Row != nil, n.Box != nil} {
		if set {
			kinds++
		}
	}
	if kinds != 1 {
		return fmt.Errorf("%s: exactly one of column, row or box is required", path)
	}
	if n.Box != nil {
		if len(n.Children) > 0 {
			return fmt.Errorf("%s: a box cannot have children", path)
		}
		if err := validatePair(path+".ideal", n.Box.Ideal, true); err != nil {
			return err
		}
		return validatePair(path+".min", n.Box.Min, false)
	}
	for i := range n.Children {
		if err := n.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func validatePair(path string, pair []float64, required bool) error {
	if len(pair) == 0 && !required {
		return nil
	}
	if len(pair) != 2 {
		return fmt.Errorf("%s: want [width, height]", path)
	}
	if pair[0] < 0 || pair[1] < 0 {
		return fmt.Errorf("%s: sizes cannot be negative", path)
	}
	return nil
}

// ProposedSize converts the scene's proposal.
func (s *Scene) ProposedSize() geometry.ProposedSize {
	var p geometry.ProposedSize
	if s.Proposal.Width != nil {
		p.Width = geometry.Exactly(*s.Proposal.Width)
	}
	if s.Proposal.Height != nil {
		p.Height = geometry.Exactly(*s.Proposal.Height)
	}
	return p
}
