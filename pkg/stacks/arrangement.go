package stacks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/stacks/pkg/errors"
)

type arrangementKind int

const (
	arrangeLeading arrangementKind = iota
	arrangeTrailing
	arrangeCenter
	arrangeSpaceBetween
	arrangeSpaceAround
	arrangeSpaceEvenly
	arrangeSpacedBy
)

// Arrangement controls how leftover main-axis space is distributed among
// subviews. The zero value packs subviews at the start of the main axis.
type Arrangement struct {
	kind arrangementKind
	gap  float64
}

var (
	// Top packs subviews from the top of a Column with no slack applied.
	Top = Arrangement{kind: arrangeLeading}
	// Bottom pushes all slack before the first subview of a Column.
	Bottom = Arrangement{kind: arrangeTrailing}
	// Start packs subviews from the leading edge of a Row.
	Start = Arrangement{kind: arrangeLeading}
	// End pushes all slack before the first subview of a Row.
	End = Arrangement{kind: arrangeTrailing}
	// Center splits slack equally before the first and after the last subview.
	Center = Arrangement{kind: arrangeCenter}
	// SpaceBetween distributes slack evenly between subviews, with none at
	// the ends. It needs at least two subviews.
	SpaceBetween = Arrangement{kind: arrangeSpaceBetween}
	// SpaceAround gives every subview equal slack on both sides, so the ends
	// get half the inner gap.
	SpaceAround = Arrangement{kind: arrangeSpaceAround}
	// SpaceEvenly makes every gap equal, including before the first and
	// after the last subview.
	SpaceEvenly = Arrangement{kind: arrangeSpaceEvenly}
)

// SpacedBy separates subviews by a fixed gap and ignores slack.
func SpacedBy(gap float64) Arrangement {
	return Arrangement{kind: arrangeSpacedBy, gap: gap}
}

// Gap returns the fixed gap of a SpacedBy arrangement.
func (a Arrangement) Gap() (float64, bool) {
	return a.gap, a.kind == arrangeSpacedBy
}

// String returns the axis-neutral name of the arrangement.
func (a Arrangement) String() string {
	switch a.kind {
	case arrangeLeading:
		return "start"
	case arrangeTrailing:
		return "end"
	case arrangeCenter:
		return "center"
	case arrangeSpaceBetween:
		return "space_between"
	case arrangeSpaceAround:
		return "space_around"
	case arrangeSpaceEvenly:
		return "space_evenly"
	case arrangeSpacedBy:
		return "spaced_by(" + strconv.FormatFloat(a.gap, 'g', -1, 64) + ")"
	default:
		return fmt.Sprintf("Arrangement(%d)", int(a.kind))
	}
}

// NameFor returns the arrangement's name as used by a stack on axis;
// vertical stacks call their end anchors top and bottom.
func (a Arrangement) NameFor(axis Axis) string {
	if axis == AxisVertical {
		switch a.kind {
		case arrangeLeading:
			return "top"
		case arrangeTrailing:
			return "bottom"
		}
	}
	return a.String()
}

// ParseArrangement parses names such as "center", "space_between",
// "spaceEvenly", "top", "end", "spaced_by(8)" or "spacedBy:8".
func ParseArrangement(s string) (Arrangement, error) {
	raw := strings.TrimSpace(s)
	if i := strings.IndexAny(raw, "(:"); i >= 0 {
		arg := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw[i+1:]), ")"))
		if normalizeName(raw[:i]) == "spacedby" {
			if gap, err := strconv.ParseFloat(arg, 64); err == nil {
				return SpacedBy(gap), nil
			}
		}
		return Arrangement{}, &errors.ParseError{Source: "arrangement", DataType: "Arrangement", Got: s}
	}
	switch normalizeName(raw) {
	case "start", "top", "leading", "":
		return Start, nil
	case "end", "bottom", "trailing":
		return End, nil
	case "center":
		return Center, nil
	case "spacebetween":
		return SpaceBetween, nil
	case "spacearound":
		return SpaceAround, nil
	case "spaceevenly":
		return SpaceEvenly, nil
	}
	return Arrangement{}, &errors.ParseError{Source: "arrangement", DataType: "Arrangement", Got: s}
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Arrangement) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Arrangement) UnmarshalText(text []byte) error {
	parsed, err := ParseArrangement(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// spacing returns how a cursor advances while placing n subviews with the
// given non-negative slack: lead once before the first subview, before ahead
// of each subview, and after following each subview's own extent.
func (a Arrangement) spacing(slack float64, n int) (lead, before, after float64, err error) {
	if n == 0 {
		return 0, 0, 0, nil
	}
	switch a.kind {
	case arrangeSpacedBy:
		after = a.gap
	case arrangeSpaceBetween:
		if n < 2 {
			return 0, 0, 0, errors.ErrSpaceBetweenSingleChild
		}
		after = slack / float64(n-1)
	case arrangeSpaceEvenly:
		before = slack / float64(n+1)
	case arrangeSpaceAround:
		before = slack / float64(2*n)
		after = before
	case arrangeCenter:
		lead = slack / 2
	case arrangeTrailing:
		lead = slack
	}
	return lead, before, after, nil
}
