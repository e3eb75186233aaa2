package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-drift/stacks/cmd/stacks/internal/scene"
)

func init() {
	RegisterCommand(&Command{
		Name:  "place",
		Short: "Print where every element is placed",
		Long: `Measure and place a scene, then print each element's frame.

Frames are listed depth first, indented by nesting level.

Flags:
  --json   Print the result as JSON`,
		Usage: "stacks place <scene> [--json]",
		Run:   runPlace,
	})
}

func runPlace(args []string) error {
	path, flags, err := parseArgs(args, flagSpec{bools: []string{"--json"}}, "stacks place <scene> [--json]")
	if err != nil {
		return err
	}

	s, _, err := loadScene(path)
	if err != nil {
		return err
	}

	res, err := s.Run()
	if err != nil {
		return err
	}

	if flags["--json"] != "" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	printFrames(res)
	return nil
}

func printFrames(res *scene.Result) {
	fmt.Fprintf(stdout, "%s: %s in %s\n", res.Title, res.Size, rectString(res.Bounds.Left, res.Bounds.Top, res.Bounds.Width(), res.Bounds.Height()))
	for _, f := range res.Frames {
		name := f.Kind
		if f.Label != "" {
			name += " " + f.Label
		}
		if f.Layout != "" {
			name += " (" + f.Layout + ")"
		}
		where := "not placed"
		if f.Placed {
			where = rectString(f.Rect.Left, f.Rect.Top, f.Rect.Width(), f.Rect.Height())
		}
		fmt.Fprintf(stdout, "%s%-*s %s\n", strings.Repeat("  ", f.Depth), max(32-2*f.Depth, 0), name, where)
	}
}

func rectString(x, y, w, h float64) string {
	return fmt.Sprintf("x=%g y=%g w=%g h=%g", x, y, w, h)
}
