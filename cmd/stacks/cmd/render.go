package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/stacks/cmd/stacks/internal/render"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Draw a placed scene as a PNG",
		Long: `Measure and place a scene, then draw every frame into a PNG.

Frames are outlined with a color per nesting level and labeled with their
scene labels. Scale and padding default to the render section of
stacks.yaml.

Flags:
  -o, --output FILE   Output path (default: <title>.png)
  --scale N           Pixels per layout unit
  --padding N         Border around the drawing, in pixels
  --no-labels         Do not draw labels`,
		Usage: "stacks render <scene> [-o FILE] [--scale N] [--padding N] [--no-labels]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	const usage = "stacks render <scene> [-o FILE] [--scale N] [--padding N] [--no-labels]"
	path, flags, err := parseArgs(args, flagSpec{
		bools:  []string{"--no-labels"},
		values: []string{"-o", "--output", "--scale", "--padding"},
	}, usage)
	if err != nil {
		return err
	}

	s, cfg, err := loadScene(path)
	if err != nil {
		return err
	}

	opts := render.Options{Scale: cfg.Scale, Padding: cfg.Padding, Labels: flags["--no-labels"] == ""}
	if v, ok := flags["--scale"]; ok {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil || scale <= 0 {
			return fmt.Errorf("invalid --scale %q", v)
		}
		opts.Scale = scale
	}
	if v, ok := flags["--padding"]; ok {
		padding, err := strconv.Atoi(v)
		if err != nil || padding < 0 {
			return fmt.Errorf("invalid --padding %q", v)
		}
		opts.Padding = padding
	}

	out := flags["--output"]
	if v, ok := flags["-o"]; ok {
		out = v
	}
	if out == "" {
		out = outputName(s.Title)
	}

	res, err := s.Run()
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := render.PNG(f, res, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s (%s)\n", out, res.Size)
	return nil
}

func outputName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ', r == '/', r == '.':
			return '_'
		}
		return -1
	}, title)
	if name == "" {
		name = "scene"
	}
	return name + ".png"
}
