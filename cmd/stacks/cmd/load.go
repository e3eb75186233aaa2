package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/stacks/cmd/stacks/internal/config"
	"github.com/go-drift/stacks/cmd/stacks/internal/scene"
)

// loadScene resolves the project configuration and loads the scene named by
// arg. Scenes without a title take the project title.
func loadScene(arg string) (*scene.Scene, *config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, nil, err
	}

	s, err := scene.Load(cfg.ScenePath(arg))
	if err != nil {
		return nil, nil, err
	}
	if s.Title == "" {
		s.Title = cfg.Title
	}
	return s, cfg, nil
}

// flagSpec lists the flags a command accepts. Value flags consume the next
// argument unless written as --name=value.
type flagSpec struct {
	bools  []string
	values []string
}

// parseArgs splits args into the single scene path and the flags given.
func parseArgs(args []string, spec flagSpec, usage string) (string, map[string]string, error) {
	flags := make(map[string]string)
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positional = append(positional, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		switch {
		case slices.Contains(spec.bools, name):
			if hasValue {
				return "", nil, fmt.Errorf("%s does not take a value\n\nUsage: %s", name, usage)
			}
			flags[name] = "true"
		case slices.Contains(spec.values, name):
			if !hasValue {
				if i+1 >= len(args) {
					return "", nil, fmt.Errorf("%s requires a value\n\nUsage: %s", name, usage)
				}
				i++
				value = args[i]
			}
			flags[name] = value
		default:
			return "", nil, fmt.Errorf("unknown flag %s\n\nUsage: %s", name, usage)
		}
	}

	switch len(positional) {
	case 0:
		return "", nil, fmt.Errorf("scene file is required\n\nUsage: %s", usage)
	case 1:
		return positional[0], flags, nil
	default:
		return "", nil, fmt.Errorf("unexpected argument %q\n\nUsage: %s", positional[1], usage)
	}
}
