// Package config loads the optional stacks.yaml project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up at the project root.
const FileName = "stacks.yaml"

// Config represents the optional stacks.yaml configuration.
type Config struct {
	Title  string       `yaml:"title,omitempty"`
	Scenes ScenesConfig `yaml:"scenes"`
	Render RenderConfig `yaml:"render"`
}

// ScenesConfig controls where scene files are looked up.
type ScenesConfig struct {
	Dir string `yaml:"dir,omitempty"`
}

// RenderConfig controls debug PNG output.
type RenderConfig struct {
	Scale   float64 `yaml:"scale,omitempty"`
	Padding int     `yaml:"padding,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	Title      string
	SceneDir   string
	Scale      float64
	Padding    int
}

// LoadOptional reads stacks.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads stacks.yaml (if present) and resolves defaults.
// STACKS_SCENE_DIR overrides the configured scene directory.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modulePath, err := modulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	title := strings.TrimSpace(cfg.Title)
	if title == "" {
		title = defaultTitle(modulePath, dir)
	}

	sceneDir := strings.TrimSpace(os.Getenv("STACKS_SCENE_DIR"))
	if sceneDir == "" {
		sceneDir = strings.TrimSpace(cfg.Scenes.Dir)
	}
	if sceneDir != "" && !filepath.IsAbs(sceneDir) {
		sceneDir = filepath.Join(dir, sceneDir)
	}

	scale := cfg.Render.Scale
	if scale == 0 {
		scale = 1
	}
	if scale < 0 || scale > 16 {
		return nil, fmt.Errorf("render.scale must be in (0, 16] (got %g)", scale)
	}
	padding := cfg.Render.Padding
	if padding < 0 {
		return nil, fmt.Errorf("render.padding cannot be negative (got %d)", padding)
	}
	if padding == 0 {
		padding = 8
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		Title:      title,
		SceneDir:   sceneDir,
		Scale:      scale,
		Padding:    padding,
	}, nil
}

// FindProjectRoot walks up from the current directory to the nearest
// directory holding stacks.yaml or go.mod. It returns the current directory
// when neither is found.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		for _, marker := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

// ScenePath resolves a scene argument against the scene directory.
func (r *Resolved) ScenePath(arg string) string {
	if filepath.IsAbs(arg) || r.SceneDir == "" {
		return arg
	}
	if _, err := os.Stat(arg); err == nil {
		return arg
	}
	return filepath.Join(r.SceneDir, arg)
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", err
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultTitle(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "stacks"
	}
	return base
}
