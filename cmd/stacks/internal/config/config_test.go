package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveDefaults(t *testing.T) {
	t.Setenv("STACKS_SCENE_DIR", "")
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/acme/toolbar/v2\n\ngo 1.24\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.ModulePath != "example.com/acme/toolbar/v2" {
		t.Errorf("ModulePath = %q", cfg.ModulePath)
	}
	if cfg.Title != "toolbar" {
		t.Errorf("Title = %q, want toolbar", cfg.Title)
	}
	if cfg.Scale != 1 || cfg.Padding != 8 {
		t.Errorf("Scale, Padding = %v, %v; want 1, 8", cfg.Scale, cfg.Padding)
	}
	if cfg.SceneDir != "" {
		t.Errorf("SceneDir = %q, want empty", cfg.SceneDir)
	}
}

func TestResolveWithoutGoMod(t *testing.T) {
	t.Setenv("STACKS_SCENE_DIR", "")
	dir := filepath.Join(t.TempDir(), "playground")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Title != "playground" {
		t.Errorf("Title = %q, want playground", cfg.Title)
	}
}

func TestResolveFromFile(t *testing.T) {
	t.Setenv("STACKS_SCENE_DIR", "")
	dir := t.TempDir()
	writeFile(t, dir, FileName, "title: demo\nscenes:\n  dir: scenes\nrender:\n  scale: 2\n  padding: 4\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Title != "demo" || cfg.Scale != 2 || cfg.Padding != 4 {
		t.Errorf("got %+v", cfg)
	}
	if cfg.SceneDir != filepath.Join(dir, "scenes") {
		t.Errorf("SceneDir = %q", cfg.SceneDir)
	}
	if got := cfg.ScenePath("toolbar.yaml"); got != filepath.Join(dir, "scenes", "toolbar.yaml") {
		t.Errorf("ScenePath = %q", got)
	}
}

func TestResolveEnvOverride(t *testing.T) {
	override := t.TempDir()
	t.Setenv("STACKS_SCENE_DIR", override)
	dir := t.TempDir()
	writeFile(t, dir, FileName, "scenes:\n  dir: scenes\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.SceneDir != override {
		t.Errorf("SceneDir = %q, want %q", cfg.SceneDir, override)
	}
}

func TestResolveInvalid(t *testing.T) {
	t.Setenv("STACKS_SCENE_DIR", "")
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "render: [\n"},
		{"negative scale", "render:\n  scale: -1\n"},
		{"huge scale", "render:\n  scale: 100\n"},
		{"negative padding", "render:\n  padding: -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tt.content)
			if _, err := Resolve(dir); err == nil {
				t.Error("expected error")
			}
		})
	}
}
