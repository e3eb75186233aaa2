package cmd

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/stacks/cmd/stacks/internal/scene"
	"github.com/go-drift/stacks/pkg/errors"
)

const toolbarScene = `version: v1
proposal: {width: 100, height: 20}
bounds: {width: 100, height: 20}
root:
  row: space_between
  label: bar
  children:
    - label: back
      box: {ideal: [20, 20]}
    - label: menu
      box: {ideal: [20, 20]}
`

type quietHandler struct{}

func (quietHandler) HandleError(*errors.LayoutError) {}
func (quietHandler) HandlePanic(*errors.PanicError)  {}

// project creates a project directory holding go.mod and the given scenes,
// makes it the working directory and captures command output.
func project(t *testing.T, scenes map[string]string) *bytes.Buffer {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/acme/toolbar\n\ngo 1.24\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for name, body := range scenes {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("STACKS_SCENE_DIR", "")

	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestMeasure(t *testing.T) {
	out := project(t, map[string]string{"toolbar.yaml": toolbarScene})

	if err := run([]string{"measure", "toolbar.yaml"}); err != nil {
		t.Fatalf("measure: %v", err)
	}
	want := "toolbar: 40x20 for proposal (100, 20)\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestPlace(t *testing.T) {
	out := project(t, map[string]string{"toolbar.yaml": toolbarScene})

	if err := run([]string{"place", "toolbar.yaml"}); err != nil {
		t.Fatalf("place: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "Row bar (row space_between)") {
		t.Errorf("root line = %q", lines[1])
	}
	if !strings.HasSuffix(lines[3], "x=80 y=0 w=20 h=20") {
		t.Errorf("menu line = %q", lines[3])
	}
}

func TestPlaceJSON(t *testing.T) {
	out := project(t, map[string]string{"scenes/toolbar.yaml": toolbarScene})
	t.Setenv("STACKS_SCENE_DIR", "scenes")

	if err := run([]string{"place", "--json", "toolbar.yaml"}); err != nil {
		t.Fatalf("place: %v", err)
	}
	var res scene.Result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out.String())
	}
	if len(res.Frames) != 3 || res.Frames[2].Label != "menu" {
		t.Fatalf("frames = %+v", res.Frames)
	}
	if res.Frames[2].Rect.Left != 80 {
		t.Errorf("menu left = %g, want 80", res.Frames[2].Rect.Left)
	}
}

func TestRender(t *testing.T) {
	out := project(t, map[string]string{"toolbar.yaml": toolbarScene})

	if err := run([]string{"render", "toolbar.yaml", "-o", "out.png", "--scale=2", "--padding", "0"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Wrote out.png") {
		t.Errorf("output = %q", out.String())
	}

	f, err := os.Open("out.png")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Dx(); got != 201 {
		t.Errorf("width = %d, want 201", got)
	}
}

func TestRenderDefaultOutput(t *testing.T) {
	project(t, map[string]string{"toolbar.yaml": toolbarScene})

	if err := run([]string{"render", "toolbar.yaml"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, err := os.Stat("toolbar.png"); err != nil {
		t.Errorf("expected toolbar.png: %v", err)
	}
}

func TestContractViolationIsAnError(t *testing.T) {
	project(t, map[string]string{"bad.yaml": `root:
  column: space_between
  children:
    - box: {ideal: [10, 10]}
bounds: {width: 10, height: 30}
`})
	errors.SetHandler(quietHandler{})
	t.Cleanup(func() { errors.SetHandler(nil) })

	err := run([]string{"place", "bad.yaml"})
	if !errors.Is(err, errors.ErrSpaceBetweenSingleChild) {
		t.Errorf("error = %v, want ErrSpaceBetweenSingleChild", err)
	}
}

func TestArgumentErrors(t *testing.T) {
	project(t, map[string]string{"toolbar.yaml": toolbarScene})

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown command", []string{"explode"}, "unknown command"},
		{"missing scene", []string{"measure"}, "scene file is required"},
		{"two scenes", []string{"measure", "a.yaml", "b.yaml"}, "unexpected argument"},
		{"unknown flag", []string{"place", "toolbar.yaml", "--yaml"}, "unknown flag --yaml"},
		{"missing value", []string{"render", "toolbar.yaml", "-o"}, "-o requires a value"},
		{"bool with value", []string{"place", "toolbar.yaml", "--json=yes"}, "does not take a value"},
		{"bad scale", []string{"render", "toolbar.yaml", "--scale", "-1"}, "invalid --scale"},
		{"missing file", []string{"measure", "nope.yaml"}, "nope.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run(%v) error = %v, want %q", tt.args, err, tt.want)
			}
		})
	}
}

func TestVersionAndHelp(t *testing.T) {
	out := project(t, nil)

	if err := run([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "stacks version "+Version) {
		t.Errorf("version output = %q", out.String())
	}

	out.Reset()
	if err := run([]string{"help", "render"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "stacks render <scene>") {
		t.Errorf("help output = %q", out.String())
	}

	out.Reset()
	if err := run(nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"measure", "place", "render"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("root help is missing %s", name)
		}
	}
}

func TestOutputName(t *testing.T) {
	tests := map[string]string{
		"toolbar":    "toolbar.png",
		"my toolbar": "my_toolbar.png",
		"a/b.c":      "a_b_c.png",
		"":           "scene.png",
		"***":        "scene.png",
	}
	for in, want := range tests {
		if got := outputName(in); got != want {
			t.Errorf("outputName(%q) = %q, want %q", in, got, want)
		}
	}
}
