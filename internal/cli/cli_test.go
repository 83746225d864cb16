package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/phanxgames/layertree"
	"github.com/phanxgames/layertree/internal/scenefile"
)

const testScene = `
[viewport]
width = 200
height = 200
pan = [100, 100]

[[layer]]
id = 1
name = "Board"
artboard = true
[[layer.target]]
rect = [0, 0, 200, 200]

[[layer]]
id = 2
parent = 1
name = "Square"
[[layer.target]]
rect = [10, 10, 20, 20]

[[layer]]
id = 3
parent = 1
name = "Dot"
[[layer.target]]
circle = [150, 150, 10]
`

func writeScene(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command and returns stdout and the log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestTreeCommand(t *testing.T) {
	path := writeScene(t, testScene)
	out, logs, err := run(t, "tree", path)
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	for _, want := range []string{"3 layers", "Board", "[artboard]", "Square", "#2", "(10, 10)-(30, 30)", "Dot"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Square") > strings.Index(out, "Dot") {
		t.Error("layers should print in document order")
	}
	if !strings.Contains(logs, "loaded scene") {
		t.Errorf("expected debug log, got %q", logs)
	}
}

func TestHitCommandPoint(t *testing.T) {
	path := writeScene(t, testScene)
	// Viewport centre (100,100) shows document (100,100); viewport (20,20) is document (20,20).
	out, _, err := run(t, "hit", path, "--x", "20", "--y", "20")
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	if !strings.Contains(out, "✓ Square") {
		t.Errorf("expected Square to be clicked:\n%s", out)
	}
	if !strings.Contains(out, "Board") {
		t.Errorf("xray should list the artboard:\n%s", out)
	}

	out, _, err = run(t, "hit", path, "--x", "100", "--y", "100")
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	if !strings.Contains(out, "none") {
		t.Errorf("bare artboard should not be clicked:\n%s", out)
	}
}

func TestHitCommandQuad(t *testing.T) {
	path := writeScene(t, testScene)
	out, _, err := run(t, "hit", path, "--quad", "200,200,0,0")
	if err != nil {
		t.Fatalf("hit: %v", err)
	}
	if !strings.Contains(out, "✓ Square") || !strings.Contains(out, "Dot") {
		t.Errorf("quad should touch Square and Dot:\n%s", out)
	}

	if _, _, err := run(t, "hit", path, "--quad", "1,2,3"); err == nil {
		t.Error("short quad should fail")
	}
}

func TestDotCommand(t *testing.T) {
	path := writeScene(t, testScene)
	out, _, err := run(t, "dot", path)
	if err != nil {
		t.Fatalf("dot: %v", err)
	}
	for _, want := range []string{"digraph layers", "root -> l1;", "l1 -> l2;", "l1 -> l3;", "dashed"} {
		if !strings.Contains(out, want) {
			t.Errorf("DOT missing %q:\n%s", want, out)
		}
	}
}

func TestDotCommandSVG(t *testing.T) {
	path := writeScene(t, testScene)
	svgPath := filepath.Join(t.TempDir(), "tree.svg")
	if _, _, err := run(t, "dot", path, "--svg", svgPath); err != nil {
		t.Fatalf("dot --svg: %v", err)
	}
	svg, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("output is not SVG: %.200s", svg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, _, err := run(t, "tree", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing scene should fail")
	}
	path := writeScene(t, "[[layer]]\nid = 1\nparent = 7\n")
	if _, _, err := run(t, "tree", path); err == nil {
		t.Error("scene with unknown parent should fail")
	}
	path = writeScene(t, "[[layer]]\nid = 1\nshade = 3\n")
	_, logs, err := run(t, "tree", path)
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.Contains(logs, "unknown key") {
		t.Errorf("expected unknown key warning, got %q", logs)
	}
}

func TestToDOTEmptyScene(t *testing.T) {
	scene, err := scenefile.Parse(nil, layertree.Options{Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	dot := ToDOT(scene)
	if !strings.Contains(dot, "root [label=\"root\", shape=ellipse];") || strings.Contains(dot, "->") {
		t.Errorf("unexpected DOT for empty scene:\n%s", dot)
	}
}
