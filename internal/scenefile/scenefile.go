// Package scenefile loads layer scenes described in TOML.
//
// A scene file lists layers in insertion order together with their cached
// transforms, click targets and an optional viewport:
//
//	[viewport]
//	pan = [0.0, 0.0]
//	zoom = 1.0
//	width = 800.0
//	height = 600.0
//
//	[[layer]]
//	id = 3
//	parent = 0
//	name = "Background"
//	transform = [1, 0, 0, 1, 10, 20]
//	[[layer.target]]
//	rect = [0, 0, 100, 50]
//
// Parent 0 is the root. Every layer is attached with PushChild, so siblings
// keep file order.
package scenefile

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/layertree"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
)

// ErrInvalidScene is returned for scene files that decode but describe an
// impossible scene.
var ErrInvalidScene = errors.New("invalid scene")

// File is the decoded form of a scene file.
type File struct {
	Viewport Viewport `toml:"viewport"`
	Layers   []Layer  `toml:"layer"`
}

// Viewport describes the navigation state.
type Viewport struct {
	Pan    []float64 `toml:"pan"`
	Zoom   float64   `toml:"zoom"`
	Tilt   float64   `toml:"tilt"`
	Width  float64   `toml:"width"`
	Height float64   `toml:"height"`
}

// Layer is one [[layer]] entry.
type Layer struct {
	ID        uint64    `toml:"id"`
	Parent    uint64    `toml:"parent"`
	Name      string    `toml:"name"`
	Transform []float64 `toml:"transform"` // layer to document, not composed with the parent's
	Artboard  bool      `toml:"artboard"`
	Targets   []Target  `toml:"target"`
}

// Target is one [[layer.target]] entry. Exactly one shape must be set.
type Target struct {
	Rect    []float64   `toml:"rect"`    // x, y, width, height
	Circle  []float64   `toml:"circle"`  // cx, cy, radius
	Polygon [][]float64 `toml:"polygon"` // closed outline
	Path    [][]float64 `toml:"path"`    // open outline
	Stroke  float64     `toml:"stroke"`
}

// Scene is a loaded scene ready for queries.
type Scene struct {
	Graph      *layertree.SceneGraph
	Navigation *layertree.Navigation
	Names      map[layertree.LayerID]string

	// Undecoded lists keys present in the file that no field consumed.
	Undecoded []string
}

// Name returns the display name of layer.
func (s *Scene) Name(layer layertree.LayerID) string {
	if layer.IsRoot() {
		return "root"
	}
	if name := s.Names[layer]; name != "" {
		return name
	}
	return fmt.Sprintf("layer %d", layer.NodeID())
}

// Load reads and builds the scene at path.
func Load(path string, opts layertree.Options) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scene, err := Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}

// Parse decodes and builds a scene from TOML data.
func Parse(data []byte, opts layertree.Options) (*Scene, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}
	scene, err := f.Build(opts)
	if err != nil {
		return nil, err
	}
	for _, key := range md.Undecoded() {
		scene.Undecoded = append(scene.Undecoded, key.String())
	}
	return scene, nil
}

// Build inserts the layers into a new SceneGraph, fills its caches and
// applies the viewport.
func (f *File) Build(opts layertree.Options) (*Scene, error) {
	sg := layertree.New(opts)
	scene := &Scene{
		Graph: sg,
		Names: make(map[layertree.LayerID]string, len(f.Layers)),
	}
	transforms := make(map[layertree.LayerID]layertree.Affine, len(f.Layers))
	targets := make(map[layertree.LayerID][]layertree.ClickTarget, len(f.Layers))
	var artboards []layertree.LayerID

	for i, l := range f.Layers {
		if l.ID == 0 {
			return nil, fmt.Errorf("layer %d: id 0 is reserved for the root: %w", i, ErrInvalidScene)
		}
		layer := layertree.NewLayerIDUnchecked(l.ID)
		if err := sg.PushChild(layertree.NewLayerIDUnchecked(l.Parent), layer); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}

		transform, err := l.affine()
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		transforms[layer] = transform

		for j, t := range l.Targets {
			target, err := t.clickTarget()
			if err != nil {
				return nil, fmt.Errorf("layer %d target %d: %w", i, j, err)
			}
			targets[layer] = append(targets[layer], target)
		}
		if l.Artboard {
			artboards = append(artboards, layer)
		}
		if l.Name != "" {
			scene.Names[layer] = l.Name
		}
	}

	sg.UpdateTransforms(transforms)
	sg.UpdateClickTargets(targets)
	sg.UpdateArtboards(artboards)

	nav, err := f.Viewport.navigation()
	if err != nil {
		return nil, err
	}
	nav.Apply(sg)
	scene.Navigation = nav
	return scene, nil
}

func (l Layer) affine() (layertree.Affine, error) {
	if len(l.Transform) == 0 {
		return layertree.Identity, nil
	}
	if len(l.Transform) != 6 {
		return layertree.Affine{}, fmt.Errorf("transform needs 6 numbers, got %d: %w", len(l.Transform), ErrInvalidScene)
	}
	var m layertree.Affine
	copy(m[:], l.Transform)
	return m, nil
}

func (t Target) clickTarget() (layertree.ClickTarget, error) {
	var (
		target layertree.ClickTarget
		shapes int
	)
	if t.Rect != nil {
		shapes++
		if len(t.Rect) != 4 {
			return target, fmt.Errorf("rect needs x, y, width, height: %w", ErrInvalidScene)
		}
		target = layertree.RectTarget(t.Rect[0], t.Rect[1], t.Rect[2], t.Rect[3])
	}
	if t.Circle != nil {
		shapes++
		if len(t.Circle) != 3 {
			return target, fmt.Errorf("circle needs cx, cy, radius: %w", ErrInvalidScene)
		}
		target = layertree.CircleTarget(t.Circle[0], t.Circle[1], t.Circle[2])
	}
	if t.Polygon != nil {
		shapes++
		pts, err := points(t.Polygon)
		if err != nil {
			return target, err
		}
		target = layertree.PolygonTarget(pts...)
	}
	if t.Path != nil {
		shapes++
		pts, err := points(t.Path)
		if err != nil {
			return target, err
		}
		target = layertree.PathTarget(0, pts...)
	}
	if shapes != 1 {
		return target, fmt.Errorf("target needs exactly one of rect, circle, polygon, path; got %d: %w", shapes, ErrInvalidScene)
	}
	target.StrokeWidth = t.Stroke
	return target, nil
}

func points(raw [][]float64) ([]layertree.Vec2, error) {
	pts := make([]layertree.Vec2, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("point %d needs x, y: %w", i, ErrInvalidScene)
		}
		pts[i] = layertree.Vec2{X: p[0], Y: p[1]}
	}
	return pts, nil
}

func (v Viewport) navigation() (*layertree.Navigation, error) {
	w, h := v.Width, v.Height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	nav := layertree.NewNavigation(w, h)
	switch len(v.Pan) {
	case 0:
	case 2:
		nav.Pan = layertree.Vec2{X: v.Pan[0], Y: v.Pan[1]}
	default:
		return nil, fmt.Errorf("viewport pan needs x, y: %w", ErrInvalidScene)
	}
	if v.Zoom != 0 {
		nav.SetZoom(v.Zoom)
	}
	nav.Tilt = v.Tilt
	return nav, nil
}
