package layertree

import (
	"iter"
	"slices"
)

// SetSelected replaces the selection.
func (sg *SceneGraph) SetSelected(layers []LayerID) {
	sg.selected = append(sg.selected[:0], layers...)
}

// AddSelected adds layers to the selection, ignoring ones already selected.
func (sg *SceneGraph) AddSelected(layers ...LayerID) {
	for _, l := range layers {
		if !sg.IsSelected(l) {
			sg.selected = append(sg.selected, l)
		}
	}
}

// ClearSelected empties the selection.
func (sg *SceneGraph) ClearSelected() {
	sg.selected = sg.selected[:0]
}

// RetainSelected keeps only the selected layers for which keep returns true.
func (sg *SceneGraph) RetainSelected(keep func(LayerID) bool) {
	sg.selected = slices.DeleteFunc(sg.selected, func(l LayerID) bool { return !keep(l) })
}

// IsSelected reports whether layer is selected.
func (sg *SceneGraph) IsSelected(layer LayerID) bool {
	return slices.Contains(sg.selected, layer)
}

// HasSelected reports whether anything is selected.
func (sg *SceneGraph) HasSelected() bool {
	return len(sg.selected) > 0
}

// SelectedLayers yields the selected layers in document order. Selected ids
// that are no longer in the tree are not yielded.
func (sg *SceneGraph) SelectedLayers() iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		if len(sg.selected) == 0 {
			return
		}
		for layer := range sg.AllLayers().All() {
			if sg.IsSelected(layer) && !yield(layer) {
				return
			}
		}
	}
}

// SelectedLayersBoundingBoxViewport returns the union of the viewport-space
// bounds of the selected layers.
func (sg *SceneGraph) SelectedLayersBoundingBoxViewport() (Bounds, bool) {
	return sg.unionViewportBounds(sg.SelectedLayers())
}

// ancestorPath returns the ancestors of layer from Root down to layer.
func (t *Tree) ancestorPath(layer LayerID) []LayerID {
	it := t.Ancestors(layer)
	path := it.Collect()
	slices.Reverse(path)
	return path
}

// ShallowestUniqueLayers returns the Root-first ancestor path of each layer,
// sorted, with every path dropped that lies below another path in the result.
// Moving or deleting the last layer of each remaining path affects every
// input layer exactly once.
func (t *Tree) ShallowestUniqueLayers(layers iter.Seq[LayerID]) [][]LayerID {
	var paths [][]LayerID
	for l := range layers {
		paths = append(paths, t.ancestorPath(l))
	}
	slices.SortFunc(paths, func(a, b []LayerID) int {
		return slices.CompareFunc(a, b, LayerID.Compare)
	})
	// Sorting groups every path directly after the shortest path it extends.
	out := paths[:0]
	for _, p := range paths {
		if n := len(out); n > 0 && hasPathPrefix(p, out[n-1]) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasPathPrefix(path, prefix []LayerID) bool {
	return len(path) >= len(prefix) && slices.Equal(path[:len(prefix)], prefix)
}

// DeepestCommonAncestor returns the most nested layer that contains every
// input layer. Unless includeSelf is set, or the layer is an artboard, a layer
// does not count as its own ancestor.
func (sg *SceneGraph) DeepestCommonAncestor(layers iter.Seq[LayerID], includeSelf bool) (LayerID, bool) {
	var (
		common []LayerID
		first  = true
	)
	for l := range layers {
		path := sg.ancestorPath(l)
		if (!includeSelf || !sg.IsArtboard(l)) && len(path) > 0 {
			path = path[:len(path)-1]
		}
		if first {
			common, first = path, false
			continue
		}
		n := min(len(common), len(path))
		i := 0
		for i < n && common[i] == path[i] {
			i++
		}
		common = common[:i]
	}
	if len(common) == 0 {
		return LayerID{}, false
	}
	return common[len(common)-1], true
}
