// Package layertree is the layer scene graph of a node-graph based vector
// editor: it tracks the parent, child and sibling relations between layers,
// caches their transforms and hit-test geometry, and answers structural and
// spatial queries.
//
// Layertree computes nothing itself. The graph evaluator supplies per-layer
// transforms and click targets, the structure editor supplies insertions and
// deletions, and the UI asks questions in between. Queries never fail: an
// unknown or stale layer simply has no parent, no children and no bounds.
//
// # Layers and the relation table
//
// A [LayerID] wraps a graph node id. Node id 0 is reserved for [Root], the
// implicit top of every tree. A [Tree] maps each layer to its parent, previous
// and next sibling, and first and last child; all lookups are O(1).
//
//	sg := layertree.New(layertree.Options{})
//	bg := layertree.NewLayerIDUnchecked(3)
//	if err := sg.PushChild(layertree.Root, bg); err != nil {
//		// errors.Is(err, layertree.ErrLayerExists) ...
//	}
//
// Insertions ([Tree.PushChild], [Tree.PushFrontChild], [Tree.AddBefore],
// [Tree.AddAfter]) return [ErrLayerExists] instead of corrupting the tree
// when the layer is already present. [Tree.Delete] removes a layer and its
// whole subtree.
//
// # Traversal
//
// [Tree.Children], [Tree.Ancestors] and [Tree.LastChildren] follow a single
// relation ([AxisIter]). [Tree.Descendants] walks a subtree depth-first in
// document order from either end without a stack ([DescendantsIter]):
//
//	it := sg.Descendants(layertree.Root)
//	for layer, ok := it.Next(); ok; layer, ok = it.Next() {
//		// top-most layer first
//	}
//	for layer := range sg.AllLayers().Backward() {
//		// bottom-most layer first
//	}
//
// Iterators read the live tree; mutating the tree mid-iteration is
// unsupported.
//
// # Caches and hit testing
//
// [SceneGraph.UpdateTransforms] and [SceneGraph.UpdateClickTargets] replace
// the caches wholesale. [SceneGraph.Click], [SceneGraph.ClickXray] and
// [SceneGraph.IntersectQuad] map viewport-space input into each layer's space
// and test its [ClickTarget] shapes. Bounding boxes are available in layer,
// document and viewport space. [Navigation] produces the document-to-viewport
// transform from pan, zoom and tilt, with animated transitions via [gween].
//
// [gween]: https://github.com/tanema/gween
package layertree
