package layertree

import (
	"iter"
	"maps"

	"github.com/charmbracelet/log"
)

// SceneGraph owns the relation table together with the caches supplied by the
// graph evaluator (layer transforms and click targets) and the
// document-to-viewport transform. It answers structural and spatial queries.
//
// The caches are replaced wholesale and may lag behind the relation table: a
// freshly inserted layer may have no cached transform yet and a deleted
// layer's entries linger until the next replacement. Both are ordinary cache
// misses, never errors.
//
// SceneGraph does no locking. Mutations need exclusive access; queries can
// share access with other queries.
type SceneGraph struct {
	*Tree

	transforms   map[LayerID]Affine
	clickTargets map[LayerID][]ClickTarget
	artboards    map[LayerID]struct{}
	selected     []LayerID

	documentToViewport Affine

	logger  *log.Logger
	metrics *metrics
}

// New creates a scene graph holding only Root, with identity transforms and
// empty caches.
func New(opts Options) *SceneGraph {
	logger := opts.logger()
	m := newMetrics(opts.Metrics)
	sg := &SceneGraph{
		Tree:               newTree(logger, m, opts.Debug),
		transforms:         map[LayerID]Affine{},
		clickTargets:       map[LayerID][]ClickTarget{},
		artboards:          map[LayerID]struct{}{},
		documentToViewport: Identity,
		logger:             logger,
		metrics:            m,
	}
	if opts.Debug {
		sg.SetDebugMode(true)
	}
	return sg
}

// --- Cache replacement ---

// UpdateTransforms replaces the layer-to-document transform cache with a copy
// of transforms. Later writes to the caller's map do not reach the cache.
func (sg *SceneGraph) UpdateTransforms(transforms map[LayerID]Affine) {
	if transforms == nil {
		transforms = map[LayerID]Affine{}
	}
	sg.transforms = maps.Clone(transforms)
}

// UpdateClickTargets replaces the click-target cache with a copy of targets.
// The target slices themselves are shared and must not be modified.
func (sg *SceneGraph) UpdateClickTargets(targets map[LayerID][]ClickTarget) {
	if targets == nil {
		targets = map[LayerID][]ClickTarget{}
	}
	sg.clickTargets = maps.Clone(targets)
}

// UpdateArtboards replaces the set of layers that are artboards. Artboards
// are skipped by Click and IntersectQuad.
func (sg *SceneGraph) UpdateArtboards(layers []LayerID) {
	set := make(map[LayerID]struct{}, len(layers))
	for _, l := range layers {
		set[l] = struct{}{}
	}
	sg.artboards = set
}

// IsArtboard reports whether layer is in the current artboard set.
func (sg *SceneGraph) IsArtboard(layer LayerID) bool {
	_, ok := sg.artboards[layer]
	return ok
}

// PruneCaches drops cache, artboard and selection entries for layers that are
// no longer in the tree. Deletion never does this on its own.
func (sg *SceneGraph) PruneCaches() {
	maps.DeleteFunc(sg.transforms, func(l LayerID, _ Affine) bool { return !sg.Exists(l) })
	maps.DeleteFunc(sg.clickTargets, func(l LayerID, _ []ClickTarget) bool { return !sg.Exists(l) })
	maps.DeleteFunc(sg.artboards, func(l LayerID, _ struct{}) bool { return !sg.Exists(l) })
	sg.RetainSelected(sg.Exists)
}

// --- Transforms ---

// DocumentToViewport returns the document-to-viewport transform.
func (sg *SceneGraph) DocumentToViewport() Affine {
	return sg.documentToViewport
}

// SetDocumentToViewport replaces the document-to-viewport transform.
func (sg *SceneGraph) SetDocumentToViewport(m Affine) {
	sg.documentToViewport = m
}

// TransformToDocument returns the cached layer-to-document transform. A layer
// missing from the cache gets Identity and a logged warning.
func (sg *SceneGraph) TransformToDocument(layer LayerID) Affine {
	if m, ok := sg.transforms[layer]; ok {
		return m
	}
	sg.metrics.cacheMiss()
	sg.logger.Warn("no cached transform for layer", "layer", layer)
	return Identity
}

// TransformToViewport returns the layer-to-viewport transform.
func (sg *SceneGraph) TransformToViewport(layer LayerID) Affine {
	return sg.documentToViewport.Mul(sg.TransformToDocument(layer))
}

// --- Click targets ---

// ClickTargets returns the cached click targets of layer.
func (sg *SceneGraph) ClickTargets(layer LayerID) ([]ClickTarget, bool) {
	targets, ok := sg.clickTargets[layer]
	return targets, ok
}

// layersHitBy yields, in document order, every layer with a click target for
// which hit reports true.
func (sg *SceneGraph) layersHitBy(hit func(ClickTarget, Affine) bool) iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		it := sg.AllLayers()
		for layer, ok := it.Next(); ok; layer, ok = it.Next() {
			targets, cached := sg.clickTargets[layer]
			if !cached {
				continue
			}
			transform := sg.TransformToDocument(layer)
			for _, target := range targets {
				if hit(target, transform) {
					if !yield(layer) {
						return
					}
					break
				}
			}
		}
	}
}

// IntersectQuadAll yields every layer whose click targets touch the
// viewport-space quad, in document order. Artboards are skipped.
func (sg *SceneGraph) IntersectQuadAll(viewportQuad Quad) iter.Seq[LayerID] {
	documentQuad := sg.documentToViewport.Inverse().ApplyQuad(viewportQuad)
	hits := sg.layersHitBy(func(target ClickTarget, transform Affine) bool {
		return target.IntersectRectangle(documentQuad, transform)
	})
	return func(yield func(LayerID) bool) {
		for layer := range hits {
			if sg.IsArtboard(layer) {
				continue
			}
			if !yield(layer) {
				return
			}
		}
	}
}

// IntersectQuad returns the first layer, in document order, whose click
// targets touch the viewport-space quad.
func (sg *SceneGraph) IntersectQuad(viewportQuad Quad) (LayerID, bool) {
	defer sg.metrics.hitTest("intersect_quad")()
	for layer := range sg.IntersectQuadAll(viewportQuad) {
		return layer, true
	}
	return LayerID{}, false
}

// ClickXray yields every layer under the viewport-space point in document
// order, artboards included. The sequence is lazy and may be ranged over
// again.
func (sg *SceneGraph) ClickXray(viewportPoint Vec2) iter.Seq[LayerID] {
	point := sg.documentToViewport.Inverse().Apply(viewportPoint)
	return sg.layersHitBy(func(target ClickTarget, transform Affine) bool {
		return target.IntersectPoint(point, transform)
	})
}

// Click returns the first non-artboard layer under the viewport-space point.
func (sg *SceneGraph) Click(viewportPoint Vec2) (LayerID, bool) {
	defer sg.metrics.hitTest("click")()
	for layer := range sg.ClickXray(viewportPoint) {
		if !sg.IsArtboard(layer) {
			return layer, true
		}
	}
	return LayerID{}, false
}

// --- Bounding boxes ---

// BoundingBoxWithTransform returns the union of the bounds of layer's click
// targets under transform. It reports false when layer has no cached targets
// with geometry.
func (sg *SceneGraph) BoundingBoxWithTransform(layer LayerID, transform Affine) (Bounds, bool) {
	var (
		out   Bounds
		found bool
	)
	for _, target := range sg.clickTargets[layer] {
		b, ok := target.BoundingBoxWithTransform(transform)
		if !ok {
			continue
		}
		if found {
			out = out.Union(b)
		} else {
			out, found = b, true
		}
	}
	return out, found
}

// BoundingBoxDocument returns layer's bounds in document space.
func (sg *SceneGraph) BoundingBoxDocument(layer LayerID) (Bounds, bool) {
	return sg.BoundingBoxWithTransform(layer, sg.TransformToDocument(layer))
}

// BoundingBoxViewport returns layer's bounds in viewport space.
func (sg *SceneGraph) BoundingBoxViewport(layer LayerID) (Bounds, bool) {
	return sg.BoundingBoxWithTransform(layer, sg.TransformToViewport(layer))
}

// NonzeroBoundingBox returns layer's bounds in layer space, widened to at
// least one unit on each axis. A layer without targets gets the unit box at
// the origin.
func (sg *SceneGraph) NonzeroBoundingBox(layer LayerID) Bounds {
	b, _ := sg.BoundingBoxWithTransform(layer, Identity)
	return b.Nonzero()
}

// DocumentBounds returns the union of every layer's viewport-space bounds.
func (sg *SceneGraph) DocumentBounds() (Bounds, bool) {
	return sg.unionViewportBounds(sg.AllLayers().All())
}

func (sg *SceneGraph) unionViewportBounds(layers iter.Seq[LayerID]) (Bounds, bool) {
	var (
		out   Bounds
		found bool
	)
	for layer := range layers {
		if _, cached := sg.clickTargets[layer]; !cached {
			continue
		}
		b, ok := sg.BoundingBoxViewport(layer)
		if !ok {
			continue
		}
		if found {
			out = out.Union(b)
		} else {
			out, found = b, true
		}
	}
	return out, found
}
