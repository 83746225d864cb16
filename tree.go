package layertree

import (
	"github.com/charmbracelet/log"
)

// relations holds the structural links of one layer. The zero LayerID stands
// for "no link".
type relations struct {
	parent          LayerID
	previousSibling LayerID
	nextSibling     LayerID
	firstChild      LayerID
	lastChild       LayerID
}

// Tree is the relation table: every known layer mapped to its parent, sibling
// and child links. Layers are plain values, so the tree never holds pointers
// between layers and a stale LayerID is always safe to query.
//
// All queries run in O(1) and answer false for unknown layers. Mutations must
// not run while an iterator over the same tree is in progress.
//
// A Tree must be created with NewTree.
type Tree struct {
	structure map[LayerID]*relations

	logger  *log.Logger
	metrics *metrics
	debug   bool

	deleteBuf []LayerID // reused by Delete
}

// NewTree returns a tree containing only Root.
func NewTree() *Tree {
	return newTree(defaultLogger(), nil, false)
}

func newTree(logger *log.Logger, m *metrics, debug bool) *Tree {
	return &Tree{
		structure: map[LayerID]*relations{Root: {}},
		logger:    logger,
		metrics:   m,
		debug:     debug,
	}
}

// Reset drops every layer except Root.
func (t *Tree) Reset() {
	clear(t.structure)
	t.structure[Root] = &relations{}
}

// Len returns the number of layers in the tree, Root included.
func (t *Tree) Len() int {
	return len(t.structure)
}

// --- Queries ---

// Exists reports whether layer is in the tree.
func (t *Tree) Exists(layer LayerID) bool {
	_, ok := t.structure[layer]
	return ok
}

// Parent returns the parent of layer. Root and unknown layers have none.
func (t *Tree) Parent(layer LayerID) (LayerID, bool) {
	return t.link(layer, AxisParent)
}

// PreviousSibling returns the sibling directly above layer.
func (t *Tree) PreviousSibling(layer LayerID) (LayerID, bool) {
	return t.link(layer, AxisPreviousSibling)
}

// NextSibling returns the sibling directly below layer.
func (t *Tree) NextSibling(layer LayerID) (LayerID, bool) {
	return t.link(layer, AxisNextSibling)
}

// FirstChild returns the top-most child of layer.
func (t *Tree) FirstChild(layer LayerID) (LayerID, bool) {
	return t.link(layer, AxisFirstChild)
}

// LastChild returns the bottom-most child of layer.
func (t *Tree) LastChild(layer LayerID) (LayerID, bool) {
	return t.link(layer, AxisLastChild)
}

// HasChildren reports whether layer has at least one child.
func (t *Tree) HasChildren(layer LayerID) bool {
	_, ok := t.FirstChild(layer)
	return ok
}

func (t *Tree) link(layer LayerID, axis Axis) (LayerID, bool) {
	next := t.step(layer, axis)
	return next, next.IsValid()
}

// IsDescendantOf reports whether ancestor appears in layer's ancestor chain.
// A layer is considered a descendant of itself.
func (t *Tree) IsDescendantOf(layer, ancestor LayerID) bool {
	it := t.Ancestors(layer)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		if id == ancestor {
			return true
		}
	}
	return false
}

// ChildOfRoot returns the ancestor of layer (possibly layer itself) that sits
// directly below Root.
func (t *Tree) ChildOfRoot(layer LayerID) (LayerID, bool) {
	if layer.IsRoot() || !t.Exists(layer) {
		return LayerID{}, false
	}
	var last LayerID
	it := t.Ancestors(layer)
	for id, ok := it.Next(); ok && !id.IsRoot(); id, ok = it.Next() {
		last = id
	}
	return last, last.IsValid()
}

// Depth returns the number of strict ancestors of layer, or -1 when layer is
// not in the tree.
func (t *Tree) Depth(layer LayerID) int {
	if !t.Exists(layer) {
		return -1
	}
	it := t.Ancestors(layer)
	return it.Count() - 1
}

// --- Mutations ---

// PushFrontChild inserts layer as the first (top-most) child of parent.
func (t *Tree) PushFrontChild(parent, layer LayerID) error {
	const op = "push_front_child"
	if err := t.checkInsert(op, parent, layer); err != nil {
		return err
	}
	p := t.structure[parent]
	oldFirst := p.firstChild
	p.firstChild = layer
	if !p.lastChild.IsValid() {
		p.lastChild = layer
	}
	if oldFirst.IsValid() {
		t.structure[oldFirst].previousSibling = layer
	}
	t.structure[layer] = &relations{parent: parent, nextSibling: oldFirst}
	t.afterMutation(op, layer)
	return nil
}

// PushChild inserts layer as the last (bottom-most) child of parent.
func (t *Tree) PushChild(parent, layer LayerID) error {
	const op = "push_child"
	if err := t.checkInsert(op, parent, layer); err != nil {
		return err
	}
	p := t.structure[parent]
	oldLast := p.lastChild
	p.lastChild = layer
	if !p.firstChild.IsValid() {
		p.firstChild = layer
	}
	if oldLast.IsValid() {
		t.structure[oldLast].nextSibling = layer
	}
	t.structure[layer] = &relations{parent: parent, previousSibling: oldLast}
	t.afterMutation(op, layer)
	return nil
}

// AddBefore inserts layer as the sibling directly above existing.
func (t *Tree) AddBefore(existing, layer LayerID) error {
	const op = "add_before"
	if err := t.checkSiblingInsert(op, existing, layer); err != nil {
		return err
	}
	e := t.structure[existing]
	n := &relations{parent: e.parent, previousSibling: e.previousSibling, nextSibling: existing}
	if e.previousSibling.IsValid() {
		t.structure[e.previousSibling].nextSibling = layer
	} else if p := t.structure[e.parent]; p != nil && p.firstChild == existing {
		p.firstChild = layer
	}
	e.previousSibling = layer
	t.structure[layer] = n
	t.afterMutation(op, layer)
	return nil
}

// AddAfter inserts layer as the sibling directly below existing.
func (t *Tree) AddAfter(existing, layer LayerID) error {
	const op = "add_after"
	if err := t.checkSiblingInsert(op, existing, layer); err != nil {
		return err
	}
	e := t.structure[existing]
	n := &relations{parent: e.parent, previousSibling: existing, nextSibling: e.nextSibling}
	if e.nextSibling.IsValid() {
		t.structure[e.nextSibling].previousSibling = layer
	} else if p := t.structure[e.parent]; p != nil && p.lastChild == existing {
		p.lastChild = layer
	}
	e.nextSibling = layer
	t.structure[layer] = n
	t.afterMutation(op, layer)
	return nil
}

// Delete detaches layer from its siblings and removes it together with all of
// its descendants. Cached transforms and click targets of removed layers are
// left alone; they disappear with the next cache replacement.
func (t *Tree) Delete(layer LayerID) error {
	const op = "delete"
	switch {
	case layer.IsRoot():
		return t.reject(op, layer, ErrRootLayer)
	case !t.Exists(layer):
		return t.reject(op, layer, ErrLayerNotFound)
	}

	r := t.structure[layer]
	if r.previousSibling.IsValid() {
		t.structure[r.previousSibling].nextSibling = r.nextSibling
	}
	if r.nextSibling.IsValid() {
		t.structure[r.nextSibling].previousSibling = r.previousSibling
	}
	if p := t.structure[r.parent]; p != nil {
		if p.firstChild == layer {
			p.firstChild = r.nextSibling
		}
		if p.lastChild == layer {
			p.lastChild = r.previousSibling
		}
	}

	// The descendant walk reads relations of layers it has already yielded,
	// so collect first and remove afterwards.
	buf := append(t.deleteBuf[:0], layer)
	it := t.Descendants(layer)
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		buf = append(buf, id)
	}
	for _, id := range buf {
		delete(t.structure, id)
	}
	clear(buf)
	t.deleteBuf = buf[:0]

	t.afterMutation(op, layer)
	return nil
}

func (t *Tree) checkInsert(op string, anchor, layer LayerID) error {
	switch {
	case !layer.IsValid():
		return t.reject(op, layer, ErrInvalidLayer)
	case t.Exists(layer):
		return t.reject(op, layer, ErrLayerExists)
	case !t.Exists(anchor):
		return t.reject(op, anchor, ErrLayerNotFound)
	}
	return nil
}

func (t *Tree) checkSiblingInsert(op string, existing, layer LayerID) error {
	if err := t.checkInsert(op, existing, layer); err != nil {
		return err
	}
	if existing.IsRoot() {
		return t.reject(op, existing, ErrRootLayer)
	}
	return nil
}

func (t *Tree) reject(op string, layer LayerID, err error) error {
	t.metrics.rejected(op, err)
	return layerError(op, layer, err)
}

// afterMutation records the mutation and, in debug mode, re-validates the
// whole tree.
func (t *Tree) afterMutation(op string, layer LayerID) {
	t.metrics.mutated(op)
	if !t.debug {
		return
	}
	if err := t.Validate(); err != nil {
		t.logger.Error("relation table corrupted", "op", op, "layer", layer, "err", err)
	}
	if op != "delete" {
		t.debugCheckTreeDepth(layer)
		if parent, ok := t.Parent(layer); ok {
			t.debugCheckChildCount(parent)
		}
	}
}
