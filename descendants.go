package layertree

import "iter"

// DescendantsIter is a double-ended, depth-first walk over the strict
// descendants of a layer in document order (pre-order, top sibling first).
//
// It keeps two cursors and no stack: the front cursor moves to the first child
// or else to the next sibling of the nearest ancestor that has one; the back
// cursor moves to the deepest last child of the previous sibling or else to
// the parent. Iteration ends when the cursors meet, so Next and NextBack may
// be mixed freely and never yield a layer twice.
//
// Mutating the tree while a DescendantsIter is in progress is unsupported and
// gives undefined (but non-panicking) results.
type DescendantsIter struct {
	tree  *Tree
	front LayerID
	back  LayerID
}

// Descendants iterates over every descendant of layer, excluding layer itself.
func (t *Tree) Descendants(layer LayerID) DescendantsIter {
	it := DescendantsIter{tree: t, front: t.step(layer, AxisFirstChild)}
	if last := t.step(layer, AxisLastChild); last.IsValid() {
		chain := t.LastChildren(last)
		it.back, _ = chain.Last()
	}
	return it
}

// AllLayers iterates over every layer in the tree except Root, in document
// order.
func (t *Tree) AllLayers() DescendantsIter {
	return t.Descendants(Root)
}

// Next yields the next layer from the front.
func (it *DescendantsIter) Next() (LayerID, bool) {
	if it.front == it.back {
		id := it.front
		it.front, it.back = LayerID{}, LayerID{}
		return id, id.IsValid()
	}
	id := it.front
	if !id.IsValid() {
		return LayerID{}, false
	}
	next := it.tree.step(id, AxisFirstChild)
	if !next.IsValid() {
		up := it.tree.Ancestors(id)
		for a, ok := up.Next(); ok; a, ok = up.Next() {
			if s := it.tree.step(a, AxisNextSibling); s.IsValid() {
				next = s
				break
			}
		}
	}
	it.front = next
	return id, true
}

// NextBack yields the next layer from the back.
func (it *DescendantsIter) NextBack() (LayerID, bool) {
	if it.front == it.back {
		id := it.back
		it.front, it.back = LayerID{}, LayerID{}
		return id, id.IsValid()
	}
	id := it.back
	if !id.IsValid() {
		return LayerID{}, false
	}
	var next LayerID
	if prev := it.tree.step(id, AxisPreviousSibling); prev.IsValid() {
		chain := it.tree.LastChildren(prev)
		next, _ = chain.Last()
	} else {
		next = it.tree.step(id, AxisParent)
	}
	it.back = next
	return id, true
}

// Collect drains the iterator from the front.
func (it *DescendantsIter) Collect() []LayerID {
	var out []LayerID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		out = append(out, id)
	}
	return out
}

// CollectBackward drains the iterator from the back.
func (it *DescendantsIter) CollectBackward() []LayerID {
	var out []LayerID
	for id, ok := it.NextBack(); ok; id, ok = it.NextBack() {
		out = append(out, id)
	}
	return out
}

// All returns the remaining layers front to back as a range-over-func
// sequence. Each range starts again from the iterator's current cursors.
func (it DescendantsIter) All() iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		cur := it
		for id, ok := cur.Next(); ok; id, ok = cur.Next() {
			if !yield(id) {
				return
			}
		}
	}
}

// Backward returns the remaining layers back to front.
func (it DescendantsIter) Backward() iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		cur := it
		for id, ok := cur.NextBack(); ok; id, ok = cur.NextBack() {
			if !yield(id) {
				return
			}
		}
	}
}
