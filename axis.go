package layertree

import "iter"

// Axis selects which relation an AxisIter follows.
type Axis uint8

const (
	AxisParent          Axis = iota // towards Root
	AxisPreviousSibling             // up the sibling list
	AxisNextSibling                 // down the sibling list
	AxisFirstChild                  // into the top-most child
	AxisLastChild                   // into the bottom-most child
)

func (a Axis) String() string {
	switch a {
	case AxisParent:
		return "parent"
	case AxisPreviousSibling:
		return "previous_sibling"
	case AxisNextSibling:
		return "next_sibling"
	case AxisFirstChild:
		return "first_child"
	case AxisLastChild:
		return "last_child"
	default:
		return "unknown"
	}
}

// step follows one relation from layer. It returns the zero LayerID when the
// link is absent or layer is unknown.
func (t *Tree) step(layer LayerID, axis Axis) LayerID {
	r := t.structure[layer]
	if r == nil {
		return LayerID{}
	}
	switch axis {
	case AxisParent:
		return r.parent
	case AxisPreviousSibling:
		return r.previousSibling
	case AxisNextSibling:
		return r.nextSibling
	case AxisFirstChild:
		return r.firstChild
	case AxisLastChild:
		return r.lastChild
	}
	return LayerID{}
}

// AxisIter walks a single relation repeatedly, yielding the current layer
// before each step. It is a small value and never allocates.
type AxisIter struct {
	tree    *Tree
	axis    Axis
	current LayerID
}

// Axis returns an iterator that starts at start (inclusive) and follows axis.
func (t *Tree) Axis(start LayerID, axis Axis) AxisIter {
	return AxisIter{tree: t, axis: axis, current: start}
}

// Children iterates over the direct children of layer, top to bottom.
func (t *Tree) Children(layer LayerID) AxisIter {
	return t.Axis(t.step(layer, AxisFirstChild), AxisNextSibling)
}

// Ancestors iterates from layer (inclusive) up to Root.
func (t *Tree) Ancestors(layer LayerID) AxisIter {
	return t.Axis(layer, AxisParent)
}

// LastChildren iterates from layer (inclusive) down the chain of last children.
func (t *Tree) LastChildren(layer LayerID) AxisIter {
	return t.Axis(layer, AxisLastChild)
}

// Next yields the current layer and advances along the axis.
func (it *AxisIter) Next() (LayerID, bool) {
	id := it.current
	if !id.IsValid() {
		return LayerID{}, false
	}
	it.current = it.tree.step(id, it.axis)
	return id, true
}

// Last drains the iterator and returns the final layer.
func (it *AxisIter) Last() (LayerID, bool) {
	var last LayerID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		last = id
	}
	return last, last.IsValid()
}

// Count drains the iterator and returns the number of layers it yielded.
func (it *AxisIter) Count() int {
	n := 0
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// Collect drains the iterator into a slice.
func (it *AxisIter) Collect() []LayerID {
	var out []LayerID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		out = append(out, id)
	}
	return out
}

// All returns the remaining layers as a range-over-func sequence. The
// sequence restarts from the iterator's current position on every range.
func (it AxisIter) All() iter.Seq[LayerID] {
	return func(yield func(LayerID) bool) {
		cur := it
		for id, ok := cur.Next(); ok; id, ok = cur.Next() {
			if !yield(id) {
				return
			}
		}
	}
}
