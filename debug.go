package layertree

import (
	"fmt"
)

// globalDebug mirrors the most recently set SceneGraph debug flag so that
// NewLayerID (which has no graph pointer) can check it cheaply. Only valid
// with a single SceneGraph; several graphs with differing debug modes reflect
// whichever called SetDebugMode last.
var globalDebug bool

// SetDebugMode enables or disables invariant validation after each mutation
// on t. It also switches the process-wide layer-kind assertion in NewLayerID.
func (t *Tree) SetDebugMode(enabled bool) {
	t.debug = enabled
	globalDebug = enabled
}

// Validate checks every structural invariant of the relation table: each
// child list is a consistent doubly linked chain whose ends are the parent's
// first and last child, every child points back at its parent, and every
// layer but Root is reachable from exactly one parent. It returns the first
// violation found.
func (t *Tree) Validate() error {
	root, ok := t.structure[Root]
	if !ok {
		return fmt.Errorf("layertree: root missing")
	}
	if root.parent.IsValid() || root.previousSibling.IsValid() || root.nextSibling.IsValid() {
		return fmt.Errorf("layertree: root has parent or siblings: %+v", *root)
	}

	seen := make(map[LayerID]LayerID, len(t.structure))
	for parent, r := range t.structure {
		if r.firstChild.IsValid() != r.lastChild.IsValid() {
			return fmt.Errorf("layertree: %v has first child %v but last child %v", parent, r.firstChild, r.lastChild)
		}
		var prev LayerID
		steps := 0
		for child := r.firstChild; child.IsValid(); child = t.step(child, AxisNextSibling) {
			if steps++; steps > len(t.structure) {
				return fmt.Errorf("layertree: sibling cycle below %v", parent)
			}
			c, ok := t.structure[child]
			if !ok {
				return fmt.Errorf("layertree: %v links to missing child %v", parent, child)
			}
			if c.parent != parent {
				return fmt.Errorf("layertree: %v listed under %v but its parent is %v", child, parent, c.parent)
			}
			if c.previousSibling != prev {
				return fmt.Errorf("layertree: %v previous sibling is %v, want %v", child, c.previousSibling, prev)
			}
			if other, dup := seen[child]; dup {
				return fmt.Errorf("layertree: %v listed under both %v and %v", child, other, parent)
			}
			seen[child] = parent
			prev = child
		}
		if prev != r.lastChild {
			return fmt.Errorf("layertree: %v last child is %v, chain ends at %v", parent, r.lastChild, prev)
		}
	}

	for id, r := range t.structure {
		if id.IsRoot() {
			continue
		}
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("layertree: %v (parent %v) is not in any child list", id, r.parent)
		}
	}
	return nil
}

// debugMaxTreeDepth is the depth above which a warning is logged.
const debugMaxTreeDepth = 64

func (t *Tree) debugCheckTreeDepth(layer LayerID) {
	if depth := t.Depth(layer); depth > debugMaxTreeDepth {
		t.logger.Warn("deep layer tree", "layer", layer, "depth", depth, "threshold", debugMaxTreeDepth)
	}
}

// debugMaxChildCount is the sibling count above which a warning is logged.
const debugMaxChildCount = 1000

func (t *Tree) debugCheckChildCount(parent LayerID) {
	children := t.Children(parent)
	if n := children.Count(); n > debugMaxChildCount {
		t.logger.Warn("wide layer", "layer", parent, "children", n, "threshold", debugMaxChildCount)
	}
}
