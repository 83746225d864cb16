package layertree

import (
	"cmp"
	"fmt"
)

// LayerKindChecker reports whether a graph node is a layer node. It is
// implemented by the external graph definition.
type LayerKindChecker interface {
	IsLayer(nodeID uint64) bool
}

// LayerKindFunc adapts a plain function to LayerKindChecker.
type LayerKindFunc func(nodeID uint64) bool

// IsLayer calls f(nodeID).
func (f LayerKindFunc) IsLayer(nodeID uint64) bool { return f(nodeID) }

// LayerID names a layer node. The wrapped value is the graph node id shifted
// by one, so the zero value is never a valid layer and node id 0 is reserved
// for Root.
type LayerID struct {
	raw uint64
}

// Root is the implicit root of every layer tree.
var Root = NewLayerIDUnchecked(0)

// NewLayerIDUnchecked wraps nodeID without checking that it is a layer node.
func NewLayerIDUnchecked(nodeID uint64) LayerID {
	return LayerID{raw: nodeID + 1}
}

// NewLayerID wraps nodeID. While any graph has left debug mode enabled it
// panics if the graph does not consider nodeID a layer node.
func NewLayerID(nodeID uint64, graph LayerKindChecker) LayerID {
	if globalDebug && nodeID != Root.NodeID() && (graph == nil || !graph.IsLayer(nodeID)) {
		panic(fmt.Sprintf("layertree: layer identifier constructed from non-layer node %d", nodeID))
	}
	return NewLayerIDUnchecked(nodeID)
}

// NodeID returns the graph node id this layer wraps.
func (id LayerID) NodeID() uint64 {
	return id.raw - 1
}

// IsRoot reports whether id is Root.
func (id LayerID) IsRoot() bool {
	return id == Root
}

// IsValid reports whether id was produced by a constructor (the zero LayerID
// is not).
func (id LayerID) IsValid() bool {
	return id.raw != 0
}

// Compare orders ids by their wrapped node id. The order is only useful for
// sorting and has nothing to do with document order.
func (id LayerID) Compare(other LayerID) int {
	return cmp.Compare(id.raw, other.raw)
}

func (id LayerID) String() string {
	if !id.IsValid() {
		return "Layer(none)"
	}
	if id.IsRoot() {
		return "Layer(root)"
	}
	return fmt.Sprintf("Layer(node_id=%d)", id.NodeID())
}

// LayerIDs converts raw node ids to unchecked layer ids.
func LayerIDs(nodeIDs ...uint64) []LayerID {
	ids := make([]LayerID, len(nodeIDs))
	for i, n := range nodeIDs {
		ids[i] = NewLayerIDUnchecked(n)
	}
	return ids
}

// NodeIDs converts layer ids back to raw node ids.
func NodeIDs(ids []LayerID) []uint64 {
	out := make([]uint64, len(ids))
	for i, id := range ids {
		out[i] = id.NodeID()
	}
	return out
}
