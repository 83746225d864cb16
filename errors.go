package layertree

import (
	"errors"
	"fmt"
)

// Structural errors
var (
	// ErrLayerExists indicates an insertion of a layer that is already in the tree.
	ErrLayerExists = errors.New("layer already exists")

	// ErrLayerNotFound indicates that an anchor or target layer is not in the tree.
	ErrLayerNotFound = errors.New("layer not found")

	// ErrRootLayer indicates an operation that is not allowed on Root, such as
	// deleting it or giving it siblings.
	ErrRootLayer = errors.New("operation not allowed on root layer")

	// ErrInvalidLayer indicates the zero LayerID, which names no layer.
	ErrInvalidLayer = errors.New("invalid layer identifier")
)

// Edit script errors
var (
	// ErrUnknownEditOp indicates an edit script step with an unrecognised op.
	ErrUnknownEditOp = errors.New("unknown edit op")

	// ErrEmptyEditScript indicates an edit script without steps.
	ErrEmptyEditScript = errors.New("edit script has no steps")
)

// LayerError records a failed structural operation and the layer involved.
type LayerError struct {
	Op    string  // operation name, e.g. "push_child"
	Layer LayerID // layer that caused the failure
	Err   error   // one of the sentinel errors above
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("layertree: %s %v: %v", e.Op, e.Layer, e.Err)
}

func (e *LayerError) Unwrap() error {
	return e.Err
}

func layerError(op string, layer LayerID, err error) error {
	return &LayerError{Op: op, Layer: layer, Err: err}
}
