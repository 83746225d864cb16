package layertree

import (
	"encoding/json"
	"fmt"
)

// Edit ops understood by EditScript.
const (
	OpPushChild      = "push_child"
	OpPushFrontChild = "push_front_child"
	OpAddBefore      = "add_before"
	OpAddAfter       = "add_after"
	OpDelete         = "delete"
)

// EditStep is a single structural edit. Anchor and Layer are raw graph node
// ids; node id 0 is Root. Delete uses only Layer.
type EditStep struct {
	Op     string `json:"op"`
	Anchor uint64 `json:"anchor,omitempty"`
	Layer  uint64 `json:"layer"`
}

// editScript is the top-level JSON structure of an edit script.
type editScript struct {
	Steps []EditStep `json:"steps"`
}

// EditScript is a recorded sequence of structural edits, as issued by a graph
// structure editor, that can be replayed against a Tree.
type EditScript struct {
	Steps []EditStep
}

// LoadEditScript parses a JSON edit script of the form
//
//	{"steps": [{"op": "push_child", "anchor": 0, "layer": 3}, ...]}
func LoadEditScript(jsonData []byte) (*EditScript, error) {
	var script editScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse edit script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse edit script: %w", ErrEmptyEditScript)
	}
	for i, s := range script.Steps {
		if !knownEditOp(s.Op) {
			return nil, fmt.Errorf("parse edit script: step %d: %w %q", i, ErrUnknownEditOp, s.Op)
		}
	}
	return &EditScript{Steps: script.Steps}, nil
}

func knownEditOp(op string) bool {
	switch op {
	case OpPushChild, OpPushFrontChild, OpAddBefore, OpAddAfter, OpDelete:
		return true
	}
	return false
}

// Apply replays the steps in order and stops at the first step that fails.
// Steps before the failing one stay applied.
func (s *EditScript) Apply(t *Tree) error {
	for i, step := range s.Steps {
		if err := step.Apply(t); err != nil {
			return fmt.Errorf("edit step %d: %w", i, err)
		}
	}
	return nil
}

// Apply performs a single edit.
func (s EditStep) Apply(t *Tree) error {
	anchor := NewLayerIDUnchecked(s.Anchor)
	layer := NewLayerIDUnchecked(s.Layer)
	switch s.Op {
	case OpPushChild:
		return t.PushChild(anchor, layer)
	case OpPushFrontChild:
		return t.PushFrontChild(anchor, layer)
	case OpAddBefore:
		return t.AddBefore(anchor, layer)
	case OpAddAfter:
		return t.AddAfter(anchor, layer)
	case OpDelete:
		return t.Delete(layer)
	default:
		return fmt.Errorf("%w %q", ErrUnknownEditOp, s.Op)
	}
}
