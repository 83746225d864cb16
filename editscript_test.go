package layertree

import (
	"errors"
	"strings"
	"testing"
)

// referenceScript builds root -> [1 2 3 4 5 6 9], 6 -> [7 8].
const referenceScript = `{
	"steps": [
		{"op": "push_child", "anchor": 0, "layer": 3},
		{"op": "push_child", "anchor": 0, "layer": 6},
		{"op": "add_after", "anchor": 3, "layer": 4},
		{"op": "add_before", "anchor": 3, "layer": 2},
		{"op": "add_before", "anchor": 6, "layer": 5},
		{"op": "add_after", "anchor": 6, "layer": 9},
		{"op": "push_child", "anchor": 6, "layer": 8},
		{"op": "push_front_child", "anchor": 6, "layer": 7},
		{"op": "push_front_child", "anchor": 0, "layer": 1}
	]
}`

func TestLoadEditScript(t *testing.T) {
	script, err := LoadEditScript([]byte(referenceScript))
	if err != nil {
		t.Fatalf("LoadEditScript: %v", err)
	}
	if len(script.Steps) != 9 {
		t.Fatalf("got %d steps, want 9", len(script.Steps))
	}
	if s := script.Steps[3]; s.Op != OpAddBefore || s.Anchor != 3 || s.Layer != 2 {
		t.Errorf("step 3 = %+v", s)
	}
}

func TestEditScriptApplyMatchesDirectCalls(t *testing.T) {
	script, err := LoadEditScript([]byte(referenceScript))
	if err != nil {
		t.Fatalf("LoadEditScript: %v", err)
	}
	tr := NewTree()
	mustEdit(t, script.Apply(tr))
	assertValid(t, tr)

	want := buildReferenceTree(t)
	assertIDs(t, "descendants", descendants(tr, Root), NodeIDs(descendants(want, Root))...)

	del, err := LoadEditScript([]byte(`{"steps": [{"op": "delete", "layer": 6}, {"op": "delete", "layer": 1}]}`))
	if err != nil {
		t.Fatalf("LoadEditScript: %v", err)
	}
	mustEdit(t, del.Apply(tr))
	assertIDs(t, "after delete", descendants(tr, Root), 2, 3, 4, 5, 9)
}

func TestLoadEditScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want error
	}{
		{"unknown op", `{"steps": [{"op": "reparent", "layer": 1}]}`, ErrUnknownEditOp},
		{"no steps", `{"steps": []}`, ErrEmptyEditScript},
		{"missing steps", `{}`, ErrEmptyEditScript},
	}
	for _, tt := range tests {
		_, err := LoadEditScript([]byte(tt.json))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}

	if _, err := LoadEditScript([]byte(`{not json`)); err == nil {
		t.Error("malformed JSON should fail")
	}
}

func TestEditScriptStopsAtFirstFailure(t *testing.T) {
	script, err := LoadEditScript([]byte(`{"steps": [
		{"op": "push_child", "anchor": 0, "layer": 1},
		{"op": "push_child", "anchor": 0, "layer": 1},
		{"op": "push_child", "anchor": 0, "layer": 2}
	]}`))
	if err != nil {
		t.Fatalf("LoadEditScript: %v", err)
	}
	tr := NewTree()
	err = script.Apply(tr)
	if !errors.Is(err, ErrLayerExists) {
		t.Fatalf("err = %v, want ErrLayerExists", err)
	}
	if !strings.Contains(err.Error(), "edit step 1") {
		t.Errorf("error should name the failing step: %v", err)
	}
	if !tr.Exists(id(1)) || tr.Exists(id(2)) {
		t.Error("steps before the failure stay applied, later ones do not run")
	}
}

func TestEditStepUnknownOp(t *testing.T) {
	err := EditStep{Op: "bogus", Layer: 1}.Apply(NewTree())
	if !errors.Is(err, ErrUnknownEditOp) {
		t.Errorf("err = %v, want ErrUnknownEditOp", err)
	}
}
