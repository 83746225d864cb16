package layertree_test

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/phanxgames/layertree"
)

func Example() {
	sg := layertree.New(layertree.Options{Logger: log.New(io.Discard)})

	background := layertree.NewLayerIDUnchecked(1)
	group := layertree.NewLayerIDUnchecked(2)
	star := layertree.NewLayerIDUnchecked(3)
	_ = sg.PushChild(layertree.Root, background)
	_ = sg.PushFrontChild(layertree.Root, group)
	_ = sg.PushChild(group, star)

	for layer := range sg.AllLayers().All() {
		fmt.Println(layer, "depth", sg.Depth(layer))
	}

	sg.UpdateTransforms(map[layertree.LayerID]layertree.Affine{
		background: layertree.Identity,
		group:      layertree.Translate(50, 50),
		star:       layertree.Translate(50, 50),
	})
	sg.UpdateClickTargets(map[layertree.LayerID][]layertree.ClickTarget{
		background: {layertree.RectTarget(0, 0, 200, 200)},
		star:       {layertree.CircleTarget(0, 0, 10)},
	})

	if hit, ok := sg.Click(layertree.Vec2{X: 52, Y: 48}); ok {
		fmt.Println("clicked", hit)
	}
	// Output:
	// Layer(node_id=2) depth 1
	// Layer(node_id=3) depth 2
	// Layer(node_id=1) depth 1
	// clicked Layer(node_id=3)
}

func ExampleTree_Descendants() {
	tree := layertree.NewTree()
	for _, n := range []uint64{1, 2, 3} {
		_ = tree.PushChild(layertree.Root, layertree.NewLayerIDUnchecked(n))
	}
	_ = tree.PushChild(layertree.NewLayerIDUnchecked(2), layertree.NewLayerIDUnchecked(4))

	it := tree.Descendants(layertree.Root)
	fmt.Println(layertree.NodeIDs(it.Collect()))
	it = tree.Descendants(layertree.Root)
	fmt.Println(layertree.NodeIDs(it.CollectBackward()))
	// Output:
	// [1 2 4 3]
	// [3 4 2 1]
}

func ExampleTree_ShallowestUniqueLayers() {
	sg := layertree.New(layertree.Options{Logger: log.New(io.Discard)})
	group, child := layertree.NewLayerIDUnchecked(1), layertree.NewLayerIDUnchecked(2)
	_ = sg.PushChild(layertree.Root, group)
	_ = sg.PushChild(group, child)

	sg.SetSelected([]layertree.LayerID{child, group})
	for _, path := range sg.ShallowestUniqueLayers(sg.SelectedLayers()) {
		fmt.Println(layertree.NodeIDs(path))
	}
	// Output:
	// [0 1]
}
