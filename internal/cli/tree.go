package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// treeCommand creates the tree command that prints the layer hierarchy.
func (c *CLI) treeCommand() *cobra.Command {
	var viewport bool

	cmd := &cobra.Command{
		Use:   "tree <scene.toml>",
		Short: "Print the layer hierarchy with bounding boxes",
		Example: `  # Document-space bounds
  layerdump tree scene.toml

  # Viewport-space bounds
  layerdump tree --viewport scene.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := c.loadScene(args[0])
			if err != nil {
				return err
			}
			sg := scene.Graph
			w := cmd.OutOrStdout()

			printTitle(w, "%s (%d layers)", args[0], sg.Len()-1)
			for layer := range sg.AllLayers().All() {
				var line strings.Builder
				line.WriteString(strings.Repeat("  ", sg.Depth(layer)-1))
				line.WriteString(styleDim.Render(iconBranch))
				line.WriteString(styleName.Render(scene.Name(layer)))
				line.WriteString(styleDim.Render(fmt.Sprintf(" #%d", layer.NodeID())))
				if sg.IsArtboard(layer) {
					line.WriteString(" " + styleArtboard.Render("[artboard]"))
				}

				bounds, ok := sg.BoundingBoxDocument(layer)
				if viewport {
					bounds, ok = sg.BoundingBoxViewport(layer)
				}
				if ok {
					line.WriteString(" " + styleValue.Render(formatBounds(bounds)))
				}
				fmt.Fprintln(w, line.String())
			}

			if b, ok := sg.DocumentBounds(); ok {
				printKeyValue(w, "bounds", formatBounds(b))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&viewport, "viewport", false, "print viewport-space instead of document-space bounds")

	return cmd
}
