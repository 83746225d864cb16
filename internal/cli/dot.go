package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/phanxgames/layertree"
	"github.com/phanxgames/layertree/internal/scenefile"
)

// dotCommand creates the dot command that exports the hierarchy.
func (c *CLI) dotCommand() *cobra.Command {
	var svgPath string

	cmd := &cobra.Command{
		Use:   "dot <scene.toml>",
		Short: "Export the layer hierarchy as Graphviz DOT or SVG",
		Example: `  # DOT to stdout
  layerdump dot scene.toml | dot -Tpng > tree.png

  # Render SVG with the embedded Graphviz
  layerdump dot scene.toml --svg tree.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := c.loadScene(args[0])
			if err != nil {
				return err
			}
			dot := ToDOT(scene)

			if svgPath == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}

			svg, err := RenderSVG(cmd.Context(), dot)
			if err != nil {
				return err
			}
			if err := os.WriteFile(svgPath, svg, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			c.Logger.Info("wrote svg", "path", svgPath, "bytes", len(svg))
			return nil
		},
	}

	cmd.Flags().StringVar(&svgPath, "svg", "", "render SVG to this file instead of printing DOT")

	return cmd
}

// ToDOT converts the layer hierarchy to Graphviz DOT, one node per layer with
// edges from parent to child. Siblings keep document order left to right.
func ToDOT(scene *scenefile.Scene) string {
	sg := scene.Graph

	var buf bytes.Buffer
	buf.WriteString("digraph layers {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %s [label=%q, shape=ellipse];\n", dotID(layertree.Root), scene.Name(layertree.Root))
	for layer := range sg.AllLayers().All() {
		attrs := []string{fmt.Sprintf("label=%q", fmt.Sprintf("%s\n#%d", scene.Name(layer), layer.NodeID()))}
		if sg.IsArtboard(layer) {
			attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightyellow")
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", dotID(layer), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for layer := range sg.AllLayers().All() {
		if parent, ok := sg.Parent(layer); ok {
			fmt.Fprintf(&buf, "  %s -> %s;\n", dotID(parent), dotID(layer))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotID(layer layertree.LayerID) string {
	if layer.IsRoot() {
		return "root"
	}
	return fmt.Sprintf("l%d", layer.NodeID())
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
