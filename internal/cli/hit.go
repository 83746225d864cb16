package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/layertree"
)

// hitCommand creates the hit command that runs viewport hit tests.
func (c *CLI) hitCommand() *cobra.Command {
	var (
		x, y float64
		quad string
	)

	cmd := &cobra.Command{
		Use:   "hit <scene.toml>",
		Short: "Hit-test a viewport point or rectangle",
		Example: `  # Point: top-most layer and everything underneath
  layerdump hit scene.toml --x 120 --y 40

  # Rectangle: every layer it touches
  layerdump hit scene.toml --quad 0,0,200,100`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := c.loadScene(args[0])
			if err != nil {
				return err
			}
			sg := scene.Graph
			w := cmd.OutOrStdout()

			if quad != "" {
				box, err := parseBox(quad)
				if err != nil {
					return fmt.Errorf("invalid --quad %q: %w", quad, err)
				}
				q := layertree.QuadFromBox(box)
				printTitle(w, "quad %s", formatBounds(box))
				hit, ok := sg.IntersectQuad(q)
				printHit(w, "first", scene.Name(hit), ok)
				for layer := range sg.IntersectQuadAll(q) {
					printKeyValue(w, "touches", scene.Name(layer))
				}
				return nil
			}

			p := layertree.Vec2{X: x, Y: y}
			printTitle(w, "point (%g, %g)", x, y)
			hit, ok := sg.Click(p)
			printHit(w, "click", scene.Name(hit), ok)
			for layer := range sg.ClickXray(p) {
				label := "xray"
				if sg.IsArtboard(layer) {
					label = "artboard"
				}
				printKeyValue(w, label, scene.Name(layer))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&x, "x", 0, "viewport x coordinate")
	cmd.Flags().Float64Var(&y, "y", 0, "viewport y coordinate")
	cmd.Flags().StringVar(&quad, "quad", "", "viewport rectangle x0,y0,x1,y1 (overrides --x/--y)")

	return cmd
}

// parseBox parses "x0,y0,x1,y1" into a box with ordered corners.
func parseBox(s string) (layertree.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return layertree.Bounds{}, fmt.Errorf("need 4 numbers, got %d", len(parts))
	}
	var v [4]float64
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return layertree.Bounds{}, fmt.Errorf("invalid number %q", p)
		}
		v[i] = n
	}
	a, b := layertree.Vec2{X: v[0], Y: v[1]}, layertree.Vec2{X: v[2], Y: v[3]}
	return layertree.Bounds{Min: a.Min(b), Max: a.Max(b)}, nil
}
