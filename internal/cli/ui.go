package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/layertree"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - layer names
	colorGreen  = lipgloss.Color("35")  // Green - hits
	colorYellow = lipgloss.Color("220") // Amber - artboards
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleName     = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleHit      = lipgloss.NewStyle().Foreground(colorGreen)
	styleArtboard = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(10)
)

const (
	iconHit    = "✓"
	iconMiss   = "✗"
	iconBranch = "└ "
)

// printTitle prints a heading.
func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf(format, args...)))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// printHit prints the result of a single-layer hit test.
func printHit(w io.Writer, label string, name string, ok bool) {
	if !ok {
		fmt.Fprintln(w, styleKey.Render(label)+" "+styleDim.Render(iconMiss+" none"))
		return
	}
	fmt.Fprintln(w, styleKey.Render(label)+" "+styleHit.Render(iconHit+" "+name))
}

// formatBounds renders a box as "(x0, y0)-(x1, y1)".
func formatBounds(b layertree.Bounds) string {
	return fmt.Sprintf("(%g, %g)-(%g, %g)", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
}
