// Package cli implements the layerdump command-line interface.
//
// layerdump loads a TOML scene description (see package scenefile) into a
// layertree.SceneGraph and prints what the scene graph knows about it.
//
// # Commands
//
//   - tree: print the layer hierarchy with bounding boxes
//   - hit: run Click, ClickXray or IntersectQuad at a viewport position
//   - dot: export the hierarchy as Graphviz DOT or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/layertree"
	"github.com/phanxgames/layertree/internal/scenefile"
)

const appName = "layerdump"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	debug bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
			Prefix:          appName,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "layerdump inspects layer scene graphs",
		Long:         `layerdump loads a TOML layer scene and prints its hierarchy, runs hit tests against it, or exports it as a Graphviz diagram.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&c.debug, "validate", false, "validate the relation table after every insertion")

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.hitCommand())
	root.AddCommand(c.dotCommand())

	return root
}

// loadScene loads path with the CLI logger wired into the scene graph.
func (c *CLI) loadScene(path string) (*scenefile.Scene, error) {
	scene, err := scenefile.Load(path, layertree.Options{Logger: c.Logger, Debug: c.debug})
	if err != nil {
		return nil, err
	}
	for _, key := range scene.Undecoded {
		c.Logger.Warn("unknown key in scene file", "key", key)
	}
	c.Logger.Debug("loaded scene", "path", path, "layers", scene.Graph.Len()-1)
	return scene, nil
}
