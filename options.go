package layertree

import (
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
)

// Options configures a SceneGraph. The zero value is ready to use.
type Options struct {
	// Logger receives cache-miss warnings and debug diagnostics. Nil uses the
	// charmbracelet default logger with a "layertree" prefix.
	Logger *log.Logger

	// Debug re-validates this graph's relation table after every mutation.
	// It also enables the layer-kind assertion in NewLayerID, which has no
	// graph to consult and so is process-wide: it stays on for every graph
	// until some graph calls SetDebugMode(false).
	Debug bool

	// Metrics registers the graph's collectors. Nil keeps them unregistered.
	// A registerer can hold the collectors of only one SceneGraph; wrap it
	// with prometheus.WrapRegistererWith to give each graph its own labels.
	Metrics prometheus.Registerer
}

func defaultLogger() *log.Logger {
	return log.Default().WithPrefix("layertree")
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return defaultLogger()
}
