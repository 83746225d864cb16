package layertree

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the collectors of one SceneGraph. A nil *metrics records
// nothing, which is what a bare Tree uses.
type metrics struct {
	cacheMisses     prometheus.Counter
	mutations       *prometheus.CounterVec
	rejections      *prometheus.CounterVec
	hitTestDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Name: "layertree_transform_cache_misses_total",
			Help: "Transform lookups that fell back to identity",
		}),
		mutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "layertree_mutations_total",
			Help: "Structural mutations applied to the relation table",
		}, []string{"op"}),
		rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "layertree_mutations_rejected_total",
			Help: "Structural mutations rejected with an error",
		}, []string{"op", "reason"}),
		hitTestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "layertree_hit_test_duration_seconds",
			Help:    "Duration of click and quad hit tests",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005},
		}, []string{"query"}),
	}
}

func (m *metrics) cacheMiss() {
	if m == nil {
		return
	}
	m.cacheMisses.Inc()
}

func (m *metrics) mutated(op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op).Inc()
}

func (m *metrics) rejected(op string, err error) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(op, rejectionReason(err)).Inc()
}

// hitTest starts timing a hit test. Call the returned func when it finishes.
func (m *metrics) hitTest(query string) func() {
	if m == nil {
		return func() {}
	}
	timer := prometheus.NewTimer(m.hitTestDuration.WithLabelValues(query))
	return func() { timer.ObserveDuration() }
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrLayerExists):
		return "exists"
	case errors.Is(err, ErrLayerNotFound):
		return "not_found"
	case errors.Is(err, ErrRootLayer):
		return "root"
	case errors.Is(err, ErrInvalidLayer):
		return "invalid"
	default:
		return "other"
	}
}
