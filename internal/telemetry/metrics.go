package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Snapshot mirrors graph.Stats's fields without coupling this package
// to the graph package directly.
type Snapshot struct {
	Hits    uint64
	Misses  uint64
	SIMDOps uint64
}

// StatsFunc produces a point-in-time Snapshot. Callers adapt
// *graph.Graph.Stats into one, e.g.:
//
//	telemetry.StatsFunc(func() telemetry.Snapshot {
//	    s := g.Stats()
//	    return telemetry.Snapshot{Hits: s.Hits, Misses: s.Misses, SIMDOps: s.SIMDOps}
//	})
//
// keeping telemetry free of a graph import, since the ambient stack
// should never depend on the core it observes.
type StatsFunc func() Snapshot

// GraphMetrics exports a Graph's counters as Prometheus gauges. Unlike
// the per-request counters a service layer would use, these are
// snapshot gauges: SnapshotOnce reads the source's current totals and
// sets them, it does not increment anything itself.
type GraphMetrics struct {
	hits    prometheus.Gauge
	misses  prometheus.Gauge
	simdOps prometheus.Gauge
	logger  *zap.Logger
}

// NewGraphMetrics registers the gauges against registerer. Pass
// prometheus.DefaultRegisterer in production; tests should pass a
// fresh prometheus.NewRegistry() so repeated construction doesn't
// collide on metric names. Call it once per registerer per graph
// instance.
func NewGraphMetrics(registerer prometheus.Registerer, graphLabel string, logger *zap.Logger) *GraphMetrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	factory := promauto.With(registerer)
	return &GraphMetrics{
		logger: logger,
		hits: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "tripcore_graph_hits_total",
			Help:        "Cumulative duplicate inserts plus Contains probes that found a matching triple.",
			ConstLabels: prometheus.Labels{"graph": graphLabel},
		}),
		misses: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "tripcore_graph_misses_total",
			Help:        "Cumulative new insertions plus Contains probes that found no matching triple.",
			ConstLabels: prometheus.Labels{"graph": graphLabel},
		}),
		simdOps: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "tripcore_graph_simd_ops_total",
			Help:        "Cumulative batched-matcher invocations.",
			ConstLabels: prometheus.Labels{"graph": graphLabel},
		}),
	}
}

// SnapshotOnce sets the gauges to source's current counter values.
func (m *GraphMetrics) SnapshotOnce(source StatsFunc) {
	s := source()
	m.hits.Set(float64(s.Hits))
	m.misses.Set(float64(s.Misses))
	m.simdOps.Set(float64(s.SIMDOps))
}

// Run snapshots source every period until ctx is canceled. It is meant
// to run in its own goroutine, started once at process startup.
func (m *GraphMetrics) Run(ctx context.Context, source StatsFunc, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.SnapshotOnce(source)
			m.logger.Debug("graph metrics snapshot taken")
		}
	}
}
