package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the tree model.
type Metrics struct {
	// Tree mutation metrics
	NodesAdded   *prometheus.CounterVec
	NodesRemoved *prometheus.CounterVec
	TreeNodes    prometheus.Gauge

	// Stored object metrics
	RecordsDeleted *prometheus.CounterVec

	// Population metrics
	PopulateDuration *prometheus.HistogramVec

	// Batch metrics
	BatchesTotal prometheus.Counter
}

// NewMetrics creates a metrics collector registered on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates a metrics collector registered on reg. Tests pass a
// private registry so multiple models can coexist in one process.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		NodesAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitedata_tree_nodes_added_total",
				Help: "Total number of nodes added to the tree",
			},
			[]string{"type"},
		),
		NodesRemoved: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitedata_tree_nodes_removed_total",
				Help: "Total number of nodes removed from the tree",
			},
			[]string{"type"},
		),
		TreeNodes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "sitedata_tree_nodes",
				Help: "Current number of nodes in the tree, excluding the root",
			},
		),
		RecordsDeleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitedata_records_deleted_total",
				Help: "Total number of backing records erased, by category",
			},
			[]string{"category"},
		),
		PopulateDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sitedata_populate_duration_seconds",
				Help:    "Duration of per-category tree population",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"category"},
		),
		BatchesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "sitedata_batches_total",
				Help: "Total number of completed batch update spans",
			},
		),
	}
}
