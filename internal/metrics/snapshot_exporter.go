package metrics

import (
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exporterHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "snapshot_exporter",
		Name:      "heights_total",
		Help:      "Count of exported snapshot heights.",
	}, []string{"network", "status"})

	exporterHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "snapshot_exporter",
		Name:      "height_duration_seconds",
		Help:      "Duration of building the view of a snapshot height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	exporterLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "snapshot_exporter",
		Name:      "last_height",
		Help:      "Last successfully exported snapshot height.",
	}, []string{"network"})

	exporterFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "snapshot_exporter",
		Name:      "flush_total",
		Help:      "Count of snapshot row flushes.",
	}, []string{"network", "status"})

	exporterFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "snapshot_exporter",
		Name:      "flush_rows",
		Help:      "Number of snapshot rows per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})
)

// SnapshotExporter tracks the snapshot exporter pipeline.
type SnapshotExporter struct {
	network model.Network
}

func NewSnapshotExporter(network model.Network) *SnapshotExporter {
	if network == "" {
		network = "unknown"
	}
	return &SnapshotExporter{network: network}
}

// ObserveHeight records building the view of one snapshot height.
func (m SnapshotExporter) ObserveHeight(err error, height int, started time.Time) {
	status := statusOf(err)
	exporterHeightTotal.WithLabelValues(string(m.network), status).Inc()
	exporterHeightDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		exporterLastHeight.WithLabelValues(string(m.network)).Set(float64(height))
	}
}

// ObserveFlush records a flush of snapshot rows.
func (m SnapshotExporter) ObserveFlush(err error, rows int) {
	exporterFlushTotal.WithLabelValues(string(m.network), statusOf(err)).Inc()
	exporterFlushSize.WithLabelValues(string(m.network)).Observe(float64(rows))
}
