// Package metrics exposes application metrics collectors.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "burningman"

var (
	ledgerQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_store",
		Name:      "queries_total",
		Help:      "Count of ledger store queries and snapshot writes.",
	}, []string{"operation", "network", "status"})
	ledgerQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_store",
		Name:      "query_duration_seconds",
		Help:      "Duration of ledger store queries and snapshot writes.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation", "network"})
	ledgerLastSuccess = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "ledger_store",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful call per operation.",
	}, []string{"operation", "network"})
)

// ClickhouseRepository records ledger store calls made through the ClickHouse repository.
type ClickhouseRepository struct {
	now func() time.Time
}

// NewClickhouseRepository creates a ClickhouseRepository metrics collector.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{now: time.Now}
}

// Observe records the outcome of one repository operation. Only completed calls
// feed the latency histogram.
func (m *ClickhouseRepository) Observe(operation string, network model.Network, err error, started time.Time) {
	if network == "" {
		network = "unknown"
	}
	status := statusOf(err)
	ledgerQueriesTotal.WithLabelValues(operation, string(network), status).Inc()
	if status == statusCanceled {
		return
	}

	now := m.now()
	ledgerQueryDuration.WithLabelValues(operation, string(network)).Observe(now.Sub(started).Seconds())
	if err == nil {
		ledgerLastSuccess.WithLabelValues(operation, string(network)).Set(float64(now.Unix()))
	}
}

const (
	statusSuccess  = "success"
	statusError    = "error"
	statusCanceled = "canceled"
)

func statusOf(err error) string {
	switch {
	case err == nil:
		return statusSuccess
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return statusCanceled
	default:
		return statusError
	}
}
