package metrics

import (
	"time"

	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	candidateBuildTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "candidate_builder",
		Name:      "builds_total",
		Help:      "Count of candidate view builds.",
	}, []string{"network", "status"})

	candidateBuildDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "candidate_builder",
		Name:      "build_duration_seconds",
		Help:      "Duration of building a candidate view.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	candidateBuildSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "candidate_builder",
		Name:      "candidates",
		Help:      "Number of candidates in the last successful build.",
	}, []string{"network"})
)

// CandidateBuilder tracks candidate view builds.
type CandidateBuilder struct {
	network model.Network
}

func NewCandidateBuilder(network model.Network) *CandidateBuilder {
	if network == "" {
		network = "unknown"
	}
	return &CandidateBuilder{network: network}
}

// ObserveBuild records a build outcome, its duration and the candidate count.
func (m CandidateBuilder) ObserveBuild(err error, candidates int, started time.Time) {
	status := statusOf(err)
	candidateBuildTotal.WithLabelValues(string(m.network), status).Inc()
	candidateBuildDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		candidateBuildSize.WithLabelValues(string(m.network)).Set(float64(candidates))
	}
}
