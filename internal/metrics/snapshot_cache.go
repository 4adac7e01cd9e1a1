package metrics

import (
	"github.com/goodnatureofminers/burningman/internal/burningman/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var snapshotCacheEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "snapshot_cache",
	Name:      "events_total",
	Help:      "Count of current height cache hits, misses and invalidations.",
}, []string{"network", "event"})

// SnapshotCache tracks the current height view cache.
type SnapshotCache struct {
	network model.Network
}

func NewSnapshotCache(network model.Network) *SnapshotCache {
	if network == "" {
		network = "unknown"
	}
	return &SnapshotCache{network: network}
}

func (m SnapshotCache) ObserveHit() {
	snapshotCacheEventsTotal.WithLabelValues(string(m.network), "hit").Inc()
}

func (m SnapshotCache) ObserveMiss() {
	snapshotCacheEventsTotal.WithLabelValues(string(m.network), "miss").Inc()
}

func (m SnapshotCache) ObserveInvalidate() {
	snapshotCacheEventsTotal.WithLabelValues(string(m.network), "invalidate").Inc()
}
