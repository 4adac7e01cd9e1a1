package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	envelopeMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "envelope",
		Name:      "messages_total",
		Help:      "Count of framed envelopes by direction.",
	}, []string{"direction", "message", "status"})

	envelopeBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "envelope",
		Name:      "bytes_total",
		Help:      "Framed envelope bytes by direction.",
	}, []string{"direction", "message"})

	envelopeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "envelope",
		Name:      "duration_seconds",
		Help:      "Duration of writing or reading one envelope.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"direction", "status"})
)

// Envelope tracks framed envelope traffic.
type Envelope struct{}

func NewEnvelope() *Envelope {
	return &Envelope{}
}

func (m Envelope) ObserveWrite(message string, bytes int, err error, started time.Time) {
	observeEnvelope("write", message, bytes, err, started)
}

func (m Envelope) ObserveRead(message string, bytes int, err error, started time.Time) {
	observeEnvelope("read", message, bytes, err, started)
}

func observeEnvelope(direction, message string, bytes int, err error, started time.Time) {
	status := statusOf(err)
	envelopeMessagesTotal.WithLabelValues(direction, message, status).Inc()
	envelopeBytesTotal.WithLabelValues(direction, message).Add(float64(bytes))
	envelopeDuration.WithLabelValues(direction, status).Observe(time.Since(started).Seconds())
}
