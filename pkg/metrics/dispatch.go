package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DispatchMetrics records outcomes of outbound email dispatches.
type DispatchMetrics struct {
	duration  *prometheus.HistogramVec
	sent      *prometheus.CounterVec
	simulated *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

// NewDispatchMetrics registers the dispatch metrics on the provided registerer.
func NewDispatchMetrics(reg prometheus.Registerer) *DispatchMetrics {
	if reg == nil {
		return &DispatchMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dispatch_duration_seconds",
		Help:    "Duration of outbound email dispatches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
	sent := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_sent",
		Help: "Emails handed to the transport successfully.",
	}, []string{"kind"})
	simulated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_simulated",
		Help: "Dispatches logged instead of sent (no transport credential).",
	}, []string{"kind"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_failed",
		Help: "Dispatches rejected by the transport.",
	}, []string{"kind"})
	reg.MustRegister(duration, sent, simulated, failed)
	return &DispatchMetrics{
		duration:  duration,
		sent:      sent,
		simulated: simulated,
		failed:    failed,
	}
}

// ObserveDuration records the send duration for the named dispatch kind.
func (d *DispatchMetrics) ObserveDuration(kind string, duration time.Duration) {
	if d == nil || d.duration == nil {
		return
	}
	d.duration.WithLabelValues(normalizeLabel(kind)).Observe(duration.Seconds())
}

// IncSent increments the sent counter for the named dispatch kind.
func (d *DispatchMetrics) IncSent(kind string) {
	if d == nil || d.sent == nil {
		return
	}
	d.sent.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncSimulated increments the simulated counter for the named dispatch kind.
func (d *DispatchMetrics) IncSimulated(kind string) {
	if d == nil || d.simulated == nil {
		return
	}
	d.simulated.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncFailed increments the failure counter for the named dispatch kind.
func (d *DispatchMetrics) IncFailed(kind string) {
	if d == nil || d.failed == nil {
		return
	}
	d.failed.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(kind string) string {
	if kind == "" {
		return "unknown"
	}
	return kind
}
