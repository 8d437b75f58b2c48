package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	assignmentPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "habit_service",
		Subsystem: "persistence",
		Name:      "last_assignment_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent daily assignment persisted to Postgres.",
	})
	completionPersistGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "habit_service",
		Subsystem: "persistence",
		Name:      "last_completion_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent habit completion persisted to Postgres.",
	})
	ephemeralFallbackCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "habit_service",
		Subsystem: "resolver",
		Name:      "ephemeral_fallbacks_total",
		Help:      "Number of unpersisted assignments served because the backing store was unreachable.",
	})
)

func init() {
	prometheus.MustRegister(assignmentPersistGauge, completionPersistGauge, ephemeralFallbackCounter)
}

// RecordAssignmentPersisted updates the persistence watermark gauge.
func RecordAssignmentPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	assignmentPersistGauge.Set(float64(ts.Unix()))
}

// RecordCompletionPersisted updates the completion watermark gauge.
func RecordCompletionPersisted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	completionPersistGauge.Set(float64(ts.Unix()))
}

// RecordEphemeralFallback counts an availability fallback to an unpersisted
// assignment.
func RecordEphemeralFallback() {
	ephemeralFallbackCounter.Inc()
}
