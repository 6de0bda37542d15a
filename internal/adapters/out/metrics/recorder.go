// Package metrics exports coordinator and audit measurements to Prometheus.
package metrics

import (
	"time"

	"dispatch/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dispatch"

// Recorder aggregates operation counts and durations, committed status
// changes and the latest audit result. It satisfies commands.Recorder and
// jobs.ViolationReporter.
type Recorder struct {
	operations  *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	transitions *prometheus.CounterVec
	violations  *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "coordinator",
			Name:      "operations_total",
			Help:      "Coordinator operations by outcome.",
		}, []string{"operation", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "coordinator",
			Name:      "operation_duration_seconds",
			Help:      "Coordinator operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Committed status writes by entity and new status.",
		}, []string{"entity", "status"}),
		violations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "invariant_violations",
			Help:      "Rows breaking a consistency rule at the last audit.",
		}, []string{"invariant"}),
	}

	for _, c := range []prometheus.Collector{r.operations, r.durations, r.transitions, r.violations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveOperation records one handler call.
func (r *Recorder) ObserveOperation(operation, outcome string, elapsed time.Duration) {
	if operation == "" {
		return
	}
	r.operations.WithLabelValues(operation, outcome).Inc()
	r.durations.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveStatusChanges counts the status writes of a committed transaction.
func (r *Recorder) ObserveStatusChanges(changes []ports.StatusChange) {
	for _, c := range changes {
		r.transitions.WithLabelValues(c.Entity, c.Status).Inc()
	}
}

// SetInvariantViolations publishes the number of violations found for one rule.
func (r *Recorder) SetInvariantViolations(invariant string, count int) {
	r.violations.WithLabelValues(invariant).Set(float64(count))
}
