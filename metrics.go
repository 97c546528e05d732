package annealgo

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/annealgo/anneal"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring systems
// like Prometheus. Collection happens at stage boundaries only, never
// inside the sweep hot loop.
type MetricsCollector interface {
	// RecordPreAnneal is called after the classical pre-annealing stage.
	RecordPreAnneal(stats anneal.Stats, duration time.Duration, err error)

	// RecordQuantum is called after the quantum Monte Carlo stage.
	RecordQuantum(stats anneal.Stats, duration time.Duration, err error)

	// RecordMinimize is called after each end-to-end simulation,
	// successful or not.
	RecordMinimize(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPreAnneal(anneal.Stats, time.Duration, error) {}
func (NoopMetricsCollector) RecordQuantum(anneal.Stats, time.Duration, error)   {}
func (NoopMetricsCollector) RecordMinimize(time.Duration, error)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PreAnnealCount     atomic.Int64
	PreAnnealAccepted  atomic.Int64
	PreAnnealRejected  atomic.Int64
	QuantumCount       atomic.Int64
	QuantumAccepted    atomic.Int64
	QuantumRejected    atomic.Int64
	MinimizeCount      atomic.Int64
	MinimizeErrors     atomic.Int64
	MinimizeTotalNanos atomic.Int64
}

// RecordPreAnneal implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPreAnneal(stats anneal.Stats, duration time.Duration, err error) {
	b.PreAnnealCount.Add(1)
	b.PreAnnealAccepted.Add(stats.Accepted)
	b.PreAnnealRejected.Add(stats.Rejected)
}

// RecordQuantum implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuantum(stats anneal.Stats, duration time.Duration, err error) {
	b.QuantumCount.Add(1)
	b.QuantumAccepted.Add(stats.Accepted)
	b.QuantumRejected.Add(stats.Rejected)
}

// RecordMinimize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMinimize(duration time.Duration, err error) {
	b.MinimizeCount.Add(1)
	b.MinimizeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MinimizeErrors.Add(1)
	}
}
