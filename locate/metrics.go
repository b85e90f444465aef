package locate

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives one observation per engine call.
// Implement this interface to integrate with a monitoring system.
type MetricsCollector interface {
	// RecordLocate is called after each call. length is the vectorized
	// length, matches the number of occurrences reported, err is nil if
	// the call succeeded.
	RecordLocate(mode Mode, length, matches int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

// RecordLocate implements MetricsCollector.
func (NoopMetricsCollector) RecordLocate(Mode, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	Calls      atomic.Int64
	Errors     atomic.Int64
	Elements   atomic.Int64
	Matches    atomic.Int64
	TotalNanos atomic.Int64
}

// RecordLocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLocate(_ Mode, length, matches int, duration time.Duration, err error) {
	b.Calls.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.Errors.Add(1)
		return
	}
	b.Elements.Add(int64(length))
	b.Matches.Add(int64(matches))
}
