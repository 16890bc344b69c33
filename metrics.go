package indexical

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    rows  prometheus.Counter
//	    solve prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRowMaterialized() {
//	    p.rows.Inc()
//	}
type MetricsCollector interface {
	// RecordDomainGrowth is called after a value is appended to a domain.
	// stale is true if the new length exceeds a capacity frozen into a set.
	RecordDomainGrowth(length int, stale bool)

	// RecordRowMaterialized is called when a matrix row is created.
	RecordRowMaterialized()

	// RecordSolve is called after each fixpoint solve.
	// iterations is the number of node visits, err is nil if successful.
	RecordSolve(nodes, iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDomainGrowth(int, bool)               {}
func (NoopMetricsCollector) RecordRowMaterialized()                     {}
func (NoopMetricsCollector) RecordSolve(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DomainInserts    atomic.Int64
	StaleInserts     atomic.Int64
	MaxDomainLen     atomic.Int64
	RowsMaterialized atomic.Int64
	SolveCount       atomic.Int64
	SolveErrors      atomic.Int64
	SolveIterations  atomic.Int64
	SolveTotalNanos  atomic.Int64
}

// RecordDomainGrowth implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDomainGrowth(length int, stale bool) {
	b.DomainInserts.Add(1)
	if stale {
		b.StaleInserts.Add(1)
	}
	for {
		cur := b.MaxDomainLen.Load()
		if int64(length) <= cur || b.MaxDomainLen.CompareAndSwap(cur, int64(length)) {
			return
		}
	}
}

// RecordRowMaterialized implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRowMaterialized() {
	b.RowsMaterialized.Add(1)
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(nodes, iterations int, duration time.Duration, err error) {
	b.SolveCount.Add(1)
	b.SolveIterations.Add(int64(iterations))
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SolveErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DomainInserts:    b.DomainInserts.Load(),
		StaleInserts:     b.StaleInserts.Load(),
		MaxDomainLen:     b.MaxDomainLen.Load(),
		RowsMaterialized: b.RowsMaterialized.Load(),
		SolveCount:       b.SolveCount.Load(),
		SolveErrors:      b.SolveErrors.Load(),
		SolveIterations:  b.SolveIterations.Load(),
		SolveAvgNanos:    b.getAvgSolveNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DomainInserts    int64
	StaleInserts     int64
	MaxDomainLen     int64
	RowsMaterialized int64
	SolveCount       int64
	SolveErrors      int64
	SolveIterations  int64
	SolveAvgNanos    int64
}
