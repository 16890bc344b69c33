package dataflow

import "github.com/hupe1980/indexical"

type options struct {
	logger  *indexical.Logger
	metrics indexical.MetricsCollector
}

// Option configures Solve.
type Option func(*options)

// WithLogger sets the structured logger.
func WithLogger(l *indexical.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector sets the metrics collector.
func WithMetricsCollector(m indexical.MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}
