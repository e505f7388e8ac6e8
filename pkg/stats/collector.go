package stats

import (
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hyperstats/internal/constants"
	"github.com/hyp3rd/hyperstats/internal/sentinel"
)

// Metric names a series of samples recorded by a collector.
type Metric string

// String returns the string representation of a Metric.
func (m Metric) String() string {
	return string(m)
}

// Summary describes the samples recorded for one metric.
type Summary struct {
	Count    int     `json:"count"`
	Sum      float64 `json:"sum"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// Stats maps metric names to their summaries.
type Stats map[string]*Summary

// ICollector is an interface that defines the methods that a stats collector should implement.
type ICollector interface {
	// Incr records a positive change of a counter.
	Incr(metric Metric, value float64)
	// Decr records a negative change of a counter.
	Decr(metric Metric, value float64)
	// Timing records the time it took for an event to occur.
	Timing(metric Metric, value time.Duration)
	// Gauge records the current value of a statistic.
	Gauge(metric Metric, value float64)
	// Histogram records one sample of a distribution.
	Histogram(metric Metric, value float64)
	// GetStats returns the collected statistics.
	GetStats() Stats
}

// CollectorRegistry manages stats collector constructors.
type CollectorRegistry struct {
	collectors map[string]func() (ICollector, error)
}

// NewCollectorRegistry creates a new collector registry with default collectors pre-registered.
func NewCollectorRegistry() *CollectorRegistry {
	registry := NewEmptyCollectorRegistry()

	registry.Register(constants.DefaultStatsCollector, func() (ICollector, error) {
		return NewHistogramStatsCollector(), nil
	})

	return registry
}

// NewEmptyCollectorRegistry creates a new collector registry without default collectors.
func NewEmptyCollectorRegistry() *CollectorRegistry {
	return &CollectorRegistry{
		collectors: make(map[string]func() (ICollector, error)),
	}
}

// Register registers a new stats collector with the given name.
func (r *CollectorRegistry) Register(name string, createFunc func() (ICollector, error)) {
	r.collectors[name] = createFunc
}

// NewCollector creates a new stats collector.
func (r *CollectorRegistry) NewCollector(statsCollectorName string) (ICollector, error) {
	if statsCollectorName == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "statsCollectorName")
	}

	createFunc, ok := r.collectors[statsCollectorName]
	if !ok {
		return nil, ewrap.Wrap(sentinel.ErrStatsCollectorNotFound, statsCollectorName)
	}

	return createFunc()
}

// NewCollector creates a new stats collector using a new registry instance with default collectors.
func NewCollector(statsCollectorName string) (ICollector, error) {
	return NewCollectorRegistry().NewCollector(statsCollectorName)
}
