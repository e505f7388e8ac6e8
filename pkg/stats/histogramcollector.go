package stats

import (
	"slices"
	"sync"
	"time"

	"github.com/hyp3rd/hyperstats/pkg/observation"
)

// HistogramStatsCollector keeps every sample it is given and summarizes them on demand.
// Timings are recorded in milliseconds.
type HistogramStatsCollector struct {
	mu    sync.RWMutex // mutex to protect concurrent access to the stats
	stats map[string][]float64
}

// NewHistogramStatsCollector creates a new histogram stats collector.
func NewHistogramStatsCollector() *HistogramStatsCollector {
	return &HistogramStatsCollector{
		stats: make(map[string][]float64),
	}
}

// Incr records a positive change of a counter.
func (c *HistogramStatsCollector) Incr(metric Metric, value float64) {
	c.record(metric, value)
}

// Decr records a negative change of a counter.
func (c *HistogramStatsCollector) Decr(metric Metric, value float64) {
	c.record(metric, -value)
}

// Timing records the time it took for an event to occur.
func (c *HistogramStatsCollector) Timing(metric Metric, value time.Duration) {
	c.record(metric, float64(value)/float64(time.Millisecond))
}

// Gauge records the current value of a statistic.
func (c *HistogramStatsCollector) Gauge(metric Metric, value float64) {
	c.record(metric, value)
}

// Histogram records one sample of a distribution.
func (c *HistogramStatsCollector) Histogram(metric Metric, value float64) {
	c.record(metric, value)
}

// Samples returns a copy of the samples recorded for metric, in recording order.
func (c *HistogramStatsCollector) Samples(metric Metric) []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.stats[metric.String()])
}

// GetStats summarizes every metric with the statistics engine.
func (c *HistogramStatsCollector) GetStats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := make(Stats, len(c.stats))
	for name, values := range c.stats {
		set := observation.New(values...)

		rep := Compute(set)
		if rep == nil {
			continue
		}

		stats[name] = &Summary{
			Count:    rep.Count,
			Sum:      sum(values),
			Min:      slices.Min(values),
			Max:      slices.Max(values),
			Mean:     rep.Mean,
			Median:   rep.Median,
			Variance: rep.Variance,
			StdDev:   rep.StdDev,
		}
	}

	return stats
}

func (c *HistogramStatsCollector) record(metric Metric, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats[metric.String()] = append(c.stats[metric.String()], value)
}

// sum returns the sum of a set of values.
func sum(values []float64) float64 {
	var total float64
	for _, value := range values {
		total += value
	}

	return total
}
