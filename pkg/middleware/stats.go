// Package middleware provides various middleware implementations for the hyperstats service.
// This package includes stats middleware that collects and reports service operation statistics.
package middleware

import (
	"context"
	"io"
	"time"

	"github.com/hyp3rd/hyperstats"
	"github.com/hyp3rd/hyperstats/pkg/loader"
	"github.com/hyp3rd/hyperstats/pkg/observation"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

// StatsCollectorMiddleware is a middleware that collects stats. It can and should re-use the same stats collector as the service.
// Must implement the hyperstats.Service interface.
type StatsCollectorMiddleware struct {
	next           hyperstats.Service
	statsCollector stats.ICollector
}

// NewStatsCollectorMiddleware returns a new StatsCollectorMiddleware.
func NewStatsCollectorMiddleware(next hyperstats.Service, statsCollector stats.ICollector) hyperstats.Service {
	return &StatsCollectorMiddleware{next: next, statsCollector: statsCollector}
}

// Load collects stats for the Load method.
func (mw StatsCollectorMiddleware) Load(ctx context.Context, path string) loader.Result {
	start := time.Now()

	defer func() {
		mw.statsCollector.Timing("hyperstats_load_duration", time.Since(start))
		mw.statsCollector.Incr("hyperstats_load_count", 1)
	}()

	return mw.next.Load(ctx, path)
}

// Parse collects stats for the Parse method.
func (mw StatsCollectorMiddleware) Parse(ctx context.Context, r io.Reader) loader.Result {
	start := time.Now()

	defer func() {
		mw.statsCollector.Timing("hyperstats_parse_duration", time.Since(start))
		mw.statsCollector.Incr("hyperstats_parse_count", 1)
	}()

	return mw.next.Parse(ctx, r)
}

// Compute collects stats for the Compute method.
func (mw StatsCollectorMiddleware) Compute(ctx context.Context, set observation.Set) (*stats.Report, error) {
	start := time.Now()

	defer func() {
		mw.statsCollector.Timing("hyperstats_compute_duration", time.Since(start))
		mw.statsCollector.Incr("hyperstats_compute_count", 1)
	}()

	return mw.next.Compute(ctx, set)
}

// GetStats returns the stats of the service.
func (mw StatsCollectorMiddleware) GetStats() stats.Stats {
	return mw.next.GetStats()
}

// Info returns the service setup.
func (mw StatsCollectorMiddleware) Info(ctx context.Context) hyperstats.Info {
	return mw.next.Info(ctx)
}

// Stop collects the stats for Stop methods and stops the service.
func (mw StatsCollectorMiddleware) Stop(ctx context.Context) error {
	start := time.Now()

	defer func() {
		mw.statsCollector.Timing("hyperstats_stop_duration", time.Since(start))
		mw.statsCollector.Incr("hyperstats_stop_count", 1)
	}()

	return mw.next.Stop(ctx)
}
