// Package hyperstats computes descriptive statistics (count, mean, median, mode,
// standard deviation and variance) over datasets of one number per line.
//
// HyperStats ties the loader, the statistics engine and an optional report store
// together behind the Service interface, so middlewares can add logging, stats
// collection and OpenTelemetry instrumentation around it. A management HTTP server
// can expose the same operations over the network.
package hyperstats

import (
	"context"
	"io"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hyperstats/internal/constants"
	"github.com/hyp3rd/hyperstats/internal/sentinel"
	"github.com/hyp3rd/hyperstats/pkg/backend"
	"github.com/hyp3rd/hyperstats/pkg/loader"
	"github.com/hyp3rd/hyperstats/pkg/observation"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

const (
	// StatDatasetSize is the number of observations of every successful load.
	StatDatasetSize stats.Metric = "dataset_size"
	// StatLoadFailures counts loads that produced no observation set.
	StatLoadFailures stats.Metric = "load_failures"
	// StatStoreHits counts reports served from the backend.
	StatStoreHits stats.Metric = "store_hits"
	// StatStoreMisses counts reports computed because the backend had none.
	StatStoreMisses stats.Metric = "store_misses"
)

// HyperStats is the default Service implementation.
type HyperStats struct {
	backend            backend.IBackend
	statsCollectorName string
	// StatsCollector records the service's own metrics.
	StatsCollector stats.ICollector

	mgmtAddr string
	mgmtOpts []ManagementHTTPOption
	mgmtHTTP *ManagementHTTPServer
}

// New returns a HyperStats configured with opts.
func New(ctx context.Context, opts ...Option) (*HyperStats, error) {
	hs := &HyperStats{
		statsCollectorName: constants.DefaultStatsCollector,
	}

	ApplyOptions(hs, opts...)

	collector, err := stats.NewCollector(hs.statsCollectorName)
	if err != nil {
		return nil, err
	}

	hs.StatsCollector = collector

	if hs.mgmtAddr != "" {
		hs.mgmtHTTP = NewManagementHTTPServer(hs.mgmtAddr, hs.mgmtOpts...)

		err = hs.mgmtHTTP.Start(ctx, hs)
		if err != nil {
			return nil, err
		}
	}

	return hs, nil
}

// Load reads the dataset at path.
func (hs *HyperStats) Load(ctx context.Context, path string) loader.Result {
	return hs.observe(loader.Load(ctx, path))
}

// Parse reads a dataset from r.
func (hs *HyperStats) Parse(ctx context.Context, r io.Reader) loader.Result {
	return hs.observe(loader.ParseContext(ctx, r))
}

// Compute returns the report of set, served from the backend when it already holds one.
// It returns nil and no error when set is empty.
func (hs *HyperStats) Compute(ctx context.Context, set observation.Set) (*stats.Report, error) {
	if ctx.Err() != nil {
		return nil, ewrap.Wrap(sentinel.ErrTimeoutOrCanceled, ctx.Err().Error())
	}

	if set.IsEmpty() {
		return nil, nil //nolint:nilnil
	}

	if hs.backend == nil {
		return stats.Compute(set), nil
	}

	key := backend.Fingerprint(set)

	rep, ok, err := hs.backend.Get(ctx, key)
	if err != nil {
		return nil, ewrap.Wrap(err, "lookup report")
	}

	if ok {
		hs.StatsCollector.Incr(StatStoreHits, 1)

		return rep, nil
	}

	hs.StatsCollector.Incr(StatStoreMisses, 1)

	rep = stats.Compute(set)

	err = hs.backend.Set(ctx, key, rep)
	if err != nil {
		return nil, ewrap.Wrap(err, "store report")
	}

	return rep, nil
}

// GetStats returns the stats collected by the service.
func (hs *HyperStats) GetStats() stats.Stats {
	return hs.StatsCollector.GetStats()
}

// Info returns the service setup.
func (hs *HyperStats) Info(ctx context.Context) Info {
	info := Info{
		Backend:        constants.NoBackend,
		StatsCollector: hs.statsCollectorName,
	}

	if hs.backend != nil {
		info.Backend = hs.backend.Kind()
		info.StoredReports = hs.backend.Count(ctx)
	}

	return info
}

// ManagementHTTPAddress returns the bound management address, empty when the server is not running.
func (hs *HyperStats) ManagementHTTPAddress() string {
	if hs.mgmtHTTP == nil {
		return ""
	}

	return hs.mgmtHTTP.Address()
}

// Stop shuts the management server down, if any.
func (hs *HyperStats) Stop(ctx context.Context) error {
	if hs.mgmtHTTP == nil {
		return nil
	}

	return hs.mgmtHTTP.Shutdown(ctx)
}

func (hs *HyperStats) observe(res loader.Result) loader.Result {
	if res.OK() {
		hs.StatsCollector.Histogram(StatDatasetSize, float64(res.Set.Len()))
	} else {
		hs.StatsCollector.Incr(StatLoadFailures, 1)
	}

	return res
}
