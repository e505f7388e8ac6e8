package hyperstats

import (
	"github.com/hyp3rd/hyperstats/pkg/backend"
)

// Option is a function type that can be used to configure the `HyperStats` struct.
type Option func(*HyperStats)

// ApplyOptions applies the given options to the given service.
func ApplyOptions(hs *HyperStats, options ...Option) {
	for _, option := range options {
		option(hs)
	}
}

// WithBackend is an option that sets the store computed reports are memoized in.
// Without it every Compute runs the engine.
func WithBackend(store backend.IBackend) Option {
	return func(hs *HyperStats) {
		hs.backend = store
	}
}

// WithStatsCollector is an option that sets the name of the stats collector, looked up in the default registry.
func WithStatsCollector(name string) Option {
	return func(hs *HyperStats) {
		hs.statsCollectorName = name
	}
}

// WithManagementHTTP starts the management HTTP server on addr when the service is created.
func WithManagementHTTP(addr string, opts ...ManagementHTTPOption) Option {
	return func(hs *HyperStats) {
		hs.mgmtAddr = addr
		hs.mgmtOpts = opts
	}
}
