package hyperstats

import (
	"context"
	"io"

	"github.com/hyp3rd/hyperstats/pkg/loader"
	"github.com/hyp3rd/hyperstats/pkg/observation"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

// Info describes how a service is set up.
type Info struct {
	Backend        string `json:"backend"`
	StatsCollector string `json:"statsCollector"`
	StoredReports  int    `json:"storedReports"`
}

// Service is the service interface for HyperStats.
// It enables middleware to be added to the service.
type Service interface {
	// Load reads the dataset at path.
	Load(ctx context.Context, path string) loader.Result
	// Parse reads a dataset from r.
	Parse(ctx context.Context, r io.Reader) loader.Result
	// Compute returns the report of set, nil when set is empty.
	Compute(ctx context.Context, set observation.Set) (*stats.Report, error)
	// GetStats returns the stats the service collected about itself
	GetStats() stats.Stats
	// Info returns the service setup
	Info(ctx context.Context) Info
	// Stop releases the service resources
	Stop(ctx context.Context) error
}

// Middleware describes a service middleware.
type Middleware func(Service) Service

// ApplyMiddleware applies middlewares to a service.
func ApplyMiddleware(svc Service, mw ...Middleware) Service {
	for _, m := range mw {
		svc = m(svc)
	}

	return svc
}
