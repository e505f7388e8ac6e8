// Package middleware provides various middleware implementations for the hyperstats service.
// This package includes logging middleware that wraps the hyperstats service to provide
// execution time logging and method call tracing for debugging and monitoring purposes.
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

// Logger describes a logging interface allowing to implement different external, or custom logger.
// Tested with logrus, but should work with any other logger that matches the interface.
type Logger interface {
	Printf(format string, v ...any)
}

// LoggingMiddleware is a middleware that logs the time it takes to execute the next middleware.
// Must implement the hyperstats.Service interface.
type LoggingMiddleware struct {
	next   hyperstats.Service
	logger Logger
}

// NewLoggingMiddleware returns a new LoggingMiddleware.
func NewLoggingMiddleware(next hyperstats.Service, logger Logger) hyperstats.Service {
	return &LoggingMiddleware{next: next, logger: logger}
}

// Load logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Load(ctx context.Context, path string) loader.Result {
	defer func(begin time.Time) {
		mw.logger.Printf("method Load took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Load method called with path: %s", path)

	res := mw.next.Load(ctx, path)
	if !res.OK() {
		mw.logger.Printf("Load failed (%s): %v", res.Reason(), res.Err)
	}

	return res
}

// Parse logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Parse(ctx context.Context, r io.Reader) loader.Result {
	defer func(begin time.Time) {
		mw.logger.Printf("method Parse took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Parse method called")

	res := mw.next.Parse(ctx, r)
	if !res.OK() {
		mw.logger.Printf("Parse failed (%s): %v", res.Reason(), res.Err)
	}

	return res
}

// Compute logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Compute(ctx context.Context, set observation.Set) (*stats.Report, error) {
	defer func(begin time.Time) {
		mw.logger.Printf("method Compute took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Compute method called with %d observations", set.Len())

	return mw.next.Compute(ctx, set)
}

// GetStats logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) GetStats() stats.Stats {
	defer func(begin time.Time) {
		mw.logger.Printf("method GetStats took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("GetStats method invoked")

	return mw.next.GetStats()
}

// Info returns the service setup.
func (mw LoggingMiddleware) Info(ctx context.Context) hyperstats.Info {
	return mw.next.Info(ctx)
}

// Stop logs the time it takes to execute the next middleware.
func (mw LoggingMiddleware) Stop(ctx context.Context) error {
	defer func(begin time.Time) {
		mw.logger.Printf("method Stop took: %s", time.Since(begin))
	}(time.Now())

	mw.logger.Printf("Stop method invoked")

	return mw.next.Stop(ctx)
}
