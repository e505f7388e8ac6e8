package middleware

import (
	"context"
	"io"
	"time"

	"github.com/hyp3rd/ewrap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/hyp3rd/hyperstats"
	"github.com/hyp3rd/hyperstats/internal/telemetry/attrs"
	"github.com/hyp3rd/hyperstats/pkg/loader"
	"github.com/hyp3rd/hyperstats/pkg/observation"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

// OTelMetricsMiddleware emits OpenTelemetry metrics for service methods.
type OTelMetricsMiddleware struct {
	next  hyperstats.Service
	meter metric.Meter

	// instruments
	calls     metric.Int64Counter
	durations metric.Float64Histogram
}

// NewOTelMetricsMiddleware constructs a metrics middleware using the provided meter.
func NewOTelMetricsMiddleware(next hyperstats.Service, meter metric.Meter) (hyperstats.Service, error) {
	calls, err := meter.Int64Counter("hyperstats.calls")
	if err != nil {
		return nil, ewrap.Wrap(err, "create counter")
	}

	durations, err := meter.Float64Histogram("hyperstats.duration.ms")
	if err != nil {
		return nil, ewrap.Wrap(err, "create histogram")
	}

	return &OTelMetricsMiddleware{next: next, meter: meter, calls: calls, durations: durations}, nil
}

// Load implements Service.Load with metrics.
func (mw *OTelMetricsMiddleware) Load(ctx context.Context, path string) loader.Result {
	start := time.Now()
	res := mw.next.Load(ctx, path)
	mw.rec(ctx, "Load", start,
		attribute.Int(attrs.AttrPathLength, len(path)),
		attribute.String(attrs.AttrLoadReason, res.Reason().String()),
		attribute.Int(attrs.AttrObservationsCount, res.Set.Len()))

	return res
}

// Parse implements Service.Parse with metrics.
func (mw *OTelMetricsMiddleware) Parse(ctx context.Context, r io.Reader) loader.Result {
	start := time.Now()
	res := mw.next.Parse(ctx, r)
	mw.rec(ctx, "Parse", start,
		attribute.String(attrs.AttrLoadReason, res.Reason().String()),
		attribute.Int(attrs.AttrObservationsCount, res.Set.Len()))

	return res
}

// Compute implements Service.Compute with metrics.
func (mw *OTelMetricsMiddleware) Compute(ctx context.Context, set observation.Set) (*stats.Report, error) {
	start := time.Now()
	rep, err := mw.next.Compute(ctx, set)
	mw.rec(ctx, "Compute", start,
		attribute.Int(attrs.AttrObservationsCount, set.Len()),
		attribute.Bool(attrs.AttrReportAvailable, rep != nil))

	return rep, err
}

// GetStats returns stats.
func (mw *OTelMetricsMiddleware) GetStats() stats.Stats { return mw.next.GetStats() }

// Info returns the service setup.
func (mw *OTelMetricsMiddleware) Info(ctx context.Context) hyperstats.Info { return mw.next.Info(ctx) }

// Stop stops the underlying service.
func (mw *OTelMetricsMiddleware) Stop(ctx context.Context) error { return mw.next.Stop(ctx) }

// rec records call count and duration with attributes.
func (mw *OTelMetricsMiddleware) rec(ctx context.Context, method string, start time.Time, attributes ...attribute.KeyValue) {
	base := []attribute.KeyValue{attribute.String(attrs.AttrMethod, method)}
	if len(attributes) > 0 {
		base = append(base, attributes...)
	}

	mw.calls.Add(ctx, 1, metric.WithAttributes(base...))
	mw.durations.Record(ctx, float64(time.Since(start).Milliseconds()), metric.WithAttributes(base...))
}
