package middleware

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/hyperstats"
	"github.com/hyp3rd/hyperstats/internal/telemetry/attrs"
	"github.com/hyp3rd/hyperstats/pkg/loader"
	"github.com/hyp3rd/hyperstats/pkg/observation"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

// OTelTracingMiddleware wraps hyperstats.Service methods with OpenTelemetry spans.
type OTelTracingMiddleware struct {
	next   hyperstats.Service
	tracer trace.Tracer
	// static attributes applied to all spans
	commonAttrs []attribute.KeyValue
}

// OTelTracingOption allows configuring the tracing middleware.
type OTelTracingOption func(*OTelTracingMiddleware)

// WithCommonAttributes sets attributes applied to all spans.
func WithCommonAttributes(attributes ...attribute.KeyValue) OTelTracingOption {
	return func(m *OTelTracingMiddleware) { m.commonAttrs = append(m.commonAttrs, attributes...) }
}

// NewOTelTracingMiddleware creates a tracing middleware.
func NewOTelTracingMiddleware(next hyperstats.Service, tracer trace.Tracer, opts ...OTelTracingOption) hyperstats.Service {
	mw := &OTelTracingMiddleware{next: next, tracer: tracer}
	for _, o := range opts {
		o(mw)
	}

	return mw
}

// Load implements Service.Load with tracing.
func (mw OTelTracingMiddleware) Load(ctx context.Context, path string) loader.Result {
	ctx, span := mw.startSpan(ctx, "hyperstats.Load", attribute.Int(attrs.AttrPathLength, len(path)))
	defer span.End()

	res := mw.next.Load(ctx, path)
	mw.endLoad(span, res)

	return res
}

// Parse implements Service.Parse with tracing.
func (mw OTelTracingMiddleware) Parse(ctx context.Context, r io.Reader) loader.Result {
	ctx, span := mw.startSpan(ctx, "hyperstats.Parse")
	defer span.End()

	res := mw.next.Parse(ctx, r)
	mw.endLoad(span, res)

	return res
}

// Compute implements Service.Compute with tracing.
func (mw OTelTracingMiddleware) Compute(ctx context.Context, set observation.Set) (*stats.Report, error) {
	ctx, span := mw.startSpan(ctx, "hyperstats.Compute", attribute.Int(attrs.AttrObservationsCount, set.Len()))
	defer span.End()

	rep, err := mw.next.Compute(ctx, set)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	span.SetAttributes(attribute.Bool(attrs.AttrReportAvailable, rep != nil))

	return rep, err
}

// GetStats returns stats.
func (mw OTelTracingMiddleware) GetStats() stats.Stats { return mw.next.GetStats() }

// Info returns the service setup.
func (mw OTelTracingMiddleware) Info(ctx context.Context) hyperstats.Info { return mw.next.Info(ctx) }

// Stop stops the service with a span.
func (mw OTelTracingMiddleware) Stop(ctx context.Context) error {
	ctx, span := mw.startSpan(ctx, "hyperstats.Stop")
	defer span.End()

	return mw.next.Stop(ctx)
}

// startSpan starts a span with common and provided attributes.
func (mw OTelTracingMiddleware) startSpan(ctx context.Context, name string, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := mw.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	if len(mw.commonAttrs) > 0 {
		span.SetAttributes(mw.commonAttrs...)
	}

	if len(attributes) > 0 {
		span.SetAttributes(attributes...)
	}

	return ctx, span
}

func (OTelTracingMiddleware) endLoad(span trace.Span, res loader.Result) {
	span.SetAttributes(
		attribute.String(attrs.AttrLoadReason, res.Reason().String()),
		attribute.Int(attrs.AttrObservationsCount, res.Set.Len()),
	)

	if !res.OK() {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Reason().String())
	}
}
