package middleware_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/longbridgeapp/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"github.com/hyp3rd/hyperstats"
	"github.com/hyp3rd/hyperstats/pkg/loader"
	"github.com/hyp3rd/hyperstats/pkg/middleware"
	"github.com/hyp3rd/hyperstats/pkg/observation"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}

	return false
}

func newService(t *testing.T) *hyperstats.HyperStats {
	t.Helper()

	hs, err := hyperstats.New(context.Background())
	assert.Nil(t, err)

	return hs
}

func TestLoggingMiddleware(t *testing.T) {
	ctx := context.Background()
	logger := &recordingLogger{}

	svc := hyperstats.ApplyMiddleware(newService(t), func(next hyperstats.Service) hyperstats.Service {
		return middleware.NewLoggingMiddleware(next, logger)
	})

	res := svc.Parse(ctx, strings.NewReader("1\nx\n"))
	assert.False(t, res.OK())

	rep, err := svc.Compute(ctx, observation.New(3, 1, 2))
	assert.Nil(t, err)
	assert.Equal(t, 2.0, rep.Median)

	res = svc.Load(ctx, "/does/not/exist")
	assert.Equal(t, loader.ReasonSourceNotFound, res.Reason())

	assert.True(t, logger.contains("Parse failed (non-numeric-token)"))
	assert.True(t, logger.contains("Compute method called with 3 observations"))
	assert.True(t, logger.contains("method Compute took"))
	assert.True(t, logger.contains("Load method called with path: /does/not/exist"))
	assert.True(t, logger.contains("Load failed (source-not-found)"))

	assert.Nil(t, svc.Stop(ctx))
	assert.True(t, logger.contains("Stop method invoked"))
}

func TestStatsCollectorMiddleware(t *testing.T) {
	ctx := context.Background()
	hs := newService(t)

	svc := hyperstats.ApplyMiddleware(hs, func(next hyperstats.Service) hyperstats.Service {
		return middleware.NewStatsCollectorMiddleware(next, hs.StatsCollector)
	})

	for range 3 {
		_, err := svc.Compute(ctx, observation.New(1, 2, 3))
		assert.Nil(t, err)
	}

	_ = svc.Parse(ctx, strings.NewReader("4\n5\n"))

	st := svc.GetStats()
	assert.Equal(t, 3, st["hyperstats_compute_count"].Count)
	assert.Equal(t, 3, st["hyperstats_compute_duration"].Count)
	assert.Equal(t, 1, st["hyperstats_parse_count"].Count)
	assert.Equal(t, 2.0, st[hyperstats.StatDatasetSize.String()].Max)
}

func TestOTelMiddlewares(t *testing.T) {
	ctx := context.Background()

	meter := noop.NewMeterProvider().Meter("hyperstats/test")
	tracer := trace.NewNoopTracerProvider().Tracer("hyperstats/test")

	svc := hyperstats.ApplyMiddleware(newService(t),
		func(next hyperstats.Service) hyperstats.Service {
			return middleware.NewOTelTracingMiddleware(next, tracer, middleware.WithCommonAttributes(
				attribute.String("component", "hyperstats"),
			))
		},
		func(next hyperstats.Service) hyperstats.Service {
			mw, err := middleware.NewOTelMetricsMiddleware(next, meter)
			assert.Nil(t, err)

			return mw
		},
	)

	res := svc.Parse(ctx, strings.NewReader("1\n2\n2\n"))
	assert.True(t, res.OK())

	rep, err := svc.Compute(ctx, res.Set)
	assert.Nil(t, err)
	assert.Equal(t, "2", rep.Mode.String())

	rep, err = svc.Compute(ctx, observation.New())
	assert.Nil(t, err)
	assert.True(t, rep == nil)

	res = svc.Load(ctx, "")
	assert.Equal(t, loader.ReasonSourceNotFound, res.Reason())

	assert.Equal(t, "none", svc.Info(ctx).Backend)
	assert.Nil(t, svc.Stop(ctx))
}
