package hyperstats_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/hyperstats"
	"github.com/hyp3rd/hyperstats/internal/sentinel"
	"github.com/hyp3rd/hyperstats/pkg/backend"
	"github.com/hyp3rd/hyperstats/pkg/loader"
	"github.com/hyp3rd/hyperstats/pkg/observation"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

func TestHyperStats_LoadAndCompute(t *testing.T) {
	ctx := context.Background()

	hs, err := hyperstats.New(ctx)
	assert.Nil(t, err)

	defer hs.Stop(ctx)

	path := filepath.Join(t.TempDir(), "data.txt")
	err = os.WriteFile(path, []byte("1\n2\n2\n3\n4\n"), 0o600)
	assert.Nil(t, err)

	res := hs.Load(ctx, path)
	assert.True(t, res.OK())
	assert.Equal(t, 5, res.Set.Len())

	rep, err := hs.Compute(ctx, res.Set)
	assert.Nil(t, err)
	assert.Equal(t, 5, rep.Count)
	assert.Equal(t, 2.4, rep.Mean)
	assert.Equal(t, 2.0, rep.Median)
	assert.Equal(t, "2", rep.Mode.String())

	res = hs.Load(ctx, filepath.Join(t.TempDir(), "missing.txt"))
	assert.False(t, res.OK())
	assert.Equal(t, loader.ReasonSourceNotFound, res.Reason())

	st := hs.GetStats()
	assert.Equal(t, 1, st[hyperstats.StatDatasetSize.String()].Count)
	assert.Equal(t, 5.0, st[hyperstats.StatDatasetSize.String()].Max)
	assert.Equal(t, 1, st[hyperstats.StatLoadFailures.String()].Count)
}

func TestHyperStats_ParseRejectsBadToken(t *testing.T) {
	ctx := context.Background()

	hs, err := hyperstats.New(ctx)
	assert.Nil(t, err)

	res := hs.Parse(ctx, strings.NewReader("1\nabc\n"))
	assert.False(t, res.OK())
	assert.Equal(t, loader.ReasonNonNumericToken, res.Reason())
	assert.True(t, res.Set.IsEmpty())
}

func TestHyperStats_ComputeEmpty(t *testing.T) {
	ctx := context.Background()

	hs, err := hyperstats.New(ctx)
	assert.Nil(t, err)

	rep, err := hs.Compute(ctx, observation.New())
	assert.Nil(t, err)
	assert.True(t, rep == nil)
}

func TestHyperStats_ComputeCanceled(t *testing.T) {
	hs, err := hyperstats.New(context.Background())
	assert.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = hs.Compute(ctx, observation.New(1, 2))
	assert.True(t, errors.Is(err, sentinel.ErrTimeoutOrCanceled))
}

func TestHyperStats_BackendMemoizes(t *testing.T) {
	ctx := context.Background()

	store, err := backend.NewInMemory()
	assert.Nil(t, err)

	hs, err := hyperstats.New(ctx, hyperstats.WithBackend(store))
	assert.Nil(t, err)

	set := observation.New(4, 1, 3, 2)

	first, err := hs.Compute(ctx, set)
	assert.Nil(t, err)

	second, err := hs.Compute(ctx, observation.New(set.Values()...))
	assert.Nil(t, err)

	assert.Equal(t, *first, *second)
	assert.Equal(t, 1, store.Count(ctx))

	st := hs.GetStats()
	assert.Equal(t, 1, st[hyperstats.StatStoreMisses.String()].Count)
	assert.Equal(t, 1, st[hyperstats.StatStoreHits.String()].Count)

	info := hs.Info(ctx)
	assert.Equal(t, "in-memory", info.Backend)
	assert.Equal(t, "default", info.StatsCollector)
	assert.Equal(t, 1, info.StoredReports)
}

func TestHyperStats_InfoWithoutBackend(t *testing.T) {
	ctx := context.Background()

	hs, err := hyperstats.New(ctx)
	assert.Nil(t, err)

	info := hs.Info(ctx)
	assert.Equal(t, "none", info.Backend)
	assert.Equal(t, 0, info.StoredReports)
	assert.Equal(t, "", hs.ManagementHTTPAddress())
}

func TestHyperStats_UnknownStatsCollector(t *testing.T) {
	_, err := hyperstats.New(context.Background(), hyperstats.WithStatsCollector("prometheus"))
	assert.True(t, errors.Is(err, sentinel.ErrStatsCollectorNotFound))
}

type countingService struct {
	hyperstats.Service

	computed int
}

func (s *countingService) Compute(ctx context.Context, set observation.Set) (*stats.Report, error) {
	s.computed++

	return s.Service.Compute(ctx, set)
}

func TestApplyMiddleware_Order(t *testing.T) {
	ctx := context.Background()

	hs, err := hyperstats.New(ctx)
	assert.Nil(t, err)

	var inner, outer *countingService

	svc := hyperstats.ApplyMiddleware(hs,
		func(next hyperstats.Service) hyperstats.Service {
			inner = &countingService{Service: next}

			return inner
		},
		func(next hyperstats.Service) hyperstats.Service {
			outer = &countingService{Service: next}

			return outer
		},
	)

	assert.True(t, svc == hyperstats.Service(outer))

	_, err = svc.Compute(ctx, observation.New(1))
	assert.Nil(t, err)
	assert.Equal(t, 1, inner.computed)
	assert.Equal(t, 1, outer.computed)
}
