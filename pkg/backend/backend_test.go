package backend

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/hyperstats/internal/libs/serializer"
	"github.com/hyp3rd/hyperstats/internal/sentinel"
	"github.com/hyp3rd/hyperstats/pkg/eviction"
	"github.com/hyp3rd/hyperstats/pkg/observation"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint(observation.New(1, 2, 3))
	b := Fingerprint(observation.New(1, 2, 3))
	c := Fingerprint(observation.New(3, 2, 1))
	d := Fingerprint(observation.New(1, 2))

	assert.Equal(t, a, b)
	assert.True(t, a != c)
	assert.True(t, a != d)
	assert.True(t, Fingerprint(observation.New()) != a)
}

func TestInMemory_GetSet(t *testing.T) {
	ctx := context.Background()

	store, err := NewInMemory()
	assert.Nil(t, err)

	_, ok, err := store.Get(ctx, "missing")
	assert.Nil(t, err)
	assert.False(t, ok)

	rep := stats.Compute(observation.New(1, 2, 2))
	err = store.Set(ctx, "k", rep)
	assert.Nil(t, err)

	got, ok, err := store.Get(ctx, "k")
	assert.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, *rep, *got)

	// stored copies are independent of the caller's report
	got.Count = 99
	again, _, _ := store.Get(ctx, "k")
	assert.Equal(t, 3, again.Count)

	assert.Equal(t, 1, store.Count(ctx))
	assert.Equal(t, "in-memory", store.Kind())
}

func TestInMemory_IgnoresNilReport(t *testing.T) {
	ctx := context.Background()

	store, err := NewInMemory()
	assert.Nil(t, err)

	err = store.Set(ctx, "empty", nil)
	assert.Nil(t, err)
	assert.Equal(t, 0, store.Count(ctx))
}

func TestInMemory_CapacityDropsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()

	store, err := NewInMemory(WithCapacity[InMemory](2))
	assert.Nil(t, err)
	assert.Equal(t, 2, store.Capacity())
	assert.Equal(t, eviction.LRU, store.EvictionAlgorithm())

	rep := stats.Compute(observation.New(1))
	_ = store.Set(ctx, "a", rep)
	_ = store.Set(ctx, "b", rep)
	_, _, _ = store.Get(ctx, "a") // "b" is now the least recently used
	_ = store.Set(ctx, "c", rep)

	_, okA, _ := store.Get(ctx, "a")
	_, okB, _ := store.Get(ctx, "b")
	_, okC, _ := store.Get(ctx, "c")

	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, 2, store.Count(ctx))

	err = store.Clear(ctx)
	assert.Nil(t, err)
	assert.Equal(t, 0, store.Count(ctx))

	// the store keeps evicting correctly after a clear
	_ = store.Set(ctx, "d", rep)
	_ = store.Set(ctx, "e", rep)
	_ = store.Set(ctx, "f", rep)
	assert.Equal(t, 2, store.Count(ctx))

	_, okD, _ := store.Get(ctx, "d")
	assert.False(t, okD)
}

func TestInMemory_FIFOIgnoresReads(t *testing.T) {
	ctx := context.Background()

	store, err := NewInMemory(WithCapacity[InMemory](2), WithEvictionAlgorithm(eviction.FIFO))
	assert.Nil(t, err)

	rep := stats.Compute(observation.New(1))
	_ = store.Set(ctx, "a", rep)
	_ = store.Set(ctx, "b", rep)
	_, _, _ = store.Get(ctx, "a")
	_ = store.Set(ctx, "a", rep) // overwrite keeps insertion order
	_ = store.Set(ctx, "c", rep)

	_, okA, _ := store.Get(ctx, "a")
	_, okB, _ := store.Get(ctx, "b")

	assert.False(t, okA)
	assert.True(t, okB)
}

func TestInMemory_UnknownEvictionAlgorithm(t *testing.T) {
	_, err := NewInMemory(WithEvictionAlgorithm("arc"))
	assert.True(t, errors.Is(err, sentinel.ErrAlgorithmNotFound))
}

func TestInMemory_InvalidCapacity(t *testing.T) {
	_, err := NewInMemory(WithCapacity[InMemory](-1))
	assert.True(t, errors.Is(err, sentinel.ErrInvalidCapacity))
}

func TestNewRedis_NilClient(t *testing.T) {
	_, err := NewRedis()
	assert.True(t, errors.Is(err, sentinel.ErrNilClient))
}

func TestRedis_GetSet(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	client := NewRedisClient(addr)

	defer client.Close()

	for _, name := range []string{serializer.Msgpack, serializer.JSON} {
		t.Run(name, func(t *testing.T) {
			ser, err := serializer.New(name)
			assert.Nil(t, err)

			store, err := NewRedis(
				WithRedisClient(client),
				WithKeysSetName("hyperstats-test-"+name),
				WithSerializer(ser),
			)
			assert.Nil(t, err)

			defer store.Clear(ctx)

			set := observation.New(2, 3, 2, 4, 3)
			rep := stats.Compute(set)
			key := Fingerprint(set)

			err = store.Set(ctx, key, rep)
			assert.Nil(t, err)

			got, ok, err := store.Get(ctx, key)
			assert.Nil(t, err)
			assert.True(t, ok)
			assert.Equal(t, *rep, *got)
			assert.Equal(t, 1, store.Count(ctx))

			_, ok, err = store.Get(ctx, "missing")
			assert.Nil(t, err)
			assert.False(t, ok)
		})
	}
}
