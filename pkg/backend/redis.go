package backend

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/hyperstats/internal/constants"
	"github.com/hyp3rd/hyperstats/internal/libs/serializer"
	"github.com/hyp3rd/hyperstats/internal/sentinel"
	"github.com/hyp3rd/hyperstats/pkg/stats"
)

const (
	maxRetries   = 3
	retriesDelay = 100 * time.Millisecond
)

// Redis is a report store backed by a Redis server.
type Redis struct {
	rdb         *redis.Client          // redis client to interact with the redis server
	capacity    int                    // capacity of the store; Redis relies on ttl and its own eviction, so it is informative only
	keysSetName string                 // keysSetName is the name of the set that holds the stored keys, also used as key prefix
	ttl         time.Duration          // ttl of each stored report
	Serializer  serializer.ISerializer // Serializer is the serializer used to encode the reports
}

// NewRedisClient returns a client for addr tuned with the package defaults.
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  constants.RedisDialTimeout,
		ReadTimeout:  constants.RedisClientReadTimeout,
		WriteTimeout: constants.RedisClientWriteTimeout,
		MaxRetries:   constants.RedisClientMaxRetries,
		PoolSize:     constants.RedisClientPoolSize,
	})
}

// NewRedis creates a new redis report store with the given options.
func NewRedis(redisOptions ...Option[Redis]) (*Redis, error) {
	rb := &Redis{
		ttl: constants.RedisReportTTL,
	}

	ApplyOptions(rb, redisOptions...)

	if rb.rdb == nil {
		return nil, sentinel.ErrNilClient
	}

	if rb.capacity < 0 {
		return nil, sentinel.ErrInvalidCapacity
	}

	if rb.keysSetName == "" {
		rb.keysSetName = constants.RedisKeySetName
	}

	if rb.Serializer == nil {
		var err error

		rb.Serializer, err = serializer.New(serializer.Msgpack)
		if err != nil {
			return nil, err
		}
	}

	return rb, nil
}

// Capacity returns the configured capacity.
func (rb *Redis) Capacity() int {
	return rb.capacity
}

// Get retrieves the report stored under key.
func (rb *Redis) Get(ctx context.Context, key string) (*stats.Report, bool, error) {
	data, err := rb.rdb.Get(ctx, rb.redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, ewrap.Wrap(err, "redis get")
	}

	var rep stats.Report

	err = rb.Serializer.Unmarshal(data, &rep)
	if err != nil {
		return nil, false, err
	}

	return &rep, true, nil
}

// Set stores report under key and tracks the key in the keys set.
func (rb *Redis) Set(ctx context.Context, key string, report *stats.Report) error {
	if report == nil {
		return nil
	}

	data, err := rb.Serializer.Marshal(report)
	if err != nil {
		return err
	}

	redisKey := rb.redisKey(key)

	_, err = rb.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKey, data, rb.ttl)
		pipe.SAdd(ctx, rb.keysSetName, redisKey)

		return nil
	})
	if err != nil {
		return ewrap.Wrap(err, "redis set")
	}

	return nil
}

// Count returns the number of tracked keys.
func (rb *Redis) Count(ctx context.Context) int {
	count, err := rb.rdb.SCard(ctx, rb.keysSetName).Result()
	if err != nil {
		return 0
	}

	return int(count)
}

// Clear removes every tracked report and the keys set.
func (rb *Redis) Clear(ctx context.Context) error {
	keys, err := rb.rdb.SMembers(ctx, rb.keysSetName).Result()
	if err != nil {
		return ewrap.Wrap(err, "redis list keys", ewrap.WithRetry(maxRetries, retriesDelay))
	}

	keys = append(keys, rb.keysSetName)

	_, err = rb.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return ewrap.Wrap(err, "redis clear", ewrap.WithRetry(maxRetries, retriesDelay))
	}

	return nil
}

// Kind returns the backend type.
func (*Redis) Kind() string {
	return constants.RedisBackend
}

func (rb *Redis) redisKey(key string) string {
	return rb.keysSetName + ":" + key
}
