package backend

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hyp3rd/hyperstats/internal/libs/serializer"
)

// iConfigurableBackend is an interface that defines the methods that a backend should implement to be configurable.
type iConfigurableBackend interface {
	// setCapacity sets the capacity of the store.
	setCapacity(capacity int)
}

// setCapacity sets the `capacity` field of the `InMemory` backend.
func (inm *InMemory) setCapacity(capacity int) {
	inm.capacity = capacity
}

// setCapacity sets the `capacity` field of the `Redis` backend.
func (rb *Redis) setCapacity(capacity int) {
	rb.capacity = capacity
}

// Option is a function type that can be used to configure a backend.
type Option[T IBackendConstrain] func(*T)

// ApplyOptions applies the given options to the given backend.
func ApplyOptions[T IBackendConstrain](backend *T, options ...Option[T]) {
	for _, option := range options {
		option(backend)
	}
}

// WithCapacity is an option that sets the maximum number of stored reports; 0 means unbounded.
func WithCapacity[T IBackendConstrain](capacity int) Option[T] {
	return func(a *T) {
		if configurable, ok := any(a).(iConfigurableBackend); ok {
			configurable.setCapacity(capacity)
		}
	}
}

// WithEvictionAlgorithm is an option that sets the algorithm picking the report dropped when the store is full.
func WithEvictionAlgorithm(name string) Option[InMemory] {
	return func(backend *InMemory) {
		backend.algorithmName = name
	}
}

// WithRedisClient is an option that sets the redis client to use.
func WithRedisClient(client *redis.Client) Option[Redis] {
	return func(backend *Redis) {
		backend.rdb = client
	}
}

// WithKeysSetName is an option that sets the name of the set that holds the stored keys.
func WithKeysSetName(keysSetName string) Option[Redis] {
	return func(backend *Redis) {
		backend.keysSetName = keysSetName
	}
}

// WithTTL is an option that sets how long a report is kept in Redis; 0 keeps it forever.
func WithTTL(ttl time.Duration) Option[Redis] {
	return func(backend *Redis) {
		backend.ttl = ttl
	}
}

// WithSerializer is an option that sets the serializer used to encode stored reports.
//   - The default serializer is `serializer.MsgpackSerializer`.
//   - The `serializer.JSONSerializer` stores the reports as JSON.
func WithSerializer(ser serializer.ISerializer) Option[Redis] {
	return func(backend *Redis) {
		backend.Serializer = ser
	}
}
