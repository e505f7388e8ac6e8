// Package constants defines default configuration values for the hyperstats system.
// It provides the standard output destination, report formats, label languages,
// backend types and Redis client tuning used when no option overrides them.
package constants

import "time"

const (
	// DefaultOutputPath is the file the CLI persists the rendered report to.
	DefaultOutputPath = "statistics_results.txt"
	// DisabledOutputPath turns off report persistence when passed as the output path.
	DisabledOutputPath = "-"
	// DefaultFormat is the report rendering used when none is requested.
	DefaultFormat = "text"
	// DefaultLanguage selects the label set of the text report.
	DefaultLanguage = "en"
	// DefaultStatsCollector is the name of the stats collector registered out of the box.
	DefaultStatsCollector = "default"
	// DefaultMgmtAddr is the listen address of `hyperstats serve`.
	DefaultMgmtAddr = ":8080"
	// DefaultMgmtReadTimeout bounds reading one management API request.
	DefaultMgmtReadTimeout = 5 * time.Second
	// DefaultMgmtWriteTimeout bounds writing one management API response.
	DefaultMgmtWriteTimeout = 5 * time.Second
	// DefaultEvictionAlgorithm picks the report a full in-memory store drops.
	DefaultEvictionAlgorithm = "lru"
	// InMemoryBackend is the in-memory report store type.
	InMemoryBackend = "in-memory"
	// RedisBackend is the Redis report store type.
	RedisBackend = "redis"
	// NoBackend means reports are computed on every call and never memoized.
	NoBackend = "none"
)

const (
	// RedisKeySetName is the name of the Redis set tracking stored report keys.
	RedisKeySetName = "hyperstats"
	// RedisDialTimeout is the timeout for the Redis dialer.
	RedisDialTimeout = 10 * time.Second
	// RedisClientMaxRetries is the maximum number of retries for the Redis client.
	RedisClientMaxRetries = 10
	// RedisClientReadTimeout is the read timeout for the Redis client.
	RedisClientReadTimeout = 30 * time.Second
	// RedisClientWriteTimeout is the write timeout for the Redis client.
	RedisClientWriteTimeout = 30 * time.Second
	// RedisClientPoolSize is the pool size for the Redis client.
	RedisClientPoolSize = 20
	// RedisReportTTL bounds how long a memoized report is kept in Redis.
	RedisReportTTL = 24 * time.Hour
)
