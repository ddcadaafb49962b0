package cache

import "time"

const (
	defaultCachePrefix           = "app"
	defaultCacheTTL              = 5 * time.Minute
	defaultMemoryCleanupInterval = 10 * time.Minute
)

// StoreConfig controls how a Store is constructed.
type StoreConfig struct {
	Driver Driver

	// DefaultTTL is used when a call provides ttl <= 0.
	DefaultTTL time.Duration

	// MemoryCleanupInterval controls in-process cache eviction.
	MemoryCleanupInterval time.Duration

	// Prefix is used by shared backends (e.g. redis keys).
	Prefix string

	// RedisClient is required when DriverRedis is used.
	RedisClient RedisClient

	// NATSKeyValue is required when DriverNATS is used.
	NATSKeyValue NATSKeyValue

	// NATSBucketTTL marks the KV bucket as carrying its own expiry, so values
	// are stored raw instead of wrapped in a TTL envelope.
	NATSBucketTTL bool

	// SQLDriverName and SQLDSN are required when DriverSQL is used.
	SQLDriverName string
	SQLDSN        string
	SQLTable      string

	// DynamoClient serves DriverDynamo. When nil, a client is built from
	// DynamoRegion and DynamoEndpoint.
	DynamoClient   DynamoAPI
	DynamoTable    string
	DynamoRegion   string
	DynamoEndpoint string

	// Notifier, when set, wraps the built store so backend failures are
	// contained and reported instead of surfaced to callers.
	Notifier FailureNotifier
}

func (c StoreConfig) withDefaults() StoreConfig {
	if c.Driver == "" {
		c.Driver = DriverMemory
	}
	if c.DefaultTTL <= 0 {
		c.DefaultTTL = defaultCacheTTL
	}
	if c.MemoryCleanupInterval <= 0 {
		c.MemoryCleanupInterval = defaultMemoryCleanupInterval
	}
	if c.Prefix == "" {
		c.Prefix = defaultCachePrefix
	}
	if c.SQLTable == "" {
		c.SQLTable = "cache_entries"
	}
	if c.DynamoTable == "" {
		c.DynamoTable = "cache_entries"
	}
	if c.DynamoRegion == "" {
		c.DynamoRegion = "us-east-1"
	}
	return c
}
