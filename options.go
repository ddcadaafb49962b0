package cache

import "time"

// StoreOption mutates StoreConfig when constructing a store.
type StoreOption func(StoreConfig) StoreConfig

// WithDefaultTTL overrides the fallback TTL used when ttl <= 0.
func WithDefaultTTL(ttl time.Duration) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DefaultTTL = ttl
		return cfg
	}
}

// WithMemoryCleanupInterval overrides the sweep interval for the memory driver.
func WithMemoryCleanupInterval(interval time.Duration) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.MemoryCleanupInterval = interval
		return cfg
	}
}

// WithPrefix sets the key prefix for shared backends (e.g., redis).
func WithPrefix(prefix string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.Prefix = prefix
		return cfg
	}
}

// WithRedisClient sets the redis client; required when using DriverRedis.
func WithRedisClient(client RedisClient) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.RedisClient = client
		return cfg
	}
}

// WithNATSKeyValue sets the KV bucket; required when using DriverNATS.
// bucketTTL marks the bucket as enforcing its own expiry.
func WithNATSKeyValue(kv NATSKeyValue, bucketTTL bool) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.NATSKeyValue = kv
		cfg.NATSBucketTTL = bucketTTL
		return cfg
	}
}

// WithSQL sets the database driver, DSN and table; required when using DriverSQL.
func WithSQL(driverName, dsn, table string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.SQLDriverName = driverName
		cfg.SQLDSN = dsn
		cfg.SQLTable = table
		return cfg
	}
}

// WithDynamoClient sets the DynamoDB client used by DriverDynamo. Without it
// a client is built from the configured region and endpoint.
func WithDynamoClient(client DynamoAPI) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DynamoClient = client
		return cfg
	}
}

// WithDynamoTable overrides the DynamoDB table backing the cache.
func WithDynamoTable(table string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DynamoTable = table
		return cfg
	}
}

// WithDynamoEndpoint points the self-built DynamoDB client at a custom
// endpoint, e.g. dynamodb-local.
func WithDynamoEndpoint(endpoint, region string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DynamoEndpoint = endpoint
		cfg.DynamoRegion = region
		return cfg
	}
}

// WithNotifier wraps the built store in a failsafe decorator reporting to
// notifier, so backend failures degrade to misses and dropped writes.
func WithNotifier(notifier FailureNotifier) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.Notifier = notifier
		return cfg
	}
}
