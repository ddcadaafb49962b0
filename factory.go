package cache

import "context"

// NewStore returns a concrete store for the requested driver.
// Caller is responsible for providing any driver-specific dependencies.
// When cfg.Notifier is set the store is wrapped so backend failures are
// contained and reported instead of returned.
// @group Constructors
//
// Example: select driver explicitly
//
//	ctx := context.Background()
//	store := cache.NewStore(ctx, cache.StoreConfig{
//		Driver: cache.DriverMemory,
//	})
//	fmt.Println(store.Driver()) // memory
func NewStore(ctx context.Context, cfg StoreConfig) Store {
	cfg = cfg.withDefaults()
	var store Store
	switch cfg.Driver {
	case DriverRedis:
		store = newRedisStore(cfg.RedisClient, cfg.DefaultTTL, cfg.Prefix)
	case DriverNATS:
		store = newNATSStore(cfg.NATSKeyValue, cfg.DefaultTTL, cfg.Prefix, cfg.NATSBucketTTL)
	case DriverSQL:
		sqlStore, err := newSQLStore(cfg)
		if err != nil {
			store = &errorStore{driver: DriverSQL, err: err}
		} else {
			store = sqlStore
		}
	case DriverDynamo:
		dynamoStore, err := newDynamoStore(ctx, cfg)
		if err != nil {
			store = &errorStore{driver: DriverDynamo, err: err}
		} else {
			store = dynamoStore
		}
	case DriverNull:
		store = newNullStore()
	default:
		store = newMemoryStore(cfg.DefaultTTL, cfg.MemoryCleanupInterval)
	}
	if cfg.Notifier != nil {
		// Notifier presence is the only failsafe precondition, so the wrap
		// cannot fail here.
		wrapped, err := NewFailsafeStore(store, FailsafeConfig{Notifier: cfg.Notifier})
		if err == nil {
			store = wrapped
		}
	}
	return store
}

// NewStoreWith builds a store using a driver and a set of functional options.
// Required data (e.g., Redis client) must be provided via options when needed.
// @group Constructors
//
// Example: redis store with failure containment
//
//	redisClient := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})
//	store := cache.NewStoreWith(ctx, cache.DriverRedis,
//		cache.WithRedisClient(redisClient),
//		cache.WithPrefix("app"),
//		cache.WithNotifier(cache.NewZapNotifier(logger)),
//	)
//	fmt.Println(store.Driver()) // redis
func NewStoreWith(ctx context.Context, driver Driver, opts ...StoreOption) Store {
	cfg := StoreConfig{Driver: driver}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return NewStore(ctx, cfg)
}

// NewMemoryStore is a convenience for an in-process store with optional overrides.
// @group Constructors
func NewMemoryStore(ctx context.Context, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverMemory, opts...)
}

// NewNullStore is a convenience for a store that never hits and never fails.
// @group Constructors
func NewNullStore(ctx context.Context, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverNull, opts...)
}

// NewRedisStore is a convenience for a redis-backed store. Redis client is required.
// @group Constructors
func NewRedisStore(ctx context.Context, client RedisClient, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverRedis, append([]StoreOption{WithRedisClient(client)}, opts...)...)
}

// NewNATSStore is a convenience for a NATS KeyValue-backed store.
// @group Constructors
func NewNATSStore(ctx context.Context, kv NATSKeyValue, bucketTTL bool, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverNATS, append([]StoreOption{WithNATSKeyValue(kv, bucketTTL)}, opts...)...)
}

// NewSQLStore is a convenience for a database-backed store.
// @group Constructors
func NewSQLStore(ctx context.Context, driverName, dsn, table string, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverSQL, append([]StoreOption{WithSQL(driverName, dsn, table)}, opts...)...)
}

// NewDynamoStore is a convenience for a DynamoDB-backed store.
// @group Constructors
func NewDynamoStore(ctx context.Context, client DynamoAPI, opts ...StoreOption) Store {
	return NewStoreWith(ctx, DriverDynamo, append([]StoreOption{WithDynamoClient(client)}, opts...)...)
}
