package cache

import "github.com/cachekit/cache/cachecore"

// Store re-exports the backend contract for root-package callers.
type Store = cachecore.Store

// Driver identifies cache backend.
type Driver = cachecore.Driver

const (
	DriverNull   = cachecore.DriverNull
	DriverMemory = cachecore.DriverMemory
	DriverRedis  = cachecore.DriverRedis
	DriverNATS   = cachecore.DriverNATS
	DriverSQL    = cachecore.DriverSQL
	DriverDynamo = cachecore.DriverDynamo
)
