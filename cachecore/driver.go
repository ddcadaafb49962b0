package cachecore

// Driver identifies cache backend.
type Driver string

const (
	DriverNull   Driver = "null"
	DriverMemory Driver = "memory"
	DriverRedis  Driver = "redis"
	DriverNATS   Driver = "nats"
	DriverSQL    Driver = "sql"
	DriverDynamo Driver = "dynamodb"
)
