package redis

import goredis "github.com/redis/go-redis/v9"

// Config holds Redis connection settings. URL wins over the discrete fields.
type Config struct {
	URL      string
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

type redisImpl struct {
	client *goredis.Client
}
