package redis

import (
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	// DefaultConnectTimeout bounds the initial ping.
	DefaultConnectTimeout = 5 * time.Second
	// DefaultPoolSize is used when the config leaves PoolSize at zero.
	DefaultPoolSize = 10
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
	// Nil is returned by Get when the key does not exist.
	Nil = goredis.Nil
)
