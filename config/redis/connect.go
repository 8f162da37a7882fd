package redis

import (
	"context"
	"fmt"
	"sync"

	"pokedex-srv/config"
	"pokedex-srv/pkg/redis"
)

var (
	mu       sync.Mutex
	instance redis.IRedis
)

// Connect returns the process-wide Redis client, connecting on first use.
// A failed attempt leaves nothing cached, so the next call retries.
func Connect(ctx context.Context, cfg config.RedisConfig) (redis.IRedis, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := redis.New(ctx, redis.Config{
		URL:      cfg.URL,
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis client: %w", err)
	}

	instance = client
	return instance, nil
}

// Disconnect closes the client opened by Connect.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
