package consumer

import (
	"context"
	"database/sql"
	"time"

	"pokedex-srv/config"
	"pokedex-srv/pkg/log"
	pkgRedis "pokedex-srv/pkg/redis"
)

// ConsumerServer runs the catalog event consumers
type ConsumerServer struct {
	l           log.Logger
	kafkaConfig config.KafkaConfig
	cacheTTL    time.Duration

	redisClient pkgRedis.IRedis
	postgresDB  *sql.DB
}

// Config holds all dependencies for the consumer server
type Config struct {
	Logger      log.Logger
	KafkaConfig config.KafkaConfig
	CacheTTL    time.Duration

	RedisClient pkgRedis.IRedis
	PostgresDB  *sql.DB
}

// Run starts the consumers and blocks until ctx is cancelled.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	if err := srv.startConsumers(ctx, consumers); err != nil {
		srv.l.Errorf(ctx, "Failed to start consumers: %v", err)
		srv.stopConsumers(ctx, consumers)
		return err
	}

	srv.l.Info(ctx, "Consumer Server is running")

	<-ctx.Done()
	srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")

	srv.stopConsumers(context.WithoutCancel(ctx), consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return nil
}
