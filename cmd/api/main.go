package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pokedex-srv/config"
	configKafka "pokedex-srv/config/kafka"
	configPostgre "pokedex-srv/config/postgre"
	configRedis "pokedex-srv/config/redis"
	_ "pokedex-srv/docs" // Import swagger docs
	"pokedex-srv/internal/httpserver"
	pkgJWT "pokedex-srv/pkg/jwt"
	pkgKafka "pokedex-srv/pkg/kafka"
	"pokedex-srv/pkg/log"
	pkgRedis "pokedex-srv/pkg/redis"
)

// @title       Pokedex API
// @description Cursor-paginated Pokémon catalog with admin-gated deletes.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name pokedex_auth_token
// @description Authentication token stored in HttpOnly cookie. Set by /auth/login.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Initialize PostgreSQL
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis (optional - detail cache is skipped without it)
	var redisClient pkgRedis.IRedis
	if client, err := configRedis.Connect(ctx, cfg.Redis); err != nil {
		logger.Warnf(ctx, "Redis unavailable, continuing without cache: %v", err)
	} else {
		redisClient = client
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 5. Initialize Kafka producer (optional)
	var kafkaProducer pkgKafka.IProducer
	if producer, err := configKafka.Connect(cfg.Kafka); err != nil {
		logger.Warnf(ctx, "Kafka unavailable, continuing without events: %v", err)
	} else if producer != nil {
		kafkaProducer = producer
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer initialized for topic %s", cfg.Kafka.Topic)
	}

	// 6. Initialize JWT Manager
	jwtManager, err := initializeJWTManager(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 7. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB: postgresDB,

		// Cache & Messaging Configuration
		RedisClient:   redisClient,
		CacheTTL:      time.Duration(cfg.Redis.CacheTTL) * time.Second,
		KafkaProducer: kafkaProducer,

		// Authentication & Security Configuration
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		CORSOrigins:  cfg.HTTPServer.CORSOrigins,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// Run blocks until SIGINT/SIGTERM and shuts down gracefully, so the
	// deferred disconnects above run on exit.
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeJWTManager initializes JWT manager with HS256 symmetric key
func initializeJWTManager(cfg *config.Config) (*pkgJWT.Manager, error) {
	return pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
}
