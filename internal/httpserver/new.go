package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"pokedex-srv/config"
	pkgJWT "pokedex-srv/pkg/jwt"
	pkgKafka "pokedex-srv/pkg/kafka"
	"pokedex-srv/pkg/log"
	pkgRedis "pokedex-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// Cache & Messaging Configuration
	redisClient   pkgRedis.IRedis
	cacheTTL      time.Duration
	kafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	jwtManager   *pkgJWT.Manager
	cookieConfig config.CookieConfig
	corsOrigins  []string
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB *sql.DB

	// Cache & Messaging Configuration (optional)
	RedisClient   pkgRedis.IRedis
	CacheTTL      time.Duration
	KafkaProducer pkgKafka.IProducer

	// Authentication & Security Configuration
	JWTManager   *pkgJWT.Manager
	CookieConfig config.CookieConfig
	CORSOrigins  []string
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Database Configuration
		postgresDB: cfg.PostgresDB,

		// Cache & Messaging Configuration
		redisClient:   cfg.RedisClient,
		cacheTTL:      cfg.CacheTTL,
		kafkaProducer: cfg.KafkaProducer,

		// Authentication & Security Configuration
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		corsOrigins:  cfg.CORSOrigins,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Database Configuration
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}

	// Authentication & Security Configuration
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	// Redis and Kafka are optional: without them the detail cache and
	// catalog events are disabled.
	return nil
}
