package redis

import (
	"time"

	"pokedex-srv/internal/pokemon/repository"
	"pokedex-srv/pkg/log"
	pkgRedis "pokedex-srv/pkg/redis"
)

const defaultTTL = 5 * time.Minute

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory. A non-positive ttl falls back to five minutes.
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
