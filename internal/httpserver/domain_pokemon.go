package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pokedex-srv/internal/middleware"
	"pokedex-srv/internal/pokemon"
	pokemonHTTP "pokedex-srv/internal/pokemon/delivery/http"
	pokemonProducer "pokedex-srv/internal/pokemon/delivery/kafka/producer"
	"pokedex-srv/internal/pokemon/repository"
	pokemonPostgre "pokedex-srv/internal/pokemon/repository/postgre"
	pokemonRedis "pokedex-srv/internal/pokemon/repository/redis"
	pokemonUsecase "pokedex-srv/internal/pokemon/usecase"
)

func (srv HTTPServer) setupPokemonDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := pokemonPostgre.New(srv.postgresDB, srv.l)

	var cacheRepo repository.CacheRepository
	if srv.redisClient != nil {
		cacheRepo = pokemonRedis.New(srv.redisClient, srv.l, srv.cacheTTL)
	} else {
		srv.l.Warnf(ctx, "Redis not configured, pokemon detail cache disabled")
	}

	var publisher pokemon.Publisher
	if srv.kafkaProducer != nil {
		publisher = pokemonProducer.New(srv.l, srv.kafkaProducer)
	} else {
		srv.l.Infof(ctx, "Kafka not configured, pokemon events disabled")
	}

	uc := pokemonUsecase.New(repo, cacheRepo, publisher, srv.l)

	handler := pokemonHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Pokemon domain registered")
	return nil
}
