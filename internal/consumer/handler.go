package consumer

import (
	"context"
	"fmt"

	pokemonConsumer "pokedex-srv/internal/pokemon/delivery/kafka/consumer"
	pokemonPostgre "pokedex-srv/internal/pokemon/repository/postgre"
	pokemonRedis "pokedex-srv/internal/pokemon/repository/redis"
	pokemonUsecase "pokedex-srv/internal/pokemon/usecase"
)

type domainConsumers struct {
	pokemonConsumer pokemonConsumer.Consumer
}

func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	repo := pokemonPostgre.New(srv.postgresDB, srv.l)
	cacheRepo := pokemonRedis.New(srv.redisClient, srv.l, srv.cacheTTL)
	// Nothing is republished from here.
	uc := pokemonUsecase.New(repo, cacheRepo, nil, srv.l)

	cons, err := pokemonConsumer.New(pokemonConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     uc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokemon consumer: %w", err)
	}

	srv.l.Infof(ctx, "Pokemon domain initialized")
	return &domainConsumers{pokemonConsumer: cons}, nil
}

func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.pokemonConsumer.ConsumePokemonEvents(ctx); err != nil {
		return fmt.Errorf("failed to start pokemon consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.pokemonConsumer != nil {
		if err := consumers.pokemonConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing pokemon consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
