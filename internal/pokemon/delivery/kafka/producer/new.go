package producer

import (
	"pokedex-srv/internal/pokemon"
	pkgKafka "pokedex-srv/pkg/kafka"
	"pokedex-srv/pkg/log"
)

type Producer interface {
	pokemon.Publisher
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates a new pokemon event producer
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
