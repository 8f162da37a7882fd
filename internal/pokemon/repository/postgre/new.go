package postgre

import (
	"database/sql"

	"pokedex-srv/internal/pokemon/repository"
	"pokedex-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

func New(db *sql.DB, l log.Logger) repository.PostgresRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
