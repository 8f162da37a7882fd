package http

import (
	"pokedex-srv/internal/middleware"
	"pokedex-srv/internal/pokemon"
	"pokedex-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc pokemon.UseCase
}

// New - Factory
func New(l log.Logger, uc pokemon.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
