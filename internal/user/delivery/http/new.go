package http

import (
	"pokedex-srv/config"
	"pokedex-srv/internal/middleware"
	"pokedex-srv/internal/user"
	"pokedex-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l      log.Logger
	uc     user.UseCase
	cookie config.CookieConfig
}

// New - Factory
func New(l log.Logger, uc user.UseCase, cookie config.CookieConfig) Handler {
	return &handler{l: l, uc: uc, cookie: cookie}
}
