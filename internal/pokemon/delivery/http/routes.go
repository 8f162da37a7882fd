package http

import (
	"pokedex-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/pokemon")
	{
		api.GET("", h.List)
		api.GET("/:id", h.Detail)
		api.GET("/:id/moves", h.ListMoves)
		api.DELETE("/:id", mw.OptionalAuth(), h.Delete)
	}
}
