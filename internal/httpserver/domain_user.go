package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"pokedex-srv/internal/middleware"
	userHTTP "pokedex-srv/internal/user/delivery/http"
	userPostgre "pokedex-srv/internal/user/repository/postgre"
	userUsecase "pokedex-srv/internal/user/usecase"
	"pokedex-srv/pkg/encrypter"
)

func (srv HTTPServer) setupUserDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := userPostgre.New(srv.postgresDB, srv.l)
	uc := userUsecase.New(repo, srv.jwtManager, encrypter.New(encrypter.DefaultCost), srv.l)

	handler := userHTTP.New(srv.l, uc, srv.cookieConfig)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
