package httpserver

import (
	"context"
	"fmt"

	"pokedex-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	root := srv.gin.Group("")
	if err := srv.setupPokemonDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup pokemon domain: %w", err)
	}
	if err := srv.setupUserDomain(ctx, root, mw); err != nil {
		return fmt.Errorf("failed to setup user domain: %w", err)
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.RequestID())
	srv.gin.Use(middleware.Recovery(srv.l))

	corsConfig := middleware.NewCORSConfig(srv.corsOrigins)
	srv.gin.Use(middleware.CORS(corsConfig))

	srv.l.Infof(context.Background(), "CORS allowed origins: %v (credentials: %t)", corsConfig.AllowedOrigins, corsConfig.AllowCredentials)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
