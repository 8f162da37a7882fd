package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// DefaultCORSOrigins is used when no origins are configured: the local web client.
var DefaultCORSOrigins = []string{"http://localhost:3000"}

const corsMaxAge = 86400

type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// NewCORSConfig allows origins with credentials. A "*" entry allows any origin
// but turns credentials off, so the auth cookie is never sent cross-site.
func NewCORSConfig(origins []string) CORSConfig {
	if len(origins) == 0 {
		origins = DefaultCORSOrigins
	}
	return CORSConfig{
		AllowedOrigins:   origins,
		AllowCredentials: !slices.Contains(origins, "*"),
	}
}

// CORS wraps rs/cors as gin middleware. Preflight requests stop here.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", HeaderRequestID},
		ExposedHeaders:   []string{HeaderRequestID},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           corsMaxAge,
	})

	return func(ctx *gin.Context) {
		next := false
		c.ServeHTTP(ctx.Writer, ctx.Request, func(http.ResponseWriter, *http.Request) { next = true })
		if !next {
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
