package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"pokedex-srv/pkg/log"
	"pokedex-srv/pkg/response"
)

// Recovery turns a handler panic into a generic 500 and logs the stack.
// The request id set by RequestID travels with the context.
func Recovery(l log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			l.Errorf(c.Request.Context(), "middleware.Recovery: %s %s panicked: %v\n%s",
				c.Request.Method, c.FullPath(), rec, debug.Stack())
			response.PanicError(c, rec)
			c.Abort()
		}()
		c.Next()
	}
}
