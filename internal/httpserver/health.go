package httpserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"pokedex-srv/pkg/response"
)

const (
	ServiceName    = "pokedex-srv"
	ServiceVersion = "1.0.0"

	pingTimeout = 2 * time.Second

	statusUp       = "up"
	statusDown     = "down"
	statusDisabled = "disabled"
)

// dependency is a backing service pinged by /ready. Optional ones report
// their state but never fail readiness.
type dependency struct {
	name     string
	required bool
	ping     func(ctx context.Context) error
}

func (srv HTTPServer) dependencies() []dependency {
	deps := []dependency{{name: "postgres", required: true, ping: srv.postgresDB.PingContext}}
	if srv.redisClient != nil {
		deps = append(deps, dependency{name: "redis", ping: srv.redisClient.Ping})
	}
	return deps
}

// checkDependencies pings every dependency concurrently and reports whether
// all required ones answered.
func checkDependencies(ctx context.Context, deps []dependency) (map[string]string, bool) {
	var (
		mu     sync.Mutex
		status = map[string]string{"redis": statusDisabled}
		ready  = true
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, d := range deps {
		g.Go(func() error {
			pctx, cancel := context.WithTimeout(gctx, pingTimeout)
			defer cancel()
			err := d.ping(pctx)

			mu.Lock()
			defer mu.Unlock()
			status[d.name] = statusUp
			if err != nil {
				status[d.name] = statusDown
				if d.required {
					ready = false
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	return status, ready
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "healthy", "service": ServiceName, "version": ServiceVersion})
}

// readyCheck reports whether Postgres (and Redis, when configured) answer.
// @Summary Readiness Check
// @Description Check if the API and its dependencies are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A required dependency is down"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	deps, ready := checkDependencies(ctx, srv.dependencies())

	body := gin.H{"service": ServiceName, "version": ServiceVersion, "dependencies": deps}
	if !ready {
		body["status"] = "not ready"
		srv.l.Warnf(ctx, "httpserver.readyCheck: not ready: %v", deps)
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	body["status"] = "ready"
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": "alive", "service": ServiceName})
}
