// Package http implements the nciserver HTTP surface: the gin route tree,
// request logging and metrics middleware, and the server lifecycle.
package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xtalgeom/nciscan/internal/config"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/prometheus"
	"github.com/xtalgeom/nciscan/internal/interfaces/http/handlers"
)

// RouterConfig aggregates the dependencies for the HTTP route tree.
type RouterConfig struct {
	AnalysisHandler *handlers.AnalysisHandler
	HealthHandler   *handlers.HealthHandler

	Logger  logging.Logger
	Metrics *prometheus.Metrics
	Server  config.ServerConfig
	// MetricsPath is where the exposition handler is mounted; empty
	// disables it.
	MetricsPath string
}

// NewRouter constructs the complete route tree: public health and metrics
// endpoints plus the /api/v1 analysis resources.
func NewRouter(cfg RouterConfig) *gin.Engine {
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Logger != nil {
		r.Use(requestLogging(cfg.Logger))
	}
	if cfg.Metrics != nil {
		r.Use(requestMetrics(cfg.Metrics))
		if cfg.MetricsPath != "" {
			r.GET(cfg.MetricsPath, gin.WrapH(cfg.Metrics.Handler()))
		}
	}

	r.GET("/healthz", cfg.HealthHandler.Check)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/analyses", cfg.AnalysisHandler.Create)
	}
	return r
}

// requestLogging records one structured entry per request; 5xx responses
// log at error level.
func requestLogging(logger logging.Logger) gin.HandlerFunc {
	log := logger.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("elapsed", time.Since(start)),
			logging.String("client", c.ClientIP()),
		}
		if c.Writer.Status() >= 500 {
			log.Error("request failed", fields...)
			return
		}
		log.Info("request served", fields...)
	}
}

// requestMetrics observes request count and latency, labeled by the route
// template rather than the raw path so cardinality stays bounded.
func requestMetrics(m *prometheus.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
