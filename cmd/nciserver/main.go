// Command nciserver exposes the molecular interaction analyzer as an HTTP
// API with Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xtalgeom/nciscan/internal/application/analysis"
	"github.com/xtalgeom/nciscan/internal/config"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/logging"
	"github.com/xtalgeom/nciscan/internal/infrastructure/monitoring/prometheus"
	httpiface "github.com/xtalgeom/nciscan/internal/interfaces/http"
	"github.com/xtalgeom/nciscan/internal/interfaces/http/handlers"
)

// Build-time variables injected via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "nciserver: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return err
	}
	logging.SetDefault(logger)
	logger.Info("starting nciserver",
		logging.String("version", version),
		logging.Int("port", cfg.Server.Port))

	var metrics *prometheus.Metrics
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metrics = prometheus.New(prometheus.Options{EnableRuntimeMetrics: true})
		metricsPath = cfg.Metrics.Path
	}

	svc := analysis.NewService(cfg.Detection, logger, metrics)
	router := httpiface.NewRouter(httpiface.RouterConfig{
		AnalysisHandler: handlers.NewAnalysisHandler(svc, logger),
		HealthHandler:   handlers.NewHealthHandler(version),
		Logger:          logger,
		Metrics:         metrics,
		Server:          cfg.Server,
		MetricsPath:     metricsPath,
	})

	server := httpiface.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("signal received", logging.String("signal", sig.String()))
	}

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.Shutdown(ctx)
}

// loadConfig reads the optional config file named by NCISCAN_CONFIG, or
// builds the configuration from NCISCAN_* environment variables.
func loadConfig() (*config.Config, error) {
	if path := os.Getenv("NCISCAN_CONFIG"); path != "" {
		return config.Load(path)
	}
	return config.LoadFromEnv()
}
