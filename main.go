package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/api"
	"github.com/Kartheepan1991/eks-setup-terraform/internal/config"
	infraconfig "github.com/Kartheepan1991/eks-setup-terraform/internal/infra/config"
	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/logger"
	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/profiling"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	hostname, err := resolveHostname()
	if err != nil {
		log.Error("Failed to resolve hostname", logger.Error(err))
		return 1
	}

	if pprofSrv := profiling.StartPprofServer(log); pprofSrv != nil {
		defer func() { _ = pprofSrv.Close() }()
	}

	profiler, err := profiling.StartPyroscope(profiling.PyroscopeOptions{
		ServiceName: cfg.Service.Name,
		Version:     cfg.Service.Version,
		Environment: cfg.Service.Environment,
		Hostname:    hostname,
	}, log)
	if err != nil {
		// Profiling is optional; keep serving without it.
		log.Warn("Continuous profiling unavailable", logger.Error(err))
	}
	defer func() { _ = profiler.Stop() }()

	return runServer(cfg, hostname, log)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(infraconfig.GetConfigPath("config.yml"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(
		logger.String("service", cfg.Service.Name),
		logger.String("environment", cfg.Service.Environment),
	), nil
}

var errEmptyHostname = errors.New("hostname is empty")

// resolveHostname returns the machine or pod name reported by GET /.
func resolveHostname() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("resolve hostname: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errEmptyHostname
	}
	return name, nil
}

// runServer binds the listener and serves until a shutdown signal.
func runServer(cfg *config.Config, hostname string, log logger.Logger) int {
	server := api.NewServer(cfg, hostname, log)

	log.Info("Starting eks-demo-app",
		logger.String("version", cfg.Service.Version),
		logger.String("hostname", hostname),
		logger.Int("port", cfg.Server.Port),
		logger.Bool("metrics_enabled", !cfg.Metrics.Disabled),
		logger.Bool("tracing_enabled", cfg.Tracing.Enabled),
	)

	if err := server.Run(context.Background()); err != nil {
		log.Error("Server error", logger.Error(err))
		return 1
	}

	log.Info("eks-demo-app exited cleanly")
	return 0
}
