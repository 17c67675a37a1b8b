// Package api assembles the HTTP server for the service.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/config"
	"github.com/Kartheepan1991/eks-setup-terraform/internal/handler"
	infragin "github.com/Kartheepan1991/eks-setup-terraform/internal/infra/gin"
	infralogger "github.com/Kartheepan1991/eks-setup-terraform/internal/infra/logger"
	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/metrics"
)

// metricsNamespace prefixes every Prometheus series the service exports.
const metricsNamespace = "eks_demo_app"

// NewServer builds the server for cfg. hostname is reported by GET /.
func NewServer(cfg *config.Config, hostname string, log infralogger.Logger) *infragin.Server {
	healthHandler := handler.NewHealthHandler(cfg.Service.Version)
	appHandler := handler.NewAppHandler(cfg.Service.Version, cfg.Service.Environment, hostname)

	builder := infragin.NewServerBuilder(cfg.Service.Name, cfg.Server.Port).
		WithHost(cfg.Server.Host).
		WithLogger(log).
		WithDebug(cfg.Service.Debug).
		WithVersion(cfg.Service.Version).
		WithCORSOrigins(cfg.Server.CORSOrigins).
		WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.IdleTimeout).
		WithTracing(cfg.Tracing.Enabled).
		WithHealthHandler(healthHandler.HealthCheck).
		WithNoRoute(handler.NotFound).
		WithRoutes(func(router *gin.Engine) {
			SetupRoutes(router, appHandler)
		})

	if !cfg.Metrics.Disabled {
		builder = builder.WithMetrics(metrics.New(metricsNamespace))
	}

	return builder.Build()
}
