package gin

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/logger"
	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/metrics"
	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/tracing"
)

// MetricsPath is where Prometheus metrics are served when enabled.
const MetricsPath = "/metrics"

// ServerBuilder assembles a Server with a fluent API.
type ServerBuilder struct {
	config        *Config
	logger        logger.Logger
	healthHandler gin.HandlerFunc
	noRoute       gin.HandlerFunc
	metrics       *metrics.Metrics
	tracing       bool
	setupRoutes   func(*gin.Engine)
}

// NewServerBuilder starts a builder for serviceName listening on port.
func NewServerBuilder(serviceName string, port int) *ServerBuilder {
	return &ServerBuilder{config: NewConfig(serviceName, port)}
}

// WithLogger sets the logger.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.logger = log
	return b
}

// WithHost sets the bind host.
func (b *ServerBuilder) WithHost(host string) *ServerBuilder {
	b.config.Host = host
	return b
}

// WithDebug enables or disables gin debug mode.
func (b *ServerBuilder) WithDebug(debug bool) *ServerBuilder {
	b.config.Debug = debug
	return b
}

// WithVersion sets the service version.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.config.ServiceVersion = version
	return b
}

// WithCORSOrigins sets allowed CORS origins.
func (b *ServerBuilder) WithCORSOrigins(origins []string) *ServerBuilder {
	b.config.CORS.AllowedOrigins = origins
	return b
}

// WithTimeouts sets the read, write and idle timeouts.
func (b *ServerBuilder) WithTimeouts(read, write, idle time.Duration) *ServerBuilder {
	b.config.ReadTimeout = read
	b.config.WriteTimeout = write
	b.config.IdleTimeout = idle
	return b
}

// WithHealthHandler sets the GET /health handler. Health routes are only
// registered when one is set.
func (b *ServerBuilder) WithHealthHandler(h gin.HandlerFunc) *ServerBuilder {
	b.healthHandler = h
	return b
}

// WithNoRoute sets the handler for unmatched requests.
func (b *ServerBuilder) WithNoRoute(h gin.HandlerFunc) *ServerBuilder {
	b.noRoute = h
	return b
}

// WithMetrics records request metrics and serves them on /metrics.
func (b *ServerBuilder) WithMetrics(m *metrics.Metrics) *ServerBuilder {
	b.metrics = m
	return b
}

// WithTracing wraps each request in an OpenTelemetry span.
func (b *ServerBuilder) WithTracing(enabled bool) *ServerBuilder {
	b.tracing = enabled
	return b
}

// WithRoutes sets the service route setup function.
func (b *ServerBuilder) WithRoutes(setupRoutes func(*gin.Engine)) *ServerBuilder {
	b.setupRoutes = setupRoutes
	return b
}

// Build creates the server.
func (b *ServerBuilder) Build() *Server {
	if b.logger == nil {
		b.logger = logger.Must(logger.Config{Development: b.config.Debug})
	}

	var middleware []gin.HandlerFunc
	if b.tracing {
		middleware = append(middleware, tracing.Middleware(b.config.ServiceName))
	}
	if b.metrics != nil {
		middleware = append(middleware, b.metrics.Middleware())
	}

	setup := func(router *gin.Engine) {
		if b.healthHandler != nil {
			RegisterHealthRoutes(router, b.healthHandler)
		}
		if b.metrics != nil {
			router.GET(MetricsPath, gin.WrapH(b.metrics.Handler()))
		}
		if b.noRoute != nil {
			router.NoRoute(b.noRoute)
		}
		if b.setupRoutes != nil {
			b.setupRoutes(router)
		}
	}

	return NewServer(b.config, b.logger, middleware, setup)
}
