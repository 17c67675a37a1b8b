package config

import (
	"time"

	infraconfig "github.com/Kartheepan1991/eks-setup-terraform/internal/infra/config"
)

// Default configuration values.
const (
	defaultServiceName  = "eks-demo-app"
	defaultVersion      = "1.0.0"
	defaultEnvironment  = "development"
	defaultHost         = "0.0.0.0"
	defaultPort         = 3000
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
	defaultLoggingLevel = "info"
	defaultLoggingFmt   = "json"
)

// Config holds the application configuration.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Server  ServerConfig  `yaml:"server"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServiceConfig describes the running instance.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `env:"APP_VERSION" yaml:"version"`
	Environment string `env:"NODE_ENV"    yaml:"environment"`
	Debug       bool   `env:"APP_DEBUG"   yaml:"debug"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host         string        `env:"HOST"                 yaml:"host"`
	Port         int           `env:"PORT"                 yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
	CORSOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" yaml:"cors_origins"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Disabled bool `env:"METRICS_DISABLED" yaml:"disabled"`
}

// TracingConfig controls per-request spans.
type TracingConfig struct {
	Enabled bool `env:"TRACING_ENABLED" yaml:"enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the YAML file at path, if any, applying
// defaults and then environment overrides.
func Load(path string) (*Config, error) {
	return infraconfig.LoadWithDefaults[Config](path, setDefaults)
}

func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setServerDefaults(&cfg.Server)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(svc *ServiceConfig) {
	if svc.Name == "" {
		svc.Name = defaultServiceName
	}
	if svc.Version == "" {
		svc.Version = defaultVersion
	}
	if svc.Environment == "" {
		svc.Environment = defaultEnvironment
	}
}

func setServerDefaults(srv *ServerConfig) {
	if srv.Host == "" {
		srv.Host = defaultHost
	}
	if srv.Port == 0 {
		srv.Port = defaultPort
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = defaultReadTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = defaultWriteTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = defaultIdleTimeout
	}
}

func setLoggingDefaults(log *LoggingConfig) {
	if log.Level == "" {
		log.Level = defaultLoggingLevel
	}
	if log.Format == "" {
		log.Format = defaultLoggingFmt
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := infraconfig.ValidateRequired("service.name", c.Service.Name); err != nil {
		return err
	}
	if err := infraconfig.ValidatePort("server.port", c.Server.Port); err != nil {
		return err
	}
	if err := infraconfig.ValidateLogLevel("logging.level", c.Logging.Level); err != nil {
		return err
	}
	return infraconfig.ValidateLogFormat("logging.format", c.Logging.Format)
}
