package profiling

import (
	"fmt"
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/logger"
)

const defaultPyroscopeURL = "http://pyroscope:4040"

// PyroscopeOptions tags the profiles sent to the Pyroscope server.
type PyroscopeOptions struct {
	ServiceName string
	Version     string
	Environment string
	Hostname    string
}

// Profiler wraps a running Pyroscope agent.
type Profiler struct {
	profiler *pyroscope.Profiler
}

// StartPyroscope starts continuous profiling when
// ENABLE_CONTINUOUS_PROFILING=true. It returns (nil, nil) when disabled.
func StartPyroscope(opts PyroscopeOptions, log logger.Logger) (*Profiler, error) {
	if os.Getenv("ENABLE_CONTINUOUS_PROFILING") != "true" {
		return nil, nil //nolint:nilnil // disabled is not an error
	}

	serverURL := os.Getenv("PYROSCOPE_SERVER_URL")
	if serverURL == "" {
		serverURL = defaultPyroscopeURL
	}

	cfg := pyroscope.Config{
		ApplicationName: opts.ServiceName,
		ServerAddress:   serverURL,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
		Tags: map[string]string{
			"environment": opts.Environment,
			"version":     opts.Version,
			"hostname":    opts.Hostname,
			"go_version":  runtime.Version(),
		},
	}

	p, err := pyroscope.Start(cfg)
	if err != nil {
		return nil, fmt.Errorf("start pyroscope profiler: %w", err)
	}

	log.Info("Pyroscope continuous profiling started",
		logger.String("application", cfg.ApplicationName),
		logger.String("server", serverURL),
	)
	return &Profiler{profiler: p}, nil
}

// Stop flushes and stops the agent. Safe on a nil Profiler.
func (p *Profiler) Stop() error {
	if p == nil || p.profiler == nil {
		return nil
	}
	return p.profiler.Stop()
}
