// Package profiling starts optional profilers: a localhost pprof listener and
// the Pyroscope continuous profiling agent.
package profiling

import (
	"errors"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"time"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/logger"
)

const (
	defaultPprofPort  = "6060"
	pprofReadTimeout  = 5 * time.Second
	pprofWriteTimeout = 60 * time.Second // CPU profiles stream for 30s by default
)

// StartPprofServer serves /debug/pprof on localhost:$PPROF_PORT when
// ENABLE_PROFILING=true. It returns the server so callers can close it, or
// nil when profiling is disabled.
func StartPprofServer(log logger.Logger) *http.Server {
	if os.Getenv("ENABLE_PROFILING") != "true" {
		return nil
	}

	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = defaultPprofPort
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	// Loopback only.
	srv := &http.Server{
		Addr:         net.JoinHostPort("localhost", port),
		Handler:      mux,
		ReadTimeout:  pprofReadTimeout,
		WriteTimeout: pprofWriteTimeout,
	}

	go func() {
		log.Info("Starting pprof server", logger.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("pprof server stopped", logger.Error(err))
		}
	}()

	return srv
}
