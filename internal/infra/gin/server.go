package gin

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/logger"
)

// ErrNotListening is returned by Serve when Listen has not bound a socket.
var ErrNotListening = errors.New("server is not listening")

// Server pairs a gin engine with the listener it serves on. Listen binds the
// socket, Serve handles requests on it and Close releases both.
type Server struct {
	router *gin.Engine
	server *http.Server
	logger logger.Logger
	config *Config

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a server. setupRoutes runs after the standard middleware
// is installed.
func NewServer(cfg *Config, log logger.Logger, middleware []gin.HandlerFunc, setupRoutes func(*gin.Engine)) *Server {
	cfg.SetDefaults()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	// Unmatched paths reach NoRoute instead of a 301 to the slash variant.
	router.RedirectTrailingSlash = false

	// Order matters: recovery first, then request ID so the logger sees it.
	router.Use(RecoveryMiddleware(log))
	router.Use(RequestIDLoggerMiddleware(log))
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(cfg.CORS))
	router.Use(middleware...)

	if setupRoutes != nil {
		setupRoutes(router)
	}

	return &Server{
		router: router,
		server: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger: log,
		config: cfg,
	}
}

// Router returns the gin engine, for serving requests in-process.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Listen binds the configured address.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return fmt.Errorf("listen %s: already listening on %s", s.server.Addr, s.listener.Addr())
	}

	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.server.Addr, err)
	}
	s.listener = ln

	s.logger.Info("Server is running",
		logger.String("address", ln.Addr().String()),
		logger.Int("port", ln.Addr().(*net.TCPAddr).Port),
		logger.String("service", s.config.ServiceName),
		logger.String("version", s.config.ServiceVersion),
	)
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Serve handles requests on the bound listener until Close is called, in
// which case it returns nil.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	if ln == nil {
		return ErrNotListening
	}

	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Start binds and serves, blocking until the server is closed.
func (s *Server) Start() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Close closes the listener and any open connections without waiting for
// in-flight requests. Calling it more than once is harmless.
func (s *Server) Close() error {
	err := s.server.Close()

	// Serve may not have picked the listener up yet, in which case
	// http.Server does not know about it.
	s.mu.Lock()
	if s.listener != nil {
		if lnErr := s.listener.Close(); lnErr != nil && !errors.Is(lnErr, net.ErrClosed) && err == nil {
			err = lnErr
		}
	}
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("close server: %w", err)
	}
	return nil
}

// Run starts the server and closes it on SIGINT, SIGTERM or when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve()
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
		s.logger.Info("Shutdown requested, closing listener")
	}

	if err := s.Close(); err != nil {
		return err
	}
	if err := <-errCh; err != nil {
		return err
	}

	s.logger.Info("HTTP server stopped")
	return nil
}
