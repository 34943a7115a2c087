package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.trai.ch/zerr"

	"go.trai.ch/stitch/internal/core/ports"
)

// ErrListenFailed is returned when the server cannot bind its address.
var ErrListenFailed = errors.New("failed to listen on address")

const (
	defaultReadHeaderTimeout = 5 * time.Second
	defaultReadTimeout       = 10 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	shutdownTimeout          = 5 * time.Second
)

// Server wraps http.Server with listen and graceful-shutdown plumbing.
type Server struct {
	srv    *http.Server
	logger ports.Logger

	mu       sync.Mutex
	listener net.Listener
}

// NewServer creates a server for the given address and handler.
func NewServer(addr string, handler http.Handler, log ports.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
		},
		logger: log,
	}
}

// Start binds the listen address and serves until Stop is called. It blocks
// until the server stops; a graceful shutdown returns nil.
func (s *Server) Start(ctx context.Context) error {
	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.srv.Addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, ErrListenFailed.Error()), "addr", s.srv.Addr)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.logger.Info("http server listening", "addr", ln.Addr().String())
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the bound listen address, or the configured address before
// Start binds one. Useful when the configured port is 0.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.srv.Addr
}

// Stop gracefully shuts the server down, waiting up to the shutdown timeout
// for in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	sctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(sctx)
}
