package rpc

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gabapcia/txbatch/internal/pkg/logger"
	"github.com/gabapcia/txbatch/internal/provider"
)

// ErrServerAlreadyStarted is returned if Start is called more than once.
var ErrServerAlreadyStarted = errors.New("rpc server already started")

const defaultShutdownTimeout = 5 * time.Second

// Server listens for JSON-RPC calls until Close.
type Server struct {
	addr            string
	handler         http.Handler
	shutdownTimeout time.Duration

	mu        sync.Mutex
	isStarted bool
	listener  net.Listener
	closeFunc func()
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithShutdownTimeout bounds how long Close waits for in-flight calls.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// NewServer creates the HTTP JSON-RPC endpoint in front of p.
//
// Parameters:
//   - addr: the listen address, e.g. ":8545". Port 0 picks a free port.
//   - p: the provider every request is handed to.
//   - opts: optional settings such as WithShutdownTimeout.
//
// Returns:
//   - A Server that listens once Start is called.
func NewServer(addr string, p provider.Provider, opts ...ServerOption) *Server {
	s := &Server{
		addr:            addr,
		handler:         NewHandler(p),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start binds the address and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServerAlreadyStarted
	}

	listener, err := (&net.ListenConfig{}).Listen(ctx, "tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "rpc server stopped", "error", err)
		}
	}()

	logger.Info(ctx, "rpc server listening", "server.addr", listener.Addr().String())

	s.listener = listener
	s.closeFunc = func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "rpc server shutdown incomplete", "error", err)
			_ = srv.Close()
		}
		<-done
	}
	s.isStarted = true
	return nil
}

// Addr is the bound address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close shuts the server down, waiting up to the shutdown timeout for
// in-flight requests.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.listener = nil
	s.isStarted = false
}
