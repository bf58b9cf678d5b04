package stub

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/darbotlabs/lanton-stubs/internal/config"
)

// DefaultShutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal
const DefaultShutdownTimeout = 5 * time.Second

// Server runs one stub service
type Server struct {
	config          config.Stub
	label           string
	handler         http.Handler
	out             io.Writer
	shutdownTimeout time.Duration
}

// ServerOption is a function that configures a Server
type ServerOption func(*Server)

// WithOutput sets where lifecycle messages are printed
func WithOutput(w io.Writer) ServerOption {
	return func(s *Server) {
		s.out = w
	}
}

// WithShutdownTimeout sets the graceful shutdown grace period
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// NewServer creates a server for cfg. label names the process in lifecycle
// messages, e.g. "BitNet server" or "OmniParser agent".
func NewServer(cfg config.Stub, label string, handler http.Handler, options ...ServerOption) *Server {
	s := &Server{
		config:          cfg,
		label:           label,
		handler:         handler,
		out:             os.Stdout,
		shutdownTimeout: DefaultShutdownTimeout,
	}

	for _, option := range options {
		option(s)
	}

	return s
}

// Label returns the name used in lifecycle messages
func (s *Server) Label() string {
	return s.label
}

// Run binds and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Listen binds the configured address
func (s *Server) Listen() (net.Listener, error) {
	addr := s.config.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &StartupError{Service: s.config.Name, Addr: addr, Err: err}
	}
	return ln, nil
}

// Serve handles requests on ln until ctx is cancelled, then shuts down
// gracefully. It takes ownership of ln.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	port := s.config.Port
	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}

	fmt.Fprintf(s.out, "%s started at port %d\n", s.label, port)
	fmt.Fprintf(s.out, "PID: %d\n", os.Getpid())

	srv := &http.Server{Handler: s.handler}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintf(s.out, "%s shutting down\n", s.label)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down %s: %w", s.label, err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s stopped: %w", s.label, err)
	}
}
