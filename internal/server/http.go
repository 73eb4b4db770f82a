package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/hola-servers/internal/logger"
)

// shutdownTimeout bounds how long Run waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	server *http.Server
	port   int

	mu       sync.Mutex
	listener net.Listener
	state    State

	logger *logger.Logger
}

var _ Server = (*HTTPServer)(nil)

// NewHTTPServer returns a server for handler on every interface at port. Port
// 0 picks a free port when the socket is bound.
func NewHTTPServer(handler http.Handler, port int, logger *logger.Logger) *HTTPServer {
	return &HTTPServer{
		server: &http.Server{Handler: handler},
		port:   port,
		state:  StateStarting,
		logger: logger,
	}
}

// Listen binds the socket and moves the server to [StateListening].
func (s *HTTPServer) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return errAlreadyListening
	}

	listener, err := net.Listen("tcp", ":"+strconv.Itoa(s.port))
	if err != nil {
		return fmt.Errorf("%w on port %d: %w", ErrBindFailed, s.port, err)
	}

	s.listener = listener
	s.state = StateListening
	return nil
}

// Port returns the bound port, or the configured one before Listen.
func (s *HTTPServer) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return s.port
	}
	return s.listener.Addr().(*net.TCPAddr).Port
}

// URL is the address a local client reaches the server at, without a
// trailing slash.
func (s *HTTPServer) URL() string {
	return "http://localhost:" + strconv.Itoa(s.Port())
}

func (s *HTTPServer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Serve blocks until the server is shut down, which is not an error.
func (s *HTTPServer) Serve() error {
	s.mu.Lock()
	listener := s.listener
	s.mu.Unlock()

	if listener == nil {
		return errNotListening
	}

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error serving HTTP: %w", err)
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateStopped
	s.mu.Unlock()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting HTTP server down: %w", err)
	}
	return nil
}

// Run binds the socket unless Listen was already called, serves, and shuts
// the server down gracefully once ctx is done.
func (s *HTTPServer) Run(ctx context.Context) error {
	if s.State() == StateStarting {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.Serve()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting HTTP server down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("HTTP server shut down gracefully")
	return nil
}

// NotifyContext returns a context cancelled on SIGTERM, SIGINT or SIGQUIT.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
}
