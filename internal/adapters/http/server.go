package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/scanconsole/internal/platform/config"
)

const defaultShutdownTimeout = 10 * time.Second

// LoadWaiter is drained after the listener closes. Wait must stop accepting
// new loads before it blocks; handlers.Background does.
type LoadWaiter interface {
	Wait()
}

// Server is the scanconsole API server. Shutdown closes the listener, lets
// in-flight requests finish and then drains background loads.
type Server struct {
	srv    *http.Server
	loads  LoadWaiter
	logger *slog.Logger
	ln     net.Listener
}

// NewServer creates the API server. A nil loads skips draining; a nil logger
// discards log output.
func NewServer(cfg config.ServerConfig, handler http.Handler, loads LoadWaiter, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		loads:  loads,
		logger: logger.With(slog.String("component", "api_server")),
	}
}

// Listen binds the configured address. After it returns, Addr reports the
// bound address, which differs from the configured one for port 0.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.ln = ln
	return nil
}

// Start listens if Listen has not been called and serves until Shutdown.
// It returns nil on graceful shutdown.
func (s *Server) Start() error {
	if s.ln == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.logger.Info("scanconsole API listening",
		slog.String("addr", s.ln.Addr().String()),
		slog.Duration("write_timeout", s.srv.WriteTimeout),
	)

	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving scanconsole API: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests and
// then for background loads, all within ctx's deadline. Without a deadline
// a 10-second timeout applies.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down scanconsole API")

	var errs []error
	if err := s.srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("closing connections: %w", err))
	}
	if err := s.drainLoads(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Server) drainLoads(ctx context.Context) error {
	if s.loads == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		s.loads.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Debug("background loads drained")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("background loads still running: %w", ctx.Err())
	}
}

// Addr returns the bound address once listening, else the configured one.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}
