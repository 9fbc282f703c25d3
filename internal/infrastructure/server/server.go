package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/corrigir/internal/domain/entities"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Server is a thin wrapper over chi + stdlib http.Server.
// No write timeout is set: aggregation and rendering may legitimately take minutes.
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *http.Server
}

// NewServer mounts every controller on a new router listening on the configured port.
func NewServer(settings *entities.Settings, controllers []entities.Controller) *Server {
	addr := net.JoinHostPort("", settings.Server.Port)
	mux := NewRouter(settings.Server, controllers)
	return &Server{
		addr: addr,
		mux:  mux,
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// Addr returns the listening address.
func (s *Server) Addr() string { return s.addr }

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.mux }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Servidor rodando na porta %s", s.addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}
