// Package httpapi exposes the storefront REST endpoints: signup, login, and
// the bearer-authenticated profile operations.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/mlevko/storefront/internal/logging"
	"github.com/mlevko/storefront/internal/server/accounts"
)

type Server struct {
	address  string
	accounts *accounts.Service
	logger   logging.Logger
}

func NewServer(address string, logger logging.Logger, accountService *accounts.Service) *Server {
	return &Server{
		address:  address,
		logger:   logger.With("module", "httpapi"),
		accounts: accountService,
	}
}

// Handler builds the route table. Exposed separately so tests can drive the
// mux through httptest without binding a socket.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /profile", s.withAuth(s.handleGetProfile))
	mux.HandleFunc("POST /profile", s.withAuth(s.handleUpdateProfile))
	mux.HandleFunc("GET /ping", s.handlePing)

	return mux
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
