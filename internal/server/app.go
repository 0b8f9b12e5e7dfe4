// Package server initializes and runs the storefront backend: it selects the
// storage backend, wires the account service, handles shutdown signals, and
// starts the HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mlevko/storefront/internal/logging"
	"github.com/mlevko/storefront/internal/server/accounts"
	"github.com/mlevko/storefront/internal/server/config"
	"github.com/mlevko/storefront/internal/server/httpapi"
	"github.com/mlevko/storefront/internal/server/repositories/repomanager"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repoManager    repomanager.RepositoryManager
	accountService *accounts.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	var rm repomanager.RepositoryManager
	if cfg.DatabaseDSN != "" {
		pm, err := repomanager.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = pm
	} else {
		logger.Warn(ctx, "no database DSN configured, using in-memory stores")
		rm = repomanager.NewInMemoryRepositoryManager()
	}

	as := accounts.NewService(rm.Accounts(), rm.Sessions(), cfg)

	return &App{config: cfg, logger: logger, repoManager: rm, accountService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.accountService)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repoManager.Close(); err != nil {
		app.logger.Error(ctx, "error closing repositories", "error", err.Error())
	}
}
