// Package server initializes and runs the Knight Ride application server.
// It selects the storage backend, wires repositories into services, and
// starts the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/knightride/knightride/internal/logging"
	"github.com/knightride/knightride/internal/server/config"
	"github.com/knightride/knightride/internal/server/httpserver"
	"github.com/knightride/knightride/internal/server/repositories/repomanager"
	"github.com/knightride/knightride/internal/server/services"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	repos      repomanager.RepositoryManager
	httpServer *httpserver.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	var repos repomanager.RepositoryManager
	if cfg.DatabaseDSN != "" {
		var err error
		repos, err = repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	} else {
		repos = repomanager.NewInMemoryRepositoryManager()
	}

	userService := services.NewUserService(repos.Users(), repos.Contacts(), cfg)
	directoryService := services.NewDirectoryService(repos.Stations())
	contactService := services.NewContactService(repos.Contacts())
	assistService := services.NewAssistService(repos.Requests(), repos.Alerts(), repos.Stations(), repos.Contacts())

	handler := httpserver.NewHandler(userService, directoryService, contactService, assistService,
		[]byte(cfg.SecretKey), logger)

	return &App{
		config:     cfg,
		logger:     logger,
		repos:      repos,
		httpServer: httpserver.NewServer(cfg.EndpointAddr, handler, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
