package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"trace-analytics/internal/aggregators"
	internalhttp "trace-analytics/internal/http"
	"trace-analytics/internal/ingestors"
	"trace-analytics/internal/shared/configs"
	"trace-analytics/internal/shared/filestorages"
	"trace-analytics/internal/shared/loggers"
	"trace-analytics/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "trace-analytics").
		Logger()

	// Initialize blob store
	fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize ingestionService
	resultStore := stores.NewTraceResultStore(fileStorage)
	pipeline := ingestors.NewPipeline(aggregators.Options{
		MinTransferSize: config.Parsing.BlerMinTransferSize,
		MinDrbID:        config.Parsing.PdcpMinDrbID,
	})
	ingestionService := ingestors.NewIngestionService(pipeline, resultStore, config.Ingestion.MaxTraceBytes)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting trace-analytics service on port %d (log_level=%s, file_storage_root_dir=%s, bler_min_transfer_size=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.FileStorage.RootDir,
			app.config.Parsing.BlerMinTransferSize)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application. In-flight uploads finish
// before the server stops.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
