package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/api/middleware"
	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	todoStore   store.TodoStore
	todoService service.TodoService

	registry *prometheus.Registry
	metrics  *middleware.Metrics
}

// newApplication wires the Postgres store into the service layer.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	return newApplicationWithStore(cfg, logger, db, postgres.NewPostgresTodoStore(db, logger))
}

// newApplicationWithStore builds the application around an existing store.
// db may be nil when the store does not need it.
func newApplicationWithStore(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	todoStore store.TodoStore,
) (*application, error) {
	todoService, err := service.NewTodoService(todoStore, cfg.API.BaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo service: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if db != nil {
		registry.MustRegister(collectors.NewDBStatsCollector(db, "todos"))
	}

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		todoStore:   todoStore,
		todoService: todoService,
		registry:    registry,
		metrics:     middleware.NewMetrics(registry),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	app.logger.Info("Closing database connection")
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database", "error", err)
	}
}
