package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
)

// migrationCommands are the goose commands accepted by the -migrate flag.
var migrationCommands = map[string]bool{
	"up":      true,
	"down":    true,
	"status":  true,
	"version": true,
	"reset":   true,
}

// runMigrations executes a goose command against the embedded migrations.
// All log lines of one run share a correlation ID.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !migrationCommands[command] {
		return fmt.Errorf("unsupported migration command %q", command)
	}

	migrationLogger := logger.With(
		"correlation_id", uuid.New().String(),
		"command", command,
	)

	start := time.Now()
	migrationLogger.Info("Starting migration operation")

	if err := postgres.RunMigrationCommand(ctx, db, migrationLogger, command); err != nil {
		migrationLogger.Error("Migration operation failed",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return err
	}

	migrationLogger.Info("Migration operation completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
