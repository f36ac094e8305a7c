package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/redact"
	"github.com/phrazzld/todo-api/internal/store"
)

const todoColumns = `id, name, completed, completed_at, created_at, updated_at`

// PostgresTodoStore implements the store.TodoStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTodoStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTodoStore creates a new PostgreSQL implementation of the TodoStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTodoStore(db store.DBTX, logger *slog.Logger) *PostgresTodoStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTodoStore{
		db:     db,
		logger: logger.With(slog.String("component", "todo_store")),
	}
}

// Ensure PostgresTodoStore implements store.TodoStore interface
var _ store.TodoStore = (*PostgresTodoStore)(nil)

// WithTx implements store.TodoStore.WithTx
func (s *PostgresTodoStore) WithTx(tx *sql.Tx) store.TodoStore {
	return &PostgresTodoStore{
		db:     tx,
		logger: s.logger,
	}
}

// FindByID implements store.TodoStore.FindByID
func (s *PostgresTodoStore) FindByID(ctx context.Context, id int64) (*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = $1`

	todo, err := scanTodo(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("todo not found", slog.Int64("todo_id", id))
			return nil, store.ErrTodoNotFound
		}
		log.Error("failed to get todo by ID",
			slog.String("error", redact.Error(err)),
			slog.Int64("todo_id", id))
		return nil, store.NewStoreError("todo", "find_by_id", "query failed", MapError(err))
	}

	return todo, nil
}

// Save implements store.TodoStore.Save
func (s *PostgresTodoStore) Save(ctx context.Context, todo *domain.Todo) error {
	if todo == nil {
		return store.NewStoreError("todo", "save", "todo cannot be nil", store.ErrInvalidEntity)
	}
	if todo.IsNew() {
		return s.insert(ctx, todo)
	}
	return s.update(ctx, todo)
}

func (s *PostgresTodoStore) insert(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO todos (name, completed, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		todo.Name,
		todo.Completed,
		nullTime(todo.CompletedAt),
		todo.CreatedAt,
		todo.UpdatedAt,
	).Scan(&todo.ID)
	if err != nil {
		log.Error("failed to insert todo", slog.String("error", redact.Error(err)))
		return store.NewStoreError("todo", "insert", "insert failed", MapError(err))
	}

	log.Info("todo created", slog.Int64("todo_id", todo.ID))
	return nil
}

func (s *PostgresTodoStore) update(ctx context.Context, todo *domain.Todo) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// created_at is read back rather than written so a replace can never move it.
	query := `
		UPDATE todos
		SET name = $1, completed = $2, completed_at = $3, updated_at = $4
		WHERE id = $5
		RETURNING created_at
	`

	var createdAt sql.NullTime
	err := s.db.QueryRowContext(
		ctx,
		query,
		todo.Name,
		todo.Completed,
		nullTime(todo.CompletedAt),
		todo.UpdatedAt,
		todo.ID,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("todo vanished before update", slog.Int64("todo_id", todo.ID))
			return store.ErrTodoNotFound
		}
		log.Error("failed to update todo",
			slog.String("error", redact.Error(err)),
			slog.Int64("todo_id", todo.ID))
		return store.NewStoreError("todo", "update", "update failed", MapError(err))
	}
	if createdAt.Valid {
		todo.CreatedAt = createdAt.Time.UTC()
	}

	log.Info("todo updated",
		slog.Int64("todo_id", todo.ID),
		slog.Bool("completed", todo.Completed))
	return nil
}

// DeleteByID implements store.TodoStore.DeleteByID
func (s *PostgresTodoStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete todo",
			slog.String("error", redact.Error(err)),
			slog.Int64("todo_id", id))
		return store.NewStoreError("todo", "delete", "delete failed", MapError(err))
	}

	if rows, err := result.RowsAffected(); err == nil {
		log.Debug("todo delete executed",
			slog.Int64("todo_id", id),
			slog.Int64("rows_affected", rows))
	}
	return nil
}

// FindPage implements store.TodoStore.FindPage
func (s *PostgresTodoStore) FindPage(
	ctx context.Context,
	offset, limit int64,
) ([]*domain.Todo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if offset < 0 || limit < 0 {
		return nil, store.NewStoreError("todo", "find_page", "offset and limit must not be negative", store.ErrInvalidEntity)
	}

	query := `SELECT ` + todoColumns + ` FROM todos ORDER BY id DESC LIMIT $1 OFFSET $2`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		log.Error("failed to query todo page",
			slog.String("error", redact.Error(err)),
			slog.Int64("offset", offset),
			slog.Int64("limit", limit))
		return nil, store.NewStoreError("todo", "find_page", "query failed", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", redact.Error(err)))
		}
	}()

	todos := []*domain.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			log.Error("failed to scan todo row", slog.String("error", redact.Error(err)))
			return nil, store.NewStoreError("todo", "find_page", "scan failed", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("todo", "find_page", "row iteration failed", MapError(err))
	}

	log.Debug("found todo page",
		slog.Int64("offset", offset),
		slog.Int64("limit", limit),
		slog.Int("count", len(todos)))
	return todos, nil
}

// Count implements store.TodoStore.Count
func (s *PostgresTodoStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM todos`).Scan(&count); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count todos",
			slog.String("error", redact.Error(err)))
		return 0, store.NewStoreError("todo", "count", "query failed", MapError(err))
	}
	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*domain.Todo, error) {
	var (
		todo        domain.Todo
		completedAt sql.NullTime
	)
	err := row.Scan(
		&todo.ID,
		&todo.Name,
		&todo.Completed,
		&completedAt,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		t := completedAt.Time.UTC()
		todo.CompletedAt = &t
	}
	todo.CreatedAt = todo.CreatedAt.UTC()
	todo.UpdatedAt = todo.UpdatedAt.UTC()
	return &todo, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
