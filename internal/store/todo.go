package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/todo-api/internal/domain"
)

// TodoStore defines the interface for todo persistence.
type TodoStore interface {
	// FindByID retrieves a todo by its ID.
	// Returns ErrTodoNotFound if no todo has that ID; a miss is not a failure
	// of the store and implementations should not log it as one.
	FindByID(ctx context.Context, id int64) (*domain.Todo, error)

	// Save inserts the todo when it has no ID yet, otherwise replaces the
	// stored name, completion flag and timestamps. CreatedAt is never
	// rewritten by a replace. On insert the generated ID is written back
	// into todo.
	// Returns ErrTodoNotFound when replacing a todo that no longer exists.
	Save(ctx context.Context, todo *domain.Todo) error

	// DeleteByID removes the todo with the given ID.
	// Deleting an ID that does not exist is not an error.
	DeleteByID(ctx context.Context, id int64) error

	// FindPage returns at most limit todos ordered by ID descending, skipping
	// the first offset rows. An empty window is returned as an empty, non-nil
	// slice. FindPage does not count the table; callers that need the total
	// use Count.
	FindPage(ctx context.Context, offset, limit int64) ([]*domain.Todo, error)

	// Count returns the number of stored todos.
	Count(ctx context.Context) (int64, error)

	// WithTx returns a TodoStore that runs its queries on the given transaction.
	WithTx(tx *sql.Tx) TodoStore
}
