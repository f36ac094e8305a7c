package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"foreign key violation", &pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "fk"}, store.ErrInvalidEntity},
		{"check violation", &pgconn.PgError{Code: checkViolationCode, ConstraintName: "chk"}, store.ErrInvalidEntity},
		{"not null violation", &pgconn.PgError{Code: notNullViolationCode, ColumnName: "name"}, store.ErrInvalidEntity},
		{"wrapped not null violation", fmt.Errorf("exec: %w", &pgconn.PgError{Code: notNullViolationCode}), store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			assert.True(t, errors.Is(mapped, tt.expected), "expected %v to wrap %v", mapped, tt.expected)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, MapError(nil))
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		original := errors.New("connection refused")
		assert.Same(t, original, MapError(original))
	})

	t.Run("unmapped postgres code passes through", func(t *testing.T) {
		original := &pgconn.PgError{Code: "23505"}
		assert.Equal(t, error(original), MapError(original))
	})
}
