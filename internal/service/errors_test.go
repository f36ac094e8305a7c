package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestNewTodoServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, NewTodoServiceError("get_todo", "msg", nil))
	})

	t.Run("store not found becomes sentinel", func(t *testing.T) {
		wrapped := fmt.Errorf("query: %w", store.ErrTodoNotFound)
		err := NewTodoServiceError("get_todo", "failed", wrapped)
		assert.Same(t, ErrTodoNotFound, err)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewTodoServiceError("create_todo", "failed to save todo", cause)

		var svcErr *TodoServiceError
		assert.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "create_todo", svcErr.Operation)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t,
			"todo service create_todo failed: failed to save todo: connection reset",
			err.Error())
	})
}

func TestTodoServiceError_NoCause(t *testing.T) {
	err := &TodoServiceError{Operation: "create_service", Message: "todoStore cannot be nil"}
	assert.Equal(t, "todo service create_service failed: todoStore cannot be nil", err.Error())
	assert.Nil(t, err.Unwrap())
}
