package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8080/todos/"

// fixedClock returns a clock that advances one minute per call.
func fixedClock() func() time.Time {
	current := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func newService(t *testing.T, s store.TodoStore) service.TodoService {
	t.Helper()
	svc, err := service.NewTodoService(s, testBaseURL, nil, service.WithClock(fixedClock()))
	require.NoError(t, err)
	return svc
}

func TestNewTodoService(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		svc, err := service.NewTodoService(nil, testBaseURL, nil)
		assert.Nil(t, svc)
		var svcErr *service.TodoServiceError
		assert.True(t, errors.As(err, &svcErr))
	})

	t.Run("valid dependencies", func(t *testing.T) {
		svc, err := service.NewTodoService(mocks.NewMockTodoStore(), testBaseURL, nil)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})
}

func TestCreateTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("incomplete todo has no completion time", func(t *testing.T) {
		st := mocks.NewMockTodoStore()
		svc := newService(t, st)

		got, err := svc.CreateTodo(ctx, service.TodoRequest{Name: "buy milk"})
		require.NoError(t, err)

		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "buy milk", got.Name)
		assert.False(t, got.Completed)
		assert.Nil(t, got.CompletedAt)
		assert.Equal(t, got.CreatedAt, got.UpdatedAt)
		assert.Equal(t, 1, st.Len())
	})

	t.Run("completed todo is stamped", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())

		got, err := svc.CreateTodo(ctx, service.TodoRequest{Name: "done", Completed: true})
		require.NoError(t, err)

		require.NotNil(t, got.CompletedAt)
		assert.Equal(t, got.CreatedAt, *got.CompletedAt)
	})

	t.Run("ids increase", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())

		first, err := svc.CreateTodo(ctx, service.TodoRequest{Name: "a"})
		require.NoError(t, err)
		second, err := svc.CreateTodo(ctx, service.TodoRequest{Name: "b"})
		require.NoError(t, err)

		assert.Greater(t, second.ID, first.ID)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		st := mocks.NewMockTodoStore()
		st.SaveFn = func(ctx context.Context, todo *domain.Todo) error {
			return errors.New("disk full")
		}
		svc := newService(t, st)

		_, err := svc.CreateTodo(ctx, service.TodoRequest{Name: "x"})
		var svcErr *service.TodoServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "create_todo", svcErr.Operation)
	})
}

func TestGetTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())
		created, err := svc.CreateTodo(ctx, service.TodoRequest{Name: "read"})
		require.NoError(t, err)

		got, err := svc.GetTodo(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("missing", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())

		got, err := svc.GetTodo(ctx, 42)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, service.ErrTodoNotFound)
	})
}

func TestUpdateTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites fields and keeps created time", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())
		created, err := svc.CreateTodo(ctx, service.TodoRequest{Name: "draft"})
		require.NoError(t, err)

		updated, err := svc.UpdateTodo(ctx, created.ID, service.TodoRequest{Name: "final", Completed: true})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "final", updated.Name)
		assert.True(t, updated.Completed)
		require.NotNil(t, updated.CompletedAt)
		assert.Equal(t, updated.UpdatedAt, *updated.CompletedAt)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("reopening keeps last completion time", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())
		created, err := svc.CreateTodo(ctx, service.TodoRequest{Name: "task", Completed: true})
		require.NoError(t, err)

		reopened, err := svc.UpdateTodo(ctx, created.ID, service.TodoRequest{Name: "task"})
		require.NoError(t, err)

		assert.False(t, reopened.Completed)
		require.NotNil(t, reopened.CompletedAt)
		assert.Equal(t, *created.CompletedAt, *reopened.CompletedAt)
	})

	t.Run("missing", func(t *testing.T) {
		st := mocks.NewMockTodoStore()
		svc := newService(t, st)

		_, err := svc.UpdateTodo(ctx, 7, service.TodoRequest{Name: "x"})
		assert.ErrorIs(t, err, service.ErrTodoNotFound)
		assert.Equal(t, 0, st.Len())
	})
}

func TestDeleteTodo(t *testing.T) {
	ctx := context.Background()

	t.Run("removes existing todo", func(t *testing.T) {
		st := mocks.NewMockTodoStore()
		svc := newService(t, st)
		created, err := svc.CreateTodo(ctx, service.TodoRequest{Name: "gone"})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTodo(ctx, created.ID))

		_, err = svc.GetTodo(ctx, created.ID)
		assert.ErrorIs(t, err, service.ErrTodoNotFound)
	})

	t.Run("missing id is not an error", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())
		assert.NoError(t, svc.DeleteTodo(ctx, 999))
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		st := mocks.NewMockTodoStore()
		st.DeleteByIDFn = func(ctx context.Context, id int64) error {
			return errors.New("boom")
		}
		svc := newService(t, st)

		err := svc.DeleteTodo(ctx, 1)
		var svcErr *service.TodoServiceError
		assert.True(t, errors.As(err, &svcErr))
	})
}

func TestGetTodos(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc service.TodoService, n int) {
		t.Helper()
		for i := 1; i <= n; i++ {
			_, err := svc.CreateTodo(ctx, service.TodoRequest{Name: fmt.Sprintf("todo %d", i)})
			require.NoError(t, err)
		}
	}

	ids := func(items []service.TodoListItem) []int64 {
		out := make([]int64, 0, len(items))
		for _, item := range items {
			out = append(out, item.ID)
		}
		return out
	}

	t.Run("pages are newest first", func(t *testing.T) {
		st := mocks.NewMockTodoStore()
		svc := newService(t, st)
		seed(t, svc, 5)

		first, err := svc.GetTodos(ctx, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{5, 4}, ids(first))

		second, err := svc.GetTodos(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 2}, ids(second))

		last, err := svc.GetTodos(ctx, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, ids(last))

		assert.Equal(t, mocks.PageCall{Offset: 2, Limit: 2}, st.FindPageCalls[1])
		assert.Zero(t, st.CountCalls)
	})

	t.Run("items carry a link", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())
		seed(t, svc, 1)

		items, err := svc.GetTodos(ctx, 0, 10)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, testBaseURL+"1", items[0].URL)
		assert.Equal(t, "todo 1", items[0].Name)
	})

	t.Run("zero limit returns everything", func(t *testing.T) {
		st := mocks.NewMockTodoStore()
		svc := newService(t, st)
		seed(t, svc, 3)

		items, err := svc.GetTodos(ctx, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 2, 1}, ids(items))
		assert.Equal(t, 1, st.CountCalls, "only the service counts the table")
		assert.Equal(t, []mocks.PageCall{{Offset: 0, Limit: 3}}, st.FindPageCalls)
	})

	t.Run("zero limit on empty store", func(t *testing.T) {
		st := mocks.NewMockTodoStore()
		svc := newService(t, st)

		items, err := svc.GetTodos(ctx, 0, 0)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
		assert.Empty(t, st.FindPageCalls)
	})

	t.Run("zero limit with non-zero skip is past the end", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())
		seed(t, svc, 3)

		items, err := svc.GetTodos(ctx, 1, 0)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())
		seed(t, svc, 2)

		items, err := svc.GetTodos(ctx, 5, 10)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("negative arguments are rejected", func(t *testing.T) {
		svc := newService(t, mocks.NewMockTodoStore())

		_, err := svc.GetTodos(ctx, -1, 1)
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.GetTodos(ctx, 0, -1)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("count failure is wrapped", func(t *testing.T) {
		st := mocks.NewMockTodoStore()
		st.CountFn = func(ctx context.Context) (int64, error) {
			return 0, errors.New("timeout")
		}
		svc := newService(t, st)

		_, err := svc.GetTodos(ctx, 0, 0)
		var svcErr *service.TodoServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "get_todos", svcErr.Operation)
	})
}

func TestURLFor(t *testing.T) {
	assert.Equal(t, "https://example.com/todos/12", service.URLFor("https://example.com/todos/", 12))
}
