package mocks

import (
	"context"

	"github.com/phrazzld/todo-api/internal/service"
)

// MockTodoService implements service.TodoService for handler tests.
type MockTodoService struct {
	GetTodoFn    func(ctx context.Context, id int64) (*service.TodoDetail, error)
	UpdateTodoFn func(ctx context.Context, id int64, req service.TodoRequest) (*service.TodoDetail, error)
	DeleteTodoFn func(ctx context.Context, id int64) error
	CreateTodoFn func(ctx context.Context, req service.TodoRequest) (*service.TodoDetail, error)
	GetTodosFn   func(ctx context.Context, skip, limit int) ([]service.TodoListItem, error)

	// Calls counts every invocation regardless of method.
	Calls int
}

var _ service.TodoService = (*MockTodoService)(nil)

// GetTodo implements service.TodoService.
func (m *MockTodoService) GetTodo(ctx context.Context, id int64) (*service.TodoDetail, error) {
	m.Calls++
	if m.GetTodoFn != nil {
		return m.GetTodoFn(ctx, id)
	}
	return nil, service.ErrTodoNotFound
}

// UpdateTodo implements service.TodoService.
func (m *MockTodoService) UpdateTodo(
	ctx context.Context,
	id int64,
	req service.TodoRequest,
) (*service.TodoDetail, error) {
	m.Calls++
	if m.UpdateTodoFn != nil {
		return m.UpdateTodoFn(ctx, id, req)
	}
	return nil, service.ErrTodoNotFound
}

// DeleteTodo implements service.TodoService.
func (m *MockTodoService) DeleteTodo(ctx context.Context, id int64) error {
	m.Calls++
	if m.DeleteTodoFn != nil {
		return m.DeleteTodoFn(ctx, id)
	}
	return nil
}

// CreateTodo implements service.TodoService.
func (m *MockTodoService) CreateTodo(ctx context.Context, req service.TodoRequest) (*service.TodoDetail, error) {
	m.Calls++
	if m.CreateTodoFn != nil {
		return m.CreateTodoFn(ctx, req)
	}
	return &service.TodoDetail{ID: 1, Name: req.Name, Completed: req.Completed}, nil
}

// GetTodos implements service.TodoService.
func (m *MockTodoService) GetTodos(ctx context.Context, skip, limit int) ([]service.TodoListItem, error) {
	m.Calls++
	if m.GetTodosFn != nil {
		return m.GetTodosFn(ctx, skip, limit)
	}
	return []service.TodoListItem{}, nil
}
