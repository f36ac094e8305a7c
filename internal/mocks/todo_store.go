package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// MockTodoStore implements store.TodoStore for testing.
//
// Without Fn overrides it behaves like an in-memory table: IDs are assigned
// from an increasing counter and pages are ordered by ID descending.
type MockTodoStore struct {
	// Custom behavior functions
	FindByIDFn   func(ctx context.Context, id int64) (*domain.Todo, error)
	SaveFn       func(ctx context.Context, todo *domain.Todo) error
	DeleteByIDFn func(ctx context.Context, id int64) error
	FindPageFn   func(ctx context.Context, offset, limit int64) ([]*domain.Todo, error)
	CountFn      func(ctx context.Context) (int64, error)

	mu     sync.Mutex
	todos  map[int64]domain.Todo
	nextID int64

	// Call tracking for verification
	FindPageCalls []PageCall
	CountCalls    int
}

// PageCall records the arguments of a FindPage call.
type PageCall struct {
	Offset int64
	Limit  int64
}

// NewMockTodoStore returns an empty in-memory store.
func NewMockTodoStore() *MockTodoStore {
	return &MockTodoStore{todos: make(map[int64]domain.Todo)}
}

var _ store.TodoStore = (*MockTodoStore)(nil)

// FindByID implements store.TodoStore.
func (m *MockTodoStore) FindByID(ctx context.Context, id int64) (*domain.Todo, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	todo, ok := m.todos[id]
	if !ok {
		return nil, store.ErrTodoNotFound
	}
	return &todo, nil
}

// Save implements store.TodoStore.
func (m *MockTodoStore) Save(ctx context.Context, todo *domain.Todo) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, todo)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureInit()

	if todo.IsNew() {
		m.nextID++
		todo.ID = m.nextID
	} else if _, ok := m.todos[todo.ID]; !ok {
		return store.ErrTodoNotFound
	}

	m.todos[todo.ID] = *todo
	return nil
}

// DeleteByID implements store.TodoStore.
func (m *MockTodoStore) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.todos, id)
	return nil
}

// FindPage implements store.TodoStore.
func (m *MockTodoStore) FindPage(ctx context.Context, offset, limit int64) ([]*domain.Todo, error) {
	m.mu.Lock()
	m.FindPageCalls = append(m.FindPageCalls, PageCall{Offset: offset, Limit: limit})
	m.mu.Unlock()

	if m.FindPageFn != nil {
		return m.FindPageFn(ctx, offset, limit)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.todos))
	for id := range m.todos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	total := int64(len(ids))
	page := []*domain.Todo{}
	for i := offset; i < total && i < offset+limit; i++ {
		todo := m.todos[ids[i]]
		page = append(page, &todo)
	}
	return page, nil
}

// Count implements store.TodoStore.
func (m *MockTodoStore) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	m.CountCalls++
	m.mu.Unlock()

	if m.CountFn != nil {
		return m.CountFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.todos)), nil
}

// WithTx implements store.TodoStore. The in-memory store has no transactions.
func (m *MockTodoStore) WithTx(_ *sql.Tx) store.TodoStore {
	return m
}

// Len returns the number of stored todos.
func (m *MockTodoStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.todos)
}

func (m *MockTodoStore) ensureInit() {
	if m.todos == nil {
		m.todos = make(map[int64]domain.Todo)
	}
}
