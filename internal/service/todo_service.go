package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TodoRequest carries the fields a client may set on create and update.
type TodoRequest struct {
	Name      string
	Completed bool
}

// TodoDetail is the full projection of a single todo.
type TodoDetail struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TodoListItem is the reduced projection used in list responses.
type TodoListItem struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt"`
	URL         string     `json:"url"`
}

// TodoService provides todo-related operations
type TodoService interface {
	// GetTodo returns the todo with the given ID, or ErrTodoNotFound.
	GetTodo(ctx context.Context, id int64) (*TodoDetail, error)

	// UpdateTodo overwrites the name and completion flag of an existing todo,
	// stamping the completion time whenever req.Completed is true.
	// Returns ErrTodoNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id int64, req TodoRequest) (*TodoDetail, error)

	// DeleteTodo removes the todo. It succeeds whether or not the todo exists.
	DeleteTodo(ctx context.Context, id int64) error

	// CreateTodo stores a new todo built from req.
	CreateTodo(ctx context.Context, req TodoRequest) (*TodoDetail, error)

	// GetTodos returns page number skip of size limit, newest first.
	// A limit of zero means every stored todo.
	GetTodos(ctx context.Context, skip, limit int) ([]TodoListItem, error)
}

// Option configures a TodoService.
type Option func(*todoServiceImpl)

// WithClock replaces the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *todoServiceImpl) {
		if now != nil {
			s.now = now
		}
	}
}

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	todoStore store.TodoStore
	baseURL   string
	now       func() time.Time
	logger    *slog.Logger
}

// NewTodoService creates a new TodoService.
// baseURL is prefixed to each todo ID to build list item links.
// It returns an error if the store is nil.
func NewTodoService(
	todoStore store.TodoStore,
	baseURL string,
	logger *slog.Logger,
	opts ...Option,
) (TodoService, error) {
	if todoStore == nil {
		return nil, &TodoServiceError{
			Operation: "create_service",
			Message:   "todoStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &todoServiceImpl{
		todoStore: todoStore,
		baseURL:   baseURL,
		now:       func() time.Time { return time.Now().UTC() },
		logger:    logger.With("component", "todo_service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// GetTodo implements TodoService.GetTodo
func (s *todoServiceImpl) GetTodo(ctx context.Context, id int64) (*TodoDetail, error) {
	todo, err := s.todoStore.FindByID(ctx, id)
	if err != nil {
		return nil, NewTodoServiceError("get_todo", "failed to load todo", err)
	}
	return toDetail(todo), nil
}

// UpdateTodo implements TodoService.UpdateTodo
func (s *todoServiceImpl) UpdateTodo(ctx context.Context, id int64, req TodoRequest) (*TodoDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	todo, err := s.todoStore.FindByID(ctx, id)
	if err != nil {
		return nil, NewTodoServiceError("update_todo", "failed to load todo", err)
	}

	todo.Update(req.Name, req.Completed, s.now())

	if err := s.todoStore.Save(ctx, todo); err != nil {
		return nil, NewTodoServiceError("update_todo", "failed to save todo", err)
	}

	log.Debug("todo updated",
		slog.Int64("todo_id", todo.ID),
		slog.Bool("completed", todo.Completed))
	return toDetail(todo), nil
}

// DeleteTodo implements TodoService.DeleteTodo
func (s *todoServiceImpl) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.todoStore.DeleteByID(ctx, id); err != nil {
		return NewTodoServiceError("delete_todo", "failed to delete todo", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Debug("todo deleted", slog.Int64("todo_id", id))
	return nil
}

// CreateTodo implements TodoService.CreateTodo
func (s *todoServiceImpl) CreateTodo(ctx context.Context, req TodoRequest) (*TodoDetail, error) {
	todo := domain.NewTodo(req.Name, req.Completed, s.now())

	if err := s.todoStore.Save(ctx, todo); err != nil {
		return nil, NewTodoServiceError("create_todo", "failed to save todo", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("todo created",
		slog.Int64("todo_id", todo.ID))
	return toDetail(todo), nil
}

// GetTodos implements TodoService.GetTodos
//
// A zero limit is resolved to the current row count before the page is
// fetched. The two reads are not isolated from concurrent writers, so the
// result may miss or include rows written in between.
func (s *todoServiceImpl) GetTodos(ctx context.Context, skip, limit int) ([]TodoListItem, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if skip < 0 {
		return nil, domain.NewValidationError("skip", "must not be negative", nil)
	}
	if limit < 0 {
		return nil, domain.NewValidationError("limit", "must not be negative", nil)
	}

	effectiveLimit := int64(limit)
	if effectiveLimit == 0 {
		count, err := s.todoStore.Count(ctx)
		if err != nil {
			return nil, NewTodoServiceError("get_todos", "failed to count todos", err)
		}
		effectiveLimit = count
	}

	items := []TodoListItem{}
	if effectiveLimit == 0 {
		return items, nil
	}

	offset := int64(skip) * effectiveLimit
	todos, err := s.todoStore.FindPage(ctx, offset, effectiveLimit)
	if err != nil {
		return nil, NewTodoServiceError("get_todos", "failed to load page", err)
	}

	for _, todo := range todos {
		items = append(items, s.toListItem(todo))
	}

	log.Debug("listed todos",
		slog.Int("skip", skip),
		slog.Int64("limit", effectiveLimit),
		slog.Int("count", len(items)))
	return items, nil
}

// URLFor returns the link for the todo with the given ID.
func URLFor(baseURL string, id int64) string {
	return baseURL + strconv.FormatInt(id, 10)
}

func (s *todoServiceImpl) toListItem(todo *domain.Todo) TodoListItem {
	return TodoListItem{
		ID:          todo.ID,
		Name:        todo.Name,
		Completed:   todo.Completed,
		CompletedAt: todo.CompletedAt,
		URL:         URLFor(s.baseURL, todo.ID),
	}
}

func toDetail(todo *domain.Todo) *TodoDetail {
	return &TodoDetail{
		ID:          todo.ID,
		Name:        todo.Name,
		Completed:   todo.Completed,
		CompletedAt: todo.CompletedAt,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}
