package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service"
)

// TodoIDParam is the name of the path parameter carrying the todo ID.
const TodoIDParam = "todoId"

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService service.TodoService
	logger      *slog.Logger
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(todoService service.TodoService, logger *slog.Logger) *TodoHandler {
	if todoService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("todoService cannot be nil for TodoHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TodoHandler")
	}

	return &TodoHandler{
		todoService: todoService,
		logger:      logger.With(slog.String("component", "todo_handler")),
	}
}

// GetTodo handles GET /todos/{todoId} requests
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, TodoIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	todo, err := h.todoService.GetTodo(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// UpdateTodo handles PUT /todos/{todoId} requests
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, TodoIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	req, ok := h.decodeTodoRequest(w, r)
	if !ok {
		return
	}

	todo, err := h.todoService.UpdateTodo(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("todo updated via API", slog.Int64("todo_id", todo.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// DeleteTodo handles DELETE /todos/{todoId} requests
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, TodoIDParam)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.todoService.DeleteTodo(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateTodo handles POST /todos requests
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	req, ok := h.decodeTodoRequest(w, r)
	if !ok {
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("todo created via API", slog.Int64("todo_id", todo.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, todo)
}

// ListTodos handles GET /todos?skip=&limit= requests
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	if err := requirePagingValues(r.URL.Query()); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var query ListTodosQuery
	if err := shared.DecodeQuery(r, &query); err != nil {
		RespondWithErrorCode(w, r, ErrorCodeBadRequest, err)
		return
	}
	if err := shared.ValidateRequest(query); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	todos, err := h.todoService.GetTodos(r.Context(), *query.Skip, *query.Limit)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, todos)
}

// decodeTodoRequest parses and validates a create or update body. It writes
// a Bad Request response and returns false when the body is unusable.
func (h *TodoHandler) decodeTodoRequest(w http.ResponseWriter, r *http.Request) (service.TodoRequest, bool) {
	var body TodoRequestBody
	if err := shared.DecodeJSON(r, &body); err != nil {
		RespondWithErrorCode(w, r, ErrorCodeBadRequest, err)
		return service.TodoRequest{}, false
	}

	if err := shared.ValidateRequest(&body); err != nil {
		RespondWithErrorCode(w, r, ErrorCodeBadRequest,
			domain.NewValidationError("body", err.Error(), nil))
		return service.TodoRequest{}, false
	}

	return service.TodoRequest{
		Name:      body.Name,
		Completed: *body.Completed,
	}, true
}
