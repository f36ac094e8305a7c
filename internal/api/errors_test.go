package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{"service not found", service.ErrTodoNotFound, ErrorCodeNotFound},
		{"store not found", store.ErrTodoNotFound, ErrorCodeNotFound},
		{"wrapped not found", fmt.Errorf("ctx: %w", service.ErrTodoNotFound), ErrorCodeNotFound},
		{"unauthorized", domain.ErrUnauthorized, ErrorCodeUnauthorized},
		{"validation", domain.NewValidationError("limit", "must not be negative", nil), ErrorCodeBadRequest},
		{"invalid id", domain.NewValidationError("todoId", "has invalid format", domain.ErrInvalidID), ErrorCodeBadRequest},
		{"invalid entity", store.ErrInvalidEntity, ErrorCodeBadRequest},
		{"unknown", errors.New("something else"), ErrorCodeInternalServerError},
		{"service error", &service.TodoServiceError{Operation: "x", Err: errors.New("y")}, ErrorCodeInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToErrorCode(tc.err))
		})
	}
}

func TestErrorCodeMessages(t *testing.T) {
	assert.Equal(t, "Bad Request", ErrorCodeBadRequest.Message)
	assert.Equal(t, "Not Found", ErrorCodeNotFound.Message)
	assert.Equal(t, "Not Authorized", ErrorCodeUnauthorized.Message)
	assert.Equal(t, "Method Not Allowed", ErrorCodeMethodNotAllowed.Message)
	assert.Equal(t, "Server Error", ErrorCodeInternalServerError.Message)
}

func TestHandleAPIError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/todos/1", nil)
	rr := httptest.NewRecorder()

	HandleAPIError(rr, req, errors.New("pq: relation todos does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":"500","error":"Server Error"}`, rr.Body.String())
}

func TestFallbackHandlers(t *testing.T) {
	rr := httptest.NewRecorder()
	NotFoundHandler(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":"404","error":"Not Found"}`, rr.Body.String())

	rr = httptest.NewRecorder()
	MethodNotAllowedHandler(rr, httptest.NewRequest(http.MethodPatch, "/todos", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"status":"405","error":"Method Not Allowed"}`, rr.Body.String())
}
