package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/service"
	"github.com/phrazzld/todo-api/internal/store"
)

// ErrorCode pairs an HTTP status with the fixed message clients see.
type ErrorCode struct {
	Status  int
	Message string
}

// Error codes the API can answer with.
var (
	ErrorCodeBadRequest          = ErrorCode{Status: http.StatusBadRequest, Message: "Bad Request"}
	ErrorCodeNotFound            = ErrorCode{Status: http.StatusNotFound, Message: "Not Found"}
	ErrorCodeUnauthorized        = ErrorCode{Status: http.StatusUnauthorized, Message: "Not Authorized"}
	ErrorCodeMethodNotAllowed    = ErrorCode{Status: http.StatusMethodNotAllowed, Message: "Method Not Allowed"}
	ErrorCodeInternalServerError = ErrorCode{Status: http.StatusInternalServerError, Message: "Server Error"}
)

// MapErrorToErrorCode maps internal errors to the error code sent to the
// client. Unknown errors become ErrorCodeInternalServerError so internal
// details are never exposed.
func MapErrorToErrorCode(err error) ErrorCode {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrTodoNotFound),
		errors.Is(err, store.ErrNotFound):
		return ErrorCodeNotFound

	// Authentication errors
	case errors.Is(err, domain.ErrUnauthorized):
		return ErrorCodeUnauthorized

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return ErrorCodeBadRequest

	// Default: internal server error
	default:
		return ErrorCodeInternalServerError
	}
}

// HandleAPIError maps err to an error code, logs the redacted cause and
// writes the error body.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	RespondWithErrorCode(w, r, MapErrorToErrorCode(err), err)
}

// RespondWithErrorCode writes the error body for code and logs err.
func RespondWithErrorCode(w http.ResponseWriter, r *http.Request, code ErrorCode, err error) {
	shared.RespondWithErrorAndLog(w, r, code.Status, code.Message, err)
}

// NotFoundHandler answers requests for unknown routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, ErrorCodeNotFound.Status, ErrorCodeNotFound.Message)
}

// MethodNotAllowedHandler answers requests using a method the route does not serve.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, ErrorCodeMethodNotAllowed.Status, ErrorCodeMethodNotAllowed.Message)
}
