package middleware

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api"
)

// Recover turns a panic in a handler into a Server Error response.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			api.RespondWithErrorCode(w, r, api.ErrorCodeInternalServerError,
				fmt.Errorf("panic: %v", rec))
		}()
		next.ServeHTTP(w, r)
	})
}
