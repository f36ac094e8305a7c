package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/todo-api/internal/api"
	"github.com/phrazzld/todo-api/internal/domain"
)

// APIKeyHeader is the request header that must be present on mutating routes.
const APIKeyHeader = "apikey"

// RequireAPIKey rejects requests whose apikey header is missing or blank.
// The key's value is not checked against anything.
func RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(r.Header.Get(APIKeyHeader)) == "" {
			api.RespondWithErrorCode(w, r, api.ErrorCodeUnauthorized, domain.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
