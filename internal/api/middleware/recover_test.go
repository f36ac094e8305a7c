package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	t.Run("panic becomes server error", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("nil map write")
		})

		rr := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			Recover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/todos/1", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"500","error":"Server Error"}`, rr.Body.String())
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			Recover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})

	t.Run("no panic", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		rr := httptest.NewRecorder()
		Recover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/todos/1", nil))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
