package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrace(t *testing.T) {
	logBuf, base := logger.NewTestLogger(t)

	var traceID string
	var ctxLogger *slog.Logger
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		ctxLogger = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	Trace(base)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/todos", nil))

	require.NotEmpty(t, traceID)
	assert.Equal(t, traceID, rr.Header().Get(shared.TraceIDHeader))
	require.NotNil(t, ctxLogger)
	logger.AssertLogField(t, logBuf, "trace_id", traceID)
	logger.AssertLogContains(t, logBuf, "request started")
}

func TestTrace_NilLogger(t *testing.T) {
	rr := httptest.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	assert.NotPanics(t, func() {
		Trace(nil)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.NotEmpty(t, rr.Header().Get(shared.TraceIDHeader))
}
