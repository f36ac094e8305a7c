package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/todo-api/internal/api"
	"github.com/phrazzld/todo-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Trace(app.logger))
	r.Use(app.metrics.Handler)
	r.Use(middleware.Recover)

	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.MethodNotAllowedHandler)

	todoHandler := api.NewTodoHandler(app.todoService, app.logger)

	todoPath := "/todos/{" + api.TodoIDParam + "}"

	r.Get("/todos", todoHandler.ListTodos)
	r.Get(todoPath, todoHandler.GetTodo)

	// Mutating routes require an apikey header
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAPIKey)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Put(todoPath, todoHandler.UpdateTodo)
		r.Delete(todoPath, todoHandler.DeleteTodo)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
