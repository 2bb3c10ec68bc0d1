package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskboard/api/internal/api"
	apiMiddleware "github.com/taskboard/api/internal/api/middleware"
	"github.com/taskboard/api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.CORSMiddleware)

	userHandler := api.NewUserHandler(app.userStore, app.logger)
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)

	// Preflight requests get an empty 200; the CORS middleware has
	// already set the headers.
	okHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithData(w, r, http.StatusOK,
				"Valid api routes are /api/tasks and /api/users", []any{})
		})

		r.Route("/users", func(r chi.Router) {
			r.Options("/", okHandler)
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)
			r.Get("/{id}", userHandler.GetUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Options("/", okHandler)
			r.Get("/", taskHandler.ListTasks)
			r.Post("/", taskHandler.CreateTask)
			r.Get("/{id}", taskHandler.GetTask)
			r.Put("/{id}", taskHandler.UpdateTask)
			r.Delete("/{id}", taskHandler.DeleteTask)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
