package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard/api/internal/api/shared"
	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/platform/logger"
	"github.com/taskboard/api/internal/query"
	"github.com/taskboard/api/internal/store"
)

// CreateTaskRequest represents the request body for creating a task.
// Completed is typed loosely because clients send both the boolean true
// and the literal string "true"; the domain coercion rules decide.
type CreateTaskRequest struct {
	Name             string `json:"name"     validate:"required"`
	Deadline         string `json:"deadline" validate:"required"`
	Description      string `json:"description"`
	Completed        any    `json:"completed"`
	AssignedUser     string `json:"assignedUser"`
	AssignedUserName string `json:"assignedUserName"`
}

// UpdateTaskRequest represents the request body for replacing task
// fields. Pointer fields distinguish "absent" from "set"; absent fields
// are left untouched and no defaulting happens on update.
type UpdateTaskRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Deadline         *string `json:"deadline"`
	Completed        *bool   `json:"completed"`
	AssignedUser     *string `json:"assignedUser"`
	AssignedUserName *string `json:"assignedUserName"`
}

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(tasks store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /tasks requests.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	d, err := query.Parse(r.URL.Query())
	if err != nil {
		log.Debug("rejecting list query", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if d.Count {
		n, err := h.tasks.Count(r.Context(), d)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Error: Unable to retrieve results from database.", err)
			return
		}
		shared.RespondWithList(w, r, "Returning a count of documents.", n, d)
		return
	}

	tasks, err := h.tasks.List(r.Context(), d)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Error: Unable to retrieve results from database.", err)
		return
	}

	shared.RespondWithList(w, r, "Returning a list of documents.", tasks, d)
}

// CreateTask handles POST /tasks requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Error: Invalid request body.")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Validation Error: A name and deadline for this task is required.", err)
		return
	}

	deadline, err := domain.ParseDeadline(req.Deadline)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Validation Error: A name and deadline for this task is required.", err)
		return
	}

	task, err := domain.NewTask(
		req.Name,
		deadline,
		req.Description,
		domain.CoerceCompleted(req.Completed),
		req.AssignedUser,
		req.AssignedUserName,
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.tasks.Create(r.Context(), task); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Error: There was a problem adding the task.", err)
		return
	}

	log.Debug("task created", slog.String("task_id", task.ID.Hex()))
	shared.RespondWithData(w, r, http.StatusCreated, "New task was added.", task)
}

// GetTask handles GET /tasks/{id} requests.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation Error: An id is required.")
		return
	}

	task, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "Returning task.", task)
}

// UpdateTask handles PUT /tasks/{id} requests. Each field present in the
// body overwrites the stored value independently; absent fields are left
// untouched.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation Error: An id is required.")
		return
	}

	task, err := h.tasks.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Error: Invalid request body.")
		return
	}

	if req.Name != nil && *req.Name != "" {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Deadline != nil && *req.Deadline != "" {
		deadline, err := domain.ParseDeadline(*req.Deadline)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
				"Validation Error: Invalid deadline.", err)
			return
		}
		task.Deadline = deadline
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.AssignedUser != nil {
		task.AssignedUser = *req.AssignedUser
	}
	if req.AssignedUserName != nil {
		task.AssignedUserName = *req.AssignedUserName
	}

	if err := h.tasks.Update(r.Context(), task); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task updated", slog.String("task_id", task.ID.Hex()))
	shared.RespondWithData(w, r, http.StatusOK, "Task was updated.", task)
}

// DeleteTask handles DELETE /tasks/{id} requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation Error: An id is required.")
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task deleted", slog.String("task_id", id))
	shared.RespondWithData(w, r, http.StatusOK, "Deleted Task.", []any{})
}
