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

// CreateUserRequest represents the request body for creating a user.
// Email format checking is left to the frontend; only presence is
// enforced here.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required"`
}

// UpdateUserRequest represents the request body for replacing user
// fields. Pointer fields distinguish "absent" from "set".
type UpdateUserRequest struct {
	Name         *string   `json:"name"`
	Email        *string   `json:"email"`
	PendingTasks *[]string `json:"pendingTasks"`
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users store.UserStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /users requests. The query parameters
// where/sort/select/skip/limit/count drive the returned document set;
// with count=true the data payload is a cardinality instead of a list.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	d, err := query.Parse(r.URL.Query())
	if err != nil {
		log.Debug("rejecting list query", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if d.Count {
		n, err := h.users.Count(r.Context(), d)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Error: Unable to retrieve results from database.", err)
			return
		}
		shared.RespondWithList(w, r, "Returning a count of documents.", n, d)
		return
	}

	users, err := h.users.List(r.Context(), d)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Error: Unable to retrieve results from database.", err)
		return
	}

	shared.RespondWithList(w, r, "Returning a list of documents.", users, d)
}

// CreateUser handles POST /users requests.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Error: Invalid request body.")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Validation Error: A valid name and email is required.", err)
		return
	}

	// Check-then-insert: not atomic. Two concurrent creates for the same
	// email can both pass this check; that race is an accepted property
	// of the design. An errored check is treated the same as a taken
	// email rather than admitting a possible duplicate.
	exists, err := h.users.ExistsByEmail(r.Context(), req.Email)
	if err != nil || exists {
		shared.RespondWithErrorAndLog(w, r, http.StatusConflict,
			"Error: This email already exists.", err)
		return
	}

	user, err := domain.NewUser(req.Name, req.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if err := h.users.Create(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Error: There was a problem adding the user.", err)
		return
	}

	log.Debug("user created", slog.String("user_id", user.ID.Hex()))
	shared.RespondWithData(w, r, http.StatusCreated, "New user was added.", user)
}

// GetUser handles GET /users/{id} requests.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation Error: An id is required.")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "Returning user.", user)
}

// UpdateUser handles PUT /users/{id} requests. Fields present in the
// body overwrite the stored document; absent fields are left untouched.
// An email change re-runs the same uniqueness check as create.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation Error: An id is required.")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Error: Invalid request body.")
		return
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.PendingTasks != nil {
		user.PendingTasks = *req.PendingTasks
	}
	if req.Email != nil && *req.Email != "" && *req.Email != user.Email {
		exists, err := h.users.ExistsByEmail(r.Context(), *req.Email)
		if err != nil || exists {
			shared.RespondWithErrorAndLog(w, r, http.StatusConflict,
				"Error: This email already exists.", err)
			return
		}
		user.Email = *req.Email
	}

	if err := h.users.Update(r.Context(), user); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("user updated", slog.String("user_id", user.ID.Hex()))
	shared.RespondWithData(w, r, http.StatusOK, "User was updated.", user)
}

// DeleteUser handles DELETE /users/{id} requests.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation Error: An id is required.")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("user deleted", slog.String("user_id", id))
	shared.RespondWithData(w, r, http.StatusOK, "Deleted User.", []any{})
}
