package store

import (
	"context"

	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/query"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// List retrieves tasks matching the descriptor. Filter, sort,
	// projection, skip and limit are applied in that order.
	List(ctx context.Context, d *query.Descriptor) ([]domain.Task, error)

	// Count returns the number of tasks matching the descriptor's filter.
	Count(ctx context.Context, d *query.Descriptor) (int64, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist or the ID is
	// not a valid object ID.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// Create saves a new task to the store, assigning its ID.
	Create(ctx context.Context, task *domain.Task) error

	// Update replaces the stored document for the task's ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}
