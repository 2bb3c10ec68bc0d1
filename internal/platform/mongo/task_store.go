package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/query"
	"github.com/taskboard/api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a MongoDB
// collection as the storage backend.
type TaskStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewTaskStore creates a MongoDB implementation of the TaskStore
// interface. timeout bounds each store call; zero disables the bound.
func NewTaskStore(db *mongo.Database, timeout time.Duration) *TaskStore {
	return &TaskStore{
		coll:    db.Collection(tasksCollection),
		timeout: timeout,
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context, d *query.Descriptor) ([]domain.Task, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	tasks := []domain.Task{}
	if err := findAll(ctx, s.coll, d, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Count implements store.TaskStore.Count
func (s *TaskStore) Count(ctx context.Context, d *query.Descriptor) (int64, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return countAll(ctx, s.coll, d)
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var task domain.Task
	if err := findByID(ctx, s.coll, id, &task, store.ErrTaskNotFound); err != nil {
		return nil, err
	}
	return &task, nil
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	oid, err := insertOne(ctx, s.coll, task)
	if err != nil {
		return err
	}

	task.ID = oid
	return nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return replaceByID(ctx, s.coll, task.ID, task, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return deleteByID(ctx, s.coll, id, store.ErrTaskNotFound)
}
