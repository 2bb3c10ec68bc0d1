package api

import (
	"context"

	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/query"
	"github.com/taskboard/api/internal/store"
)

// MockUserStore is a mock implementation of store.UserStore for testing
type MockUserStore struct {
	ListFn          func(ctx context.Context, d *query.Descriptor) ([]domain.User, error)
	CountFn         func(ctx context.Context, d *query.Descriptor) (int64, error)
	GetByIDFn       func(ctx context.Context, id string) (*domain.User, error)
	CreateFn        func(ctx context.Context, user *domain.User) error
	UpdateFn        func(ctx context.Context, user *domain.User) error
	DeleteFn        func(ctx context.Context, id string) error
	ExistsByEmailFn func(ctx context.Context, email string) (bool, error)
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) List(ctx context.Context, d *query.Descriptor) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, d)
	}
	return []domain.User{}, nil
}

func (m *MockUserStore) Count(ctx context.Context, d *query.Descriptor) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, d)
	}
	return 0, nil
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return nil
}

func (m *MockUserStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *MockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}
	return false, nil
}

// MockTaskStore is a mock implementation of store.TaskStore for testing
type MockTaskStore struct {
	ListFn    func(ctx context.Context, d *query.Descriptor) ([]domain.Task, error)
	CountFn   func(ctx context.Context, d *query.Descriptor) (int64, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.Task, error)
	CreateFn  func(ctx context.Context, task *domain.Task) error
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id string) error
}

var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) List(ctx context.Context, d *query.Descriptor) ([]domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, d)
	}
	return []domain.Task{}, nil
}

func (m *MockTaskStore) Count(ctx context.Context, d *query.Descriptor) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx, d)
	}
	return 0, nil
}

func (m *MockTaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}
	return nil
}

func (m *MockTaskStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
