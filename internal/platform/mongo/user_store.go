package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/query"
	"github.com/taskboard/api/internal/store"
)

// UserStore implements the store.UserStore interface using a MongoDB
// collection as the storage backend.
type UserStore struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewUserStore creates a MongoDB implementation of the UserStore
// interface. timeout bounds each store call; zero disables the bound.
func NewUserStore(db *mongo.Database, timeout time.Duration) *UserStore {
	return &UserStore{
		coll:    db.Collection(usersCollection),
		timeout: timeout,
	}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// List implements store.UserStore.List
func (s *UserStore) List(ctx context.Context, d *query.Descriptor) ([]domain.User, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	users := []domain.User{}
	if err := findAll(ctx, s.coll, d, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Count implements store.UserStore.Count
func (s *UserStore) Count(ctx context.Context, d *query.Descriptor) (int64, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return countAll(ctx, s.coll, d)
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	var user domain.User
	if err := findByID(ctx, s.coll, id, &user, store.ErrUserNotFound); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	oid, err := insertOne(ctx, s.coll, user)
	if err != nil {
		return err
	}

	user.ID = oid
	return nil
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return replaceByID(ctx, s.coll, user.ID, user, store.ErrUserNotFound)
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, id string) error {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return deleteByID(ctx, s.coll, id, store.ErrUserNotFound)
}

// ExistsByEmail implements store.UserStore.ExistsByEmail
func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := opContext(ctx, s.timeout)
	defer cancel()

	return existsByField(ctx, s.coll, "email", email)
}
