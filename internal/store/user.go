package store

import (
	"context"

	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/query"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List retrieves users matching the descriptor. Filter, sort,
	// projection, skip and limit are applied in that order.
	List(ctx context.Context, d *query.Descriptor) ([]domain.User, error)

	// Count returns the number of users matching the descriptor's filter.
	// Sort, projection and pagination do not affect the result.
	Count(ctx context.Context, d *query.Descriptor) (int64, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist or the ID is
	// not a valid object ID.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// Create saves a new user to the store, assigning its ID.
	Create(ctx context.Context, user *domain.User) error

	// Update replaces the stored document for the user's ID.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id string) error

	// ExistsByEmail reports whether any user owns the given email.
	// This backs the uniqueness pre-check on create and update; the
	// check-then-write sequence is not atomic, so two concurrent writers
	// can both pass it. That race is a documented property of the design.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
