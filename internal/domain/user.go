package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common validation errors
var (
	ErrEmptyName  = errors.New("name cannot be empty")
	ErrEmptyEmail = errors.New("email cannot be empty")
)

// User represents a registered user of the task board.
// PendingTasks holds the IDs of tasks currently assigned to the user;
// it is a soft reference with no integrity enforcement against the
// tasks collection.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name"          json:"name"`
	Email        string             `bson:"email"         json:"email"`
	PendingTasks []string           `bson:"pendingTasks"  json:"pendingTasks"`
	DateCreated  time.Time          `bson:"dateCreated"   json:"dateCreated"`
}

// NewUser creates a new User with the given name and email.
// PendingTasks starts empty and DateCreated is set to the current time;
// the ID is assigned by the store at insert.
// Returns an error if validation fails.
func NewUser(name, email string) (*User, error) {
	user := &User{
		Name:         name,
		Email:        email,
		PendingTasks: []string{},
		DateCreated:  time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	return nil
}
