package domain

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task validation errors
var (
	ErrMissingDeadline = errors.New("deadline is required")
)

// DefaultAssignedUserName is the display name used for tasks that have
// no assigned user.
const DefaultAssignedUserName = "unassigned"

// Deadline formats accepted from clients, tried in order.
var deadlineFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Task represents a unit of work on the task board.
// AssignedUser holds the ID of the user the task is assigned to (empty
// means unassigned) and AssignedUserName is a denormalized copy of that
// user's display name, kept for read convenience only.
type Task struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"    json:"_id,omitempty"`
	Name             string             `bson:"name"             json:"name"`
	Description      string             `bson:"description"      json:"description"`
	Deadline         time.Time          `bson:"deadline"         json:"deadline"`
	Completed        bool               `bson:"completed"        json:"completed"`
	AssignedUser     string             `bson:"assignedUser"     json:"assignedUser"`
	AssignedUserName string             `bson:"assignedUserName" json:"assignedUserName"`
	DateCreated      time.Time          `bson:"dateCreated"      json:"dateCreated"`
}

// NewTask creates a new Task with the given required name and deadline
// and the optional remaining fields. Description defaults to the empty
// string, AssignedUser to the empty string (unassigned) and
// AssignedUserName to "unassigned". DateCreated is set to the current
// time; the ID is assigned by the store at insert.
// Returns an error if validation fails.
func NewTask(name string, deadline time.Time, description string, completed bool, assignedUser, assignedUserName string) (*Task, error) {
	if assignedUserName == "" {
		assignedUserName = DefaultAssignedUserName
	}

	task := &Task{
		Name:             name,
		Description:      description,
		Deadline:         deadline,
		Completed:        completed,
		AssignedUser:     assignedUser,
		AssignedUserName: assignedUserName,
		DateCreated:      time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.Name == "" {
		return ErrEmptyName
	}

	if t.Deadline.IsZero() {
		return ErrMissingDeadline
	}

	return nil
}

// ParseDeadline parses a client-supplied deadline string. It accepts
// RFC 3339 timestamps as well as bare dates like "2024-01-01".
func ParseDeadline(value string) (time.Time, error) {
	for _, layout := range deadlineFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrMissingDeadline
}

// CoerceCompleted applies the loose truthiness rules for the completed
// flag at task creation: boolean true and the literal string "true" both
// count as completed, anything else does not.
func CoerceCompleted(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
