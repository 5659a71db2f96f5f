package models

import (
	"time"

	"github.com/google/uuid"
)

// Group is a user-defined label clustering related tasks. Membership lives on
// the task side (Task.GroupID); a group carries no task list of its own.
type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	IsDefault bool      `json:"is_default,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
