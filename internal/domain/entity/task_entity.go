package entity

import (
	"time"
)

// TaskStatus is opaque business data on a task; the lifecycle layer only
// validates membership, it does not enforce transitions between values.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// Valid reports whether s is one of the allowed status values.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task belongs to exactly one user; every read and write is scoped by
// UserID at the repository level.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	Status      TaskStatus
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
