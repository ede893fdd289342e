package repository

import (
	"context"

	"github.com/mahmoudaladin7/To-Do-List/internal/domain/entity"
)

// SortKey is a whitelisted task ordering column.
type SortKey string

const (
	SortByCreatedAt SortKey = "created_at"
	SortByDueDate   SortKey = "due_date"
	SortByStatus    SortKey = "status"
)

// TaskQuery is the plan produced by the query builder and executed by the
// repository. OwnerID is never empty: the owner predicate is the isolation
// guarantee and must be the first clause of every query built from it.
type TaskQuery struct {
	OwnerID string
	Status  *entity.TaskStatus
	Search  string // case-insensitive substring over title OR description; empty = no search clause
	Sort    SortKey
	Desc    bool
	Offset  int
	Limit   int
}

// TaskRepository defines the persistence operations the task lifecycle
// depends on. Lookups and writes that target a single task always take the
// owner id so ownership is enforced inside one query, never as a second step.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error)
	FindPage(ctx context.Context, q TaskQuery) ([]entity.Task, error)
	Count(ctx context.Context, q TaskQuery) (int64, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id, ownerID string) error
}
