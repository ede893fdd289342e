package application

import (
	"strings"

	"github.com/mahmoudaladin7/To-Do-List/internal/domain/entity"
	repo "github.com/mahmoudaladin7/To-Do-List/internal/domain/repository"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListTasksInput is the validated filter/sort/pagination request for a task
// listing. Zero values mean "not supplied".
type ListTasksInput struct {
	Status string
	Search string
	Sort   string
	Order  string
	Page   int
	Limit  int
}

// BuildTaskQuery translates a list request into the query plan executed by
// the repository. Pure transformation, no I/O.
//
// The owner predicate always comes first and can never be omitted; unknown
// sort keys and orders fall back to created_at descending instead of
// erroring; the limit is clamped into [1, MaxLimit].
func BuildTaskQuery(ownerID string, in ListTasksInput) repo.TaskQuery {
	q := repo.TaskQuery{OwnerID: ownerID}

	if in.Status != "" {
		if st := entity.TaskStatus(in.Status); st.Valid() {
			q.Status = &st
		}
	}

	q.Search = strings.TrimSpace(in.Search)

	switch repo.SortKey(in.Sort) {
	case repo.SortByDueDate:
		q.Sort = repo.SortByDueDate
	case repo.SortByStatus:
		q.Sort = repo.SortByStatus
	default:
		q.Sort = repo.SortByCreatedAt
	}
	q.Desc = in.Order != "asc"

	limit := in.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	q.Limit = limit

	page := in.Page
	if page < 1 {
		page = DefaultPage
	}
	q.Offset = (page - 1) * limit

	return q
}
