package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mahmoudaladin7/To-Do-List/internal/domain/entity"
	repo "github.com/mahmoudaladin7/To-Do-List/internal/domain/repository"
	"github.com/mahmoudaladin7/To-Do-List/pkg/apperr"
	"github.com/mahmoudaladin7/To-Do-List/pkg/patch"
)

// TaskService owns the task lifecycle. Its real job is the ownership gate:
// every repository call it makes is scoped by the authenticated owner id, and
// a task owned by someone else is indistinguishable from one that does not
// exist.
type TaskService struct {
	Repo   repo.TaskRepository
	Logger *logrus.Logger
}

func NewTaskService(r repo.TaskRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Repo: r, Logger: logger}
}

// CreateTaskInput is the pre-validated create payload. DueDate is an RFC3339
// string, empty when not supplied.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      string
	DueDate     string
}

// UpdateTaskInput carries presence-tagged fields: an unset field leaves the
// stored value untouched, an explicit null clears it where the column is
// nullable.
type UpdateTaskInput struct {
	Title       patch.Field[string] `json:"title"`
	Description patch.Field[string] `json:"description"`
	Status      patch.Field[string] `json:"status"`
	DueDate     patch.Field[string] `json:"dueDate"`
}

// ListMeta describes one page of a listing.
type ListMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type ListTasksResult struct {
	Data []entity.Task
	Meta ListMeta
}

func validationFailed(details map[string]string) error {
	return apperr.New(apperr.InvalidInput, "Validation failed").WithDetails(details)
}

func parseDueDate(raw string, details map[string]string) *time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		details["dueDate"] = "must be a valid datetime"
		return nil
	}
	return &t
}

// Create persists a new task for ownerID. The boundary validates the payload
// already; the re-checks here are defensive so a malformed input can never
// reach the repository.
func (s *TaskService) Create(ctx context.Context, ownerID string, in CreateTaskInput) (*entity.Task, error) {
	details := map[string]string{}

	if in.Title == "" {
		details["title"] = "is required"
	}

	status := entity.StatusPending
	if in.Status != "" {
		status = entity.TaskStatus(in.Status)
		if !status.Valid() {
			details["status"] = "must be one of: pending, in_progress, done"
		}
	}

	var due *time.Time
	if in.DueDate != "" {
		due = parseDueDate(in.DueDate, details)
	}

	if len(details) > 0 {
		return nil, validationFailed(details)
	}

	now := time.Now().UTC()
	t := &entity.Task{
		UserID:      ownerID,
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		DueDate:     due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "user_id": ownerID}).Debug("task created")
	}
	return t, nil
}

// Get fetches a single task scoped by both id and owner in one query; there
// is no fetch-then-check step that could leak existence.
func (s *TaskService) Get(ctx context.Context, ownerID, taskID string) (*entity.Task, error) {
	return s.Repo.GetByIDAndOwner(ctx, taskID, ownerID)
}

// List runs the page query and the count query over the same plan, so items
// and totals always reflect one filter predicate.
func (s *TaskService) List(ctx context.Context, ownerID string, in ListTasksInput) (*ListTasksResult, error) {
	q := BuildTaskQuery(ownerID, in)

	items, err := s.Repo.FindPage(ctx, q)
	if err != nil {
		return nil, err
	}
	total, err := s.Repo.Count(ctx, q)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if totalPages < 1 {
		totalPages = 1
	}
	return &ListTasksResult{
		Data: items,
		Meta: ListMeta{
			Page:       q.Offset/q.Limit + 1,
			Limit:      q.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}, nil
}

// Update confirms ownership and existence first and does not attempt the
// write at all when that fails. Only fields present in the input change.
func (s *TaskService) Update(ctx context.Context, ownerID, taskID string, in UpdateTaskInput) (*entity.Task, error) {
	t, err := s.Repo.GetByIDAndOwner(ctx, taskID, ownerID)
	if err != nil {
		return nil, err
	}

	details := map[string]string{}

	if in.Title.Set() {
		if in.Title.Null() || in.Title.Value() == "" {
			details["title"] = "must not be empty"
		} else {
			t.Title = in.Title.Value()
		}
	}
	if in.Description.Set() {
		if in.Description.Null() {
			t.Description = nil
		} else {
			v := in.Description.Value()
			t.Description = &v
		}
	}
	if in.Status.Set() {
		st := entity.TaskStatus(in.Status.Value())
		if in.Status.Null() || !st.Valid() {
			details["status"] = "must be one of: pending, in_progress, done"
		} else {
			t.Status = st
		}
	}
	if in.DueDate.Set() {
		if in.DueDate.Null() {
			t.DueDate = nil
		} else {
			t.DueDate = parseDueDate(in.DueDate.Value(), details)
		}
	}

	if len(details) > 0 {
		return nil, validationFailed(details)
	}

	t.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete hard-deletes an owned task. A second delete of the same id reports
// NotFound, not a silent success.
func (s *TaskService) Delete(ctx context.Context, ownerID, taskID string) error {
	if err := s.Repo.Delete(ctx, taskID, ownerID); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"task_id": taskID, "user_id": ownerID}).Debug("task deleted")
	}
	return nil
}
