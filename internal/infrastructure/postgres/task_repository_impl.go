package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mahmoudaladin7/To-Do-List/internal/domain/entity"
	"github.com/mahmoudaladin7/To-Do-List/internal/domain/repository"
	"github.com/mahmoudaladin7/To-Do-List/pkg/apperr"
)

const taskColumns = "id, user_id, title, description, status, due_date, created_at, updated_at"

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (user_id, title, description, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, t.UserID, t.Title, t.Description, t.Status, t.DueDate, t.CreatedAt, t.UpdatedAt)

	if err := row.Scan(&t.ID); err != nil {
		return apperr.Wrap(apperr.Internal, err, "insert task")
	}
	return nil
}

func (r *TaskRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	// Both predicates in one query: ownership is never a second step.
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)

	t := &entity.Task{}
	if err := scanTask(row, t); err != nil {
		return nil, err
	}
	return t, nil
}

// whereClause renders the filter predicate of q starting at $1, owner first.
func whereClause(q repository.TaskQuery) (string, []any) {
	var sb strings.Builder
	args := []any{q.OwnerID}
	sb.WriteString("WHERE user_id = $1")

	if q.Status != nil {
		args = append(args, *q.Status)
		fmt.Fprintf(&sb, " AND status = $%d", len(args))
	}
	if q.Search != "" {
		args = append(args, "%"+escapeLike(q.Search)+"%")
		n := len(args)
		fmt.Fprintf(&sb, ` AND (title ILIKE $%d ESCAPE '\' OR description ILIKE $%d ESCAPE '\')`, n, n)
	}
	return sb.String(), args
}

func orderClause(q repository.TaskQuery) string {
	col := "created_at"
	switch q.Sort {
	case repository.SortByDueDate:
		col = "due_date"
	case repository.SortByStatus:
		col = "status"
	}
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	// Secondary id ordering keeps repeated identical queries stable.
	return fmt.Sprintf("ORDER BY %s %s, id %s", col, dir, dir)
}

func (r *TaskRepository) FindPage(ctx context.Context, q repository.TaskQuery) ([]entity.Task, error) {
	where, args := whereClause(q)
	args = append(args, q.Limit, q.Offset)
	sql := fmt.Sprintf("SELECT %s FROM tasks %s %s LIMIT $%d OFFSET $%d",
		taskColumns, where, orderClause(q), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "select tasks")
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0, q.Limit)
	for rows.Next() {
		var t entity.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status,
			&t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, apperr.Wrap(apperr.Internal, err, "scan task")
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "iterate tasks")
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, q repository.TaskQuery) (int64, error) {
	where, args := whereClause(q)
	var total int64
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM tasks "+where, args...).Scan(&total); err != nil {
		return 0, apperr.Wrap(apperr.Internal, err, "count tasks")
	}
	return total, nil
}

func (r *TaskRepository) Update(ctx context.Context, t *entity.Task) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $1, description = $2, status = $3, due_date = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`, t.Title, t.Description, t.Status, t.DueDate, t.UpdatedAt, t.ID, t.UserID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, err, "update task")
	}
	if res.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "Task not found")
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, ownerID string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgInvalidText {
			return apperr.New(apperr.NotFound, "Task not found")
		}
		return apperr.Wrap(apperr.Internal, err, "delete task")
	}
	if res.RowsAffected() == 0 {
		return apperr.New(apperr.NotFound, "Task not found")
	}
	return nil
}

func scanTask(row pgx.Row, t *entity.Task) error {
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Status,
		&t.DueDate, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.New(apperr.NotFound, "Task not found")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgInvalidText {
			return apperr.New(apperr.NotFound, "Task not found")
		}
		return apperr.Wrap(apperr.Internal, err, "select task")
	}
	return nil
}

// escapeLike escapes LIKE wildcards so search text is matched literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
