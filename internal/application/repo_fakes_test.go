package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mahmoudaladin7/To-Do-List/internal/domain/entity"
	repo "github.com/mahmoudaladin7/To-Do-List/internal/domain/repository"
	"github.com/mahmoudaladin7/To-Do-List/pkg/apperr"
)

// In-memory repository fakes used by the service tests. They mirror the
// postgres implementations' error mapping so services see the same kinds.

type memUserRepo struct {
	mu   sync.Mutex
	seq  int
	rows map[string]*entity.User // keyed by normalized email
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[u.Email]; ok {
		return apperr.New(apperr.Conflict, "Email already registered")
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%03d", r.seq)
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.rows[u.Email] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.rows {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperr.New(apperr.NotFound, "User not found")
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.rows[email]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "User not found")
	}
	cp := *u
	return &cp, nil
}

var _ repo.UserRepository = (*memUserRepo)(nil)

type memTaskRepo struct {
	mu   sync.Mutex
	seq  int
	rows map[string]*entity.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{rows: map[string]*entity.Task{}}
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.ID = fmt.Sprintf("task-%03d", r.seq)
	cp := *t
	r.rows[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByIDAndOwner(_ context.Context, id, ownerID string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok || t.UserID != ownerID {
		return nil, apperr.New(apperr.NotFound, "Task not found")
	}
	cp := *t
	return &cp, nil
}

func matches(q repo.TaskQuery, t *entity.Task) bool {
	if t.UserID != q.OwnerID {
		return false
	}
	if q.Status != nil && t.Status != *q.Status {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		inTitle := strings.Contains(strings.ToLower(t.Title), needle)
		inDesc := t.Description != nil && strings.Contains(strings.ToLower(*t.Description), needle)
		if !inTitle && !inDesc {
			return false
		}
	}
	return true
}

func (r *memTaskRepo) matching(q repo.TaskQuery) []entity.Task {
	var out []entity.Task
	for _, t := range r.rows {
		if matches(q, t) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if q.Desc {
			a, b = b, a
		}
		switch q.Sort {
		case repo.SortByDueDate:
			at, bt := a.DueDate, b.DueDate
			switch {
			case at == nil && bt == nil:
			case at == nil:
				return false
			case bt == nil:
				return true
			case !at.Equal(*bt):
				return at.Before(*bt)
			}
		case repo.SortByStatus:
			if a.Status != b.Status {
				return a.Status < b.Status
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	})
	return out
}

func (r *memTaskRepo) FindPage(_ context.Context, q repo.TaskQuery) ([]entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.matching(q)
	if q.Offset >= len(all) {
		return []entity.Task{}, nil
	}
	end := q.Offset + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[q.Offset:end], nil
}

func (r *memTaskRepo) Count(_ context.Context, q repo.TaskQuery) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.matching(q))), nil
}

func (r *memTaskRepo) Update(_ context.Context, t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.rows[t.ID]
	if !ok || cur.UserID != t.UserID {
		return apperr.New(apperr.NotFound, "Task not found")
	}
	cp := *t
	r.rows[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok || t.UserID != ownerID {
		return apperr.New(apperr.NotFound, "Task not found")
	}
	delete(r.rows, id)
	return nil
}

var _ repo.TaskRepository = (*memTaskRepo)(nil)
