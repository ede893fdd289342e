package repository

import (
	"context"

	"github.com/mahmoudaladin7/To-Do-List/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// GetByEmail expects an already-normalized (trimmed, lowercased) email.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
