package application

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mahmoudaladin7/To-Do-List/internal/domain/entity"
	repo "github.com/mahmoudaladin7/To-Do-List/internal/domain/repository"
	"github.com/mahmoudaladin7/To-Do-List/pkg/apperr"
	"github.com/mahmoudaladin7/To-Do-List/pkg/helpers"
)

const basicPrefix = "Basic "

// The unknown-email and wrong-password paths must produce byte-identical
// failures so the API never leaks which emails are registered.
const (
	msgAuthRequired       = "Authentication required"
	msgMalformedAuth      = "Invalid Authorization header"
	msgInvalidCredentials = "Invalid credentials"
)

// AuthenticatedUser is the request-scoped identity produced by VerifyBasic.
// It is never persisted and carries nothing beyond what handlers need.
type AuthenticatedUser struct {
	ID    string
	Email string
}

type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

// NormalizeEmail trims and lowercases an email; the same normalization is
// applied at registration and at every credential check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. Registration is the one operation that
// cannot require authentication: a fresh identity has nothing to present yet.
func (s *UserService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	normalized := NormalizeEmail(email)

	existing, err := s.Repo.GetByEmail(ctx, normalized)
	if err != nil && apperr.KindOf(err) != apperr.NotFound {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "Email already registered")
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, err, "hash password")
	}

	u := &entity.User{Email: normalized, PasswordHash: hash}
	// The unique constraint is the real guard; the lookup above only gives a
	// friendlier fast path. A lost race still maps to Conflict in the repo.
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, nil
}

// VerifyBasic proves a request's identity from the raw Authorization header.
// No session state is involved; every request re-verifies from scratch.
func (s *UserService) VerifyBasic(ctx context.Context, header string) (AuthenticatedUser, error) {
	if !strings.HasPrefix(header, basicPrefix) {
		return AuthenticatedUser{}, apperr.New(apperr.Unauthenticated, msgAuthRequired)
	}

	decoded, err := base64.StdEncoding.DecodeString(header[len(basicPrefix):])
	if err != nil {
		return AuthenticatedUser{}, apperr.New(apperr.Unauthenticated, msgMalformedAuth)
	}

	// Split at the first colon only: passwords may themselves contain colons.
	sep := strings.Index(string(decoded), ":")
	if sep == -1 {
		return AuthenticatedUser{}, apperr.New(apperr.Unauthenticated, msgMalformedAuth)
	}
	email := NormalizeEmail(string(decoded[:sep]))
	password := string(decoded[sep+1:])

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return AuthenticatedUser{}, apperr.New(apperr.Unauthenticated, msgInvalidCredentials)
		}
		return AuthenticatedUser{}, err
	}

	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return AuthenticatedUser{}, apperr.New(apperr.Unauthenticated, msgInvalidCredentials)
	}

	return AuthenticatedUser{ID: u.ID, Email: u.Email}, nil
}
