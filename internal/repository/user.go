package repository

import (
	"context"
	"errors"

	"user-manager/internal/domain"
)

var (
	// ErrNotFound indicates that no row matched the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail indicates the email column's unique constraint was hit.
	ErrDuplicateEmail = errors.New("duplicate email")
	// ErrDuplicateUsername indicates the username column's unique constraint was hit.
	ErrDuplicateUsername = errors.New("duplicate username")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) (bool, error)
}
