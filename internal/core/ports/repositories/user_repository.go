package repositories

import (
	"context"

	"github.com/tubeview/tubeview_backend/internal/core/domain"
)

// UserRepository persists and looks up user identity records.
type UserRepository interface {
	// CreateUser inserts the user and returns it with the store-assigned ID.
	// Returns apperrors.ErrDuplicate when username or email is already taken.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// FindUserByEmail returns apperrors.ErrNotFound when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindUserByID returns apperrors.ErrNotFound when no user matches.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
}
