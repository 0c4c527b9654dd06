package services

import (
	"context"

	"github.com/tubeview/tubeview_backend/internal/core/domain"
	"github.com/tubeview/tubeview_backend/internal/dto"
	"github.com/tubeview/tubeview_backend/internal/utils"
)

// UserSvcFacade exposes account creation and credential verification.
type UserSvcFacade interface {
	// Register returns apperrors.ErrDuplicate when the username or email is taken.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	// Authenticate returns apperrors.ErrUnauthorized on a missing user or a
	// password mismatch, without distinguishing the two.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// GetUser returns apperrors.ErrNotFound when the account no longer exists.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
}

// TokenSvcFacade mints and verifies stateless session tokens.
type TokenSvcFacade interface {
	IssueToken(user *domain.User) (string, error)
	// VerifyToken returns apperrors.ErrForbidden for a malformed, forged or
	// expired token.
	VerifyToken(tokenString string) (*utils.SessionClaims, error)
}

// ActivitySvcFacade exposes per-user history and favorites operations.
type ActivitySvcFacade interface {
	AddHistory(ctx context.Context, userID int64, req dto.AddHistoryRequest) error
	ListHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error)
	DeleteHistory(ctx context.Context, userID int64, entryID int64) error
	ClearHistory(ctx context.Context, userID int64) error
	AddFavorite(ctx context.Context, userID int64, req dto.AddFavoriteRequest) error
	ListFavorites(ctx context.Context, userID int64) ([]domain.FavoriteEntry, error)
}

// CatalogSvcFacade exposes the external video catalog.
type CatalogSvcFacade interface {
	// Search returns apperrors.ErrValidation for an empty query.
	Search(ctx context.Context, query string, maxResults int64) ([]domain.VideoSummary, error)
	GetVideo(ctx context.Context, videoID string) (*domain.VideoDetail, error)
	Popular(ctx context.Context, maxResults int64) ([]domain.VideoSummary, error)
}

// ServiceContainer bundles every service facade the handlers need.
type ServiceContainer struct {
	User     UserSvcFacade
	Token    TokenSvcFacade
	Activity ActivitySvcFacade
	Catalog  CatalogSvcFacade
}
