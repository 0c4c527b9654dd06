package repositories

import (
	"context"

	"github.com/tubeview/tubeview_backend/internal/core/domain"
)

// HistoryRepository persists per-user watch/search history rows.
type HistoryRepository interface {
	SaveHistoryEntry(ctx context.Context, entry domain.HistoryEntry) error
	// FindHistoryByUser returns the owner's entries newest first, capped at limit.
	FindHistoryByUser(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error)
	// DeleteHistoryEntry removes the row only when it belongs to userID.
	// A missing row and a cross-owner row are the same apperrors.ErrNotFound.
	DeleteHistoryEntry(ctx context.Context, userID int64, entryID int64) error
	// ClearHistory removes all of the owner's rows; deleting nothing is not an error.
	ClearHistory(ctx context.Context, userID int64) error
}

// FavoriteRepository persists per-user saved videos.
type FavoriteRepository interface {
	// SaveFavorite returns apperrors.ErrDuplicate when (user, video) already exists.
	// The store's unique constraint is the final authority on duplicates.
	SaveFavorite(ctx context.Context, entry domain.FavoriteEntry) error
	// FindFavoritesByUser returns the owner's entries newest first.
	FindFavoritesByUser(ctx context.Context, userID int64) ([]domain.FavoriteEntry, error)
}
