package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	portsrepo "github.com/tubeview/tubeview_backend/internal/core/ports/repositories"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/dto"
)

const historyListLimit = 50

type activityService struct {
	historyRepo  portsrepo.HistoryRepository
	favoriteRepo portsrepo.FavoriteRepository
}

// NewActivityService creates the history/favorites facade.
func NewActivityService(historyRepo portsrepo.HistoryRepository, favoriteRepo portsrepo.FavoriteRepository) portssvc.ActivitySvcFacade {
	return &activityService{
		historyRepo:  historyRepo,
		favoriteRepo: favoriteRepo,
	}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

func (s *activityService) AddHistory(ctx context.Context, userID int64, req dto.AddHistoryRequest) error {
	if req.VideoID == "" && req.SearchQuery == "" {
		return fmt.Errorf("video_id or search_query required: %w", apperrors.ErrValidation)
	}

	actionType := domain.ActionType(req.ActionType)
	if actionType == "" {
		actionType = domain.ActionWatch
	}

	entry := domain.HistoryEntry{
		UserID:       userID,
		VideoID:      req.VideoID,
		VideoTitle:   req.VideoTitle,
		ThumbnailURL: req.ThumbnailURL,
		SearchQuery:  req.SearchQuery,
		ActionType:   actionType,
		WatchedAt:    time.Now().UTC(),
	}

	if err := s.historyRepo.SaveHistoryEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to add history entry: %w", err)
	}
	return nil
}

func (s *activityService) ListHistory(ctx context.Context, userID int64) ([]domain.HistoryEntry, error) {
	entries, err := s.historyRepo.FindHistoryByUser(ctx, userID, historyListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

func (s *activityService) DeleteHistory(ctx context.Context, userID int64, entryID int64) error {
	// ErrNotFound passes through: a foreign-owned row is indistinguishable
	// from a missing one.
	return s.historyRepo.DeleteHistoryEntry(ctx, userID, entryID)
}

func (s *activityService) ClearHistory(ctx context.Context, userID int64) error {
	if err := s.historyRepo.ClearHistory(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *activityService) AddFavorite(ctx context.Context, userID int64, req dto.AddFavoriteRequest) error {
	if req.VideoID == "" {
		return fmt.Errorf("video_id required: %w", apperrors.ErrValidation)
	}

	entry := domain.FavoriteEntry{
		UserID:       userID,
		VideoID:      req.VideoID,
		VideoTitle:   req.VideoTitle,
		ThumbnailURL: req.ThumbnailURL,
		AddedAt:      time.Now().UTC(),
	}

	if err := s.favoriteRepo.SaveFavorite(ctx, entry); err != nil {
		// ErrDuplicate passes through for the handler's conflict mapping.
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (s *activityService) ListFavorites(ctx context.Context, userID int64) ([]domain.FavoriteEntry, error) {
	entries, err := s.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return entries, nil
}
