package services

import (
	"context"
	"fmt"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	"github.com/tubeview/tubeview_backend/internal/core/ports/providers"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
)

const defaultMaxResults = 20

type catalogService struct {
	provider providers.VideoProvider
}

// NewCatalogService creates the video catalog facade over the external provider.
func NewCatalogService(provider providers.VideoProvider) portssvc.CatalogSvcFacade {
	return &catalogService{provider: provider}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) Search(ctx context.Context, query string, maxResults int64) ([]domain.VideoSummary, error) {
	if query == "" {
		return nil, fmt.Errorf("search query required: %w", apperrors.ErrValidation)
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return s.provider.Search(ctx, query, maxResults)
}

func (s *catalogService) GetVideo(ctx context.Context, videoID string) (*domain.VideoDetail, error) {
	return s.provider.GetVideo(ctx, videoID)
}

func (s *catalogService) Popular(ctx context.Context, maxResults int64) ([]domain.VideoSummary, error) {
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return s.provider.Popular(ctx, maxResults)
}
