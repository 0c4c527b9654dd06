package providers

import (
	"context"

	"github.com/tubeview/tubeview_backend/internal/core/domain"
)

// VideoProvider is the outbound port to the external video metadata API.
// Every call is a single attempt; no caching or retry happens behind it.
type VideoProvider interface {
	// Search returns up to maxResults video summaries for the query.
	Search(ctx context.Context, query string, maxResults int64) ([]domain.VideoSummary, error)
	// GetVideo returns apperrors.ErrNotFound when the provider has no such video.
	GetVideo(ctx context.Context, videoID string) (*domain.VideoDetail, error)
	// Popular returns the provider's regional most-popular chart.
	Popular(ctx context.Context, maxResults int64) ([]domain.VideoSummary, error)
}
