// Package youtube adapts the YouTube Data API v3 to the catalog port.
// Every method is a single upstream attempt: no caching, no retries.
package youtube

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	"github.com/tubeview/tubeview_backend/internal/core/ports/providers"
)

// Client calls the YouTube Data API with an API key. A client built without
// a key is inert: every call returns apperrors.ErrMisconfigured so the rest
// of the API keeps serving.
type Client struct {
	svc    *yt.Service
	region string
}

var _ providers.VideoProvider = (*Client)(nil)

// NewClient builds a YouTube Data API client. Extra options (e.g. an
// endpoint override) are passed through to the generated service.
func NewClient(ctx context.Context, apiKey, region string, opts ...option.ClientOption) (*Client, error) {
	if region == "" {
		region = "US"
	}
	if apiKey == "" {
		return &Client{region: region}, nil
	}

	allOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := yt.NewService(ctx, allOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &Client{svc: svc, region: region}, nil
}

// Search runs a video-only search and maps each result to a summary.
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]domain.VideoSummary, error) {
	if c.svc == nil {
		return nil, apperrors.ErrMisconfigured
	}

	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(maxResults).
		Type("video").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: search: %v", apperrors.ErrUpstream, err)
	}

	videos := make([]domain.VideoSummary, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		videos = append(videos, domain.VideoSummary{
			ID:           item.Id.VideoId,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			Thumbnail:    pickThumbnailURL(mediumThumb(item.Snippet.Thumbnails), defaultThumb(item.Snippet.Thumbnails)),
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}

// GetVideo fetches snippet, contentDetails and statistics for one video.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*domain.VideoDetail, error) {
	if c.svc == nil {
		return nil, apperrors.ErrMisconfigured
	}

	resp, err := c.svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: videos.list: %v", apperrors.ErrUpstream, err)
	}
	if len(resp.Items) == 0 {
		return nil, apperrors.ErrNotFound
	}

	v := resp.Items[0]
	detail := &domain.VideoDetail{ID: v.Id}
	if v.Snippet != nil {
		detail.Title = v.Snippet.Title
		detail.Description = v.Snippet.Description
		detail.Thumbnail = pickThumbnailURL(standardThumb(v.Snippet.Thumbnails), highThumb(v.Snippet.Thumbnails))
		detail.ChannelTitle = v.Snippet.ChannelTitle
		detail.PublishedAt = v.Snippet.PublishedAt
	}
	if v.ContentDetails != nil {
		detail.Duration = v.ContentDetails.Duration
	}
	if v.Statistics != nil {
		detail.ViewCount = strconv.FormatUint(v.Statistics.ViewCount, 10)
		detail.LikeCount = strconv.FormatUint(v.Statistics.LikeCount, 10)
		detail.CommentCount = strconv.FormatUint(v.Statistics.CommentCount, 10)
	}
	return detail, nil
}

// Popular fetches the regional most-popular chart.
func (c *Client) Popular(ctx context.Context, maxResults int64) ([]domain.VideoSummary, error) {
	if c.svc == nil {
		return nil, apperrors.ErrMisconfigured
	}

	resp, err := c.svc.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Chart("mostPopular").
		RegionCode(c.region).
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: chart: %v", apperrors.ErrUpstream, err)
	}

	videos := make([]domain.VideoSummary, 0, len(resp.Items))
	for _, v := range resp.Items {
		summary := domain.VideoSummary{ID: v.Id}
		if v.Snippet != nil {
			summary.Title = v.Snippet.Title
			summary.Description = v.Snippet.Description
			summary.Thumbnail = pickThumbnailURL(mediumThumb(v.Snippet.Thumbnails), defaultThumb(v.Snippet.Thumbnails))
			summary.ChannelTitle = v.Snippet.ChannelTitle
			summary.PublishedAt = v.Snippet.PublishedAt
		}
		if v.ContentDetails != nil {
			summary.Duration = v.ContentDetails.Duration
		}
		if v.Statistics != nil {
			summary.ViewCount = strconv.FormatUint(v.Statistics.ViewCount, 10)
		}
		videos = append(videos, summary)
	}
	return videos, nil
}

// pickThumbnailURL returns the first non-empty URL in fallback order.
func pickThumbnailURL(candidates ...*yt.Thumbnail) string {
	for _, t := range candidates {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}

func mediumThumb(d *yt.ThumbnailDetails) *yt.Thumbnail {
	if d == nil {
		return nil
	}
	return d.Medium
}

func defaultThumb(d *yt.ThumbnailDetails) *yt.Thumbnail {
	if d == nil {
		return nil
	}
	return d.Default
}

func standardThumb(d *yt.ThumbnailDetails) *yt.Thumbnail {
	if d == nil {
		return nil
	}
	return d.Standard
}

func highThumb(d *yt.ThumbnailDetails) *yt.Thumbnail {
	if d == nil {
		return nil
	}
	return d.High
}
