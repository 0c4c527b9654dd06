package dto

import "github.com/tubeview/tubeview_backend/internal/core/domain"

// SearchVideosParams binds the search query string parameters.
type SearchVideosParams struct {
	Q          string `form:"q"`
	MaxResults int64  `form:"maxResults,default=20"`
}

// PopularVideosParams binds the most-popular chart query parameters.
type PopularVideosParams struct {
	MaxResults int64 `form:"maxResults,default=20"`
}

// VideoSummaryResponse is one search/chart result as served to the client.
type VideoSummaryResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Duration     string `json:"duration,omitempty"`
	ViewCount    string `json:"viewCount,omitempty"`
}

// VideoDetailResponse is a full video lookup as served to the client.
type VideoDetailResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Duration     string `json:"duration"`
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// ListVideosResponse wraps search and chart results.
type ListVideosResponse struct {
	Success bool                   `json:"success"`
	Videos  []VideoSummaryResponse `json:"videos"`
}

// GetVideoResponse wraps a single video lookup.
type GetVideoResponse struct {
	Success bool                `json:"success"`
	Video   VideoDetailResponse `json:"video"`
}

// ToVideoSummaryResponse converts a domain summary to its response shape.
func ToVideoSummaryResponse(v domain.VideoSummary) VideoSummaryResponse {
	return VideoSummaryResponse{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		Thumbnail:    v.Thumbnail,
		ChannelTitle: v.ChannelTitle,
		PublishedAt:  v.PublishedAt,
		Duration:     v.Duration,
		ViewCount:    v.ViewCount,
	}
}

// ToListVideosResponse converts domain summaries to the list envelope.
func ToListVideosResponse(videos []domain.VideoSummary) ListVideosResponse {
	out := make([]VideoSummaryResponse, len(videos))
	for i, v := range videos {
		out[i] = ToVideoSummaryResponse(v)
	}
	return ListVideosResponse{Success: true, Videos: out}
}

// ToGetVideoResponse converts a domain detail to the single-video envelope.
func ToGetVideoResponse(v *domain.VideoDetail) GetVideoResponse {
	return GetVideoResponse{
		Success: true,
		Video: VideoDetailResponse{
			ID:           v.ID,
			Title:        v.Title,
			Description:  v.Description,
			Thumbnail:    v.Thumbnail,
			ChannelTitle: v.ChannelTitle,
			PublishedAt:  v.PublishedAt,
			Duration:     v.Duration,
			ViewCount:    v.ViewCount,
			LikeCount:    v.LikeCount,
			CommentCount: v.CommentCount,
		},
	}
}
