package dto

import (
	"time"

	"github.com/tubeview/tubeview_backend/internal/core/domain"
)

// AddHistoryRequest records a watch or a search. At least one of VideoID
// and SearchQuery must be non-empty; the service enforces that invariant.
type AddHistoryRequest struct {
	VideoID      string `json:"video_id"`
	VideoTitle   string `json:"video_title"`
	ThumbnailURL string `json:"thumbnail_url"`
	SearchQuery  string `json:"search_query"`
	ActionType   string `json:"action_type" binding:"omitempty,oneof=watch search"`
}

// AddFavoriteRequest saves a video to the user's favorites.
type AddFavoriteRequest struct {
	VideoID      string `json:"video_id"`
	VideoTitle   string `json:"video_title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// HistoryEntryResponse is one history row as served to the client.
type HistoryEntryResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	VideoID      string    `json:"video_id"`
	VideoTitle   string    `json:"video_title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	SearchQuery  string    `json:"search_query"`
	ActionType   string    `json:"action_type"`
	WatchedAt    time.Time `json:"watched_at"`
}

// FavoriteEntryResponse is one favorites row as served to the client.
type FavoriteEntryResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	VideoID      string    `json:"video_id"`
	VideoTitle   string    `json:"video_title"`
	ThumbnailURL string    `json:"thumbnail_url"`
	AddedAt      time.Time `json:"added_at"`
}

// ListHistoryResponse wraps the history listing.
type ListHistoryResponse struct {
	Success bool                   `json:"success"`
	History []HistoryEntryResponse `json:"history"`
}

// ListFavoritesResponse wraps the favorites listing.
type ListFavoritesResponse struct {
	Success   bool                    `json:"success"`
	Favorites []FavoriteEntryResponse `json:"favorites"`
}

// ToHistoryEntryResponse converts a domain history entry to its response shape.
func ToHistoryEntryResponse(e domain.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		VideoID:      e.VideoID,
		VideoTitle:   e.VideoTitle,
		ThumbnailURL: e.ThumbnailURL,
		SearchQuery:  e.SearchQuery,
		ActionType:   string(e.ActionType),
		WatchedAt:    e.WatchedAt,
	}
}

// ToListHistoryResponse converts domain history entries to the list envelope.
func ToListHistoryResponse(entries []domain.HistoryEntry) ListHistoryResponse {
	out := make([]HistoryEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToHistoryEntryResponse(e)
	}
	return ListHistoryResponse{Success: true, History: out}
}

// ToFavoriteEntryResponse converts a domain favorite entry to its response shape.
func ToFavoriteEntryResponse(e domain.FavoriteEntry) FavoriteEntryResponse {
	return FavoriteEntryResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		VideoID:      e.VideoID,
		VideoTitle:   e.VideoTitle,
		ThumbnailURL: e.ThumbnailURL,
		AddedAt:      e.AddedAt,
	}
}

// ToListFavoritesResponse converts domain favorite entries to the list envelope.
func ToListFavoritesResponse(entries []domain.FavoriteEntry) ListFavoritesResponse {
	out := make([]FavoriteEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToFavoriteEntryResponse(e)
	}
	return ListFavoritesResponse{Success: true, Favorites: out}
}
