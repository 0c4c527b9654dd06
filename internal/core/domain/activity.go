package domain

import "time"

// ActionType distinguishes a watch entry from a search entry in the history log.
type ActionType string

const (
	ActionWatch  ActionType = "watch"
	ActionSearch ActionType = "search"
)

// HistoryEntry is one recorded user action. Every entry carries at least
// one of VideoID or SearchQuery; WatchedAt is assigned server-side.
type HistoryEntry struct {
	ID           int64
	UserID       int64
	VideoID      string
	VideoTitle   string
	ThumbnailURL string
	SearchQuery  string
	ActionType   ActionType
	WatchedAt    time.Time
}

// FavoriteEntry is one saved video. (UserID, VideoID) is unique per user.
type FavoriteEntry struct {
	ID           int64
	UserID       int64
	VideoID      string
	VideoTitle   string
	ThumbnailURL string
	AddedAt      time.Time
}
