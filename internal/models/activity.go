package models

import "time"

// HistoryEntry is the history table row shape.
type HistoryEntry struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	VideoID      string    `db:"video_id"`
	VideoTitle   string    `db:"video_title"`
	ThumbnailURL string    `db:"thumbnail_url"`
	SearchQuery  string    `db:"search_query"`
	ActionType   string    `db:"action_type"`
	WatchedAt    time.Time `db:"watched_at"`
}

// FavoriteEntry is the favorites table row shape.
type FavoriteEntry struct {
	ID           int64     `db:"id"`
	UserID       int64     `db:"user_id"`
	VideoID      string    `db:"video_id"`
	VideoTitle   string    `db:"video_title"`
	ThumbnailURL string    `db:"thumbnail_url"`
	AddedAt      time.Time `db:"added_at"`
}
