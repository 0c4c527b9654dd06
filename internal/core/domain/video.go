package domain

// VideoSummary is the normalized projection of one provider search or
// chart result. Computed per request, never persisted.
type VideoSummary struct {
	ID           string
	Title        string
	Description  string
	Thumbnail    string
	ChannelTitle string
	PublishedAt  string
	// Populated only for chart (most popular) results.
	Duration  string
	ViewCount string
}

// VideoDetail is the normalized projection of one provider video lookup.
// Counts and duration are carried in the provider's own string / ISO-8601
// representations; no local arithmetic is applied.
type VideoDetail struct {
	ID           string
	Title        string
	Description  string
	Thumbnail    string
	ChannelTitle string
	PublishedAt  string
	Duration     string
	ViewCount    string
	LikeCount    string
	CommentCount string
}
