package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	portsrepo "github.com/tubeview/tubeview_backend/internal/core/ports/repositories"
	"github.com/tubeview/tubeview_backend/internal/models"
)

type PgxHistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) portsrepo.HistoryRepository {
	return &PgxHistoryRepository{db: db}
}

var _ portsrepo.HistoryRepository = (*PgxHistoryRepository)(nil)

func toDomainHistoryEntry(m models.HistoryEntry) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:           m.ID,
		UserID:       m.UserID,
		VideoID:      m.VideoID,
		VideoTitle:   m.VideoTitle,
		ThumbnailURL: m.ThumbnailURL,
		SearchQuery:  m.SearchQuery,
		ActionType:   domain.ActionType(m.ActionType),
		WatchedAt:    m.WatchedAt,
	}
}

func (r *PgxHistoryRepository) SaveHistoryEntry(ctx context.Context, entry domain.HistoryEntry) error {
	query := `
        INSERT INTO history (user_id, video_id, video_title, thumbnail_url, search_query, action_type, watched_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		entry.UserID,
		entry.VideoID,
		entry.VideoTitle,
		entry.ThumbnailURL,
		entry.SearchQuery,
		string(entry.ActionType),
		entry.WatchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

func (r *PgxHistoryRepository) FindHistoryByUser(ctx context.Context, userID int64, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
        SELECT id, user_id, video_id, video_title, thumbnail_url, search_query, action_type, watched_at
        FROM history
        WHERE user_id = $1
        ORDER BY watched_at DESC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var m models.HistoryEntry
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.VideoID,
			&m.VideoTitle,
			&m.ThumbnailURL,
			&m.SearchQuery,
			&m.ActionType,
			&m.WatchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, toDomainHistoryEntry(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", rows.Err())
	}

	return entries, nil
}

func (r *PgxHistoryRepository) DeleteHistoryEntry(ctx context.Context, userID int64, entryID int64) error {
	// Ownership and existence collapse into one outcome: zero rows affected.
	query := `DELETE FROM history WHERE id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxHistoryRepository) ClearHistory(ctx context.Context, userID int64) error {
	query := `DELETE FROM history WHERE user_id = $1;`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
