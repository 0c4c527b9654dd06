package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	portsrepo "github.com/tubeview/tubeview_backend/internal/core/ports/repositories"
	"github.com/tubeview/tubeview_backend/internal/models"
)

type PgxFavoriteRepository struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) portsrepo.FavoriteRepository {
	return &PgxFavoriteRepository{db: db}
}

var _ portsrepo.FavoriteRepository = (*PgxFavoriteRepository)(nil)

func toDomainFavoriteEntry(m models.FavoriteEntry) domain.FavoriteEntry {
	return domain.FavoriteEntry{
		ID:           m.ID,
		UserID:       m.UserID,
		VideoID:      m.VideoID,
		VideoTitle:   m.VideoTitle,
		ThumbnailURL: m.ThumbnailURL,
		AddedAt:      m.AddedAt,
	}
}

func (r *PgxFavoriteRepository) SaveFavorite(ctx context.Context, entry domain.FavoriteEntry) error {
	// No pre-check: the (user_id, video_id) unique constraint is the final
	// authority on duplicates, including racing inserts.
	query := `
        INSERT INTO favorites (user_id, video_id, video_title, thumbnail_url, added_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		entry.UserID,
		entry.VideoID,
		entry.VideoTitle,
		entry.ThumbnailURL,
		entry.AddedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return fmt.Errorf("favorite exists for video %s: %w", entry.VideoID, apperrors.ErrDuplicate)
			}
		}
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

func (r *PgxFavoriteRepository) FindFavoritesByUser(ctx context.Context, userID int64) ([]domain.FavoriteEntry, error) {
	query := `
        SELECT id, user_id, video_id, video_title, thumbnail_url, added_at
        FROM favorites
        WHERE user_id = $1
        ORDER BY added_at DESC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	entries := []domain.FavoriteEntry{}
	for rows.Next() {
		var m models.FavoriteEntry
		err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.VideoID,
			&m.VideoTitle,
			&m.ThumbnailURL,
			&m.AddedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		entries = append(entries, toDomainFavoriteEntry(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating favorite rows: %w", rows.Err())
	}

	return entries, nil
}
