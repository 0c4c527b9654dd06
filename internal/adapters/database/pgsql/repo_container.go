package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tubeview/tubeview_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto one shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:     NewUserRepository(db),
		HistoryRepo:  NewHistoryRepository(db),
		FavoriteRepo: NewFavoriteRepository(db),
	}
}
