package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	portsrepo "github.com/tubeview/tubeview_backend/internal/core/ports/repositories"
	"github.com/tubeview/tubeview_backend/internal/models"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) domain.User {
	return domain.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (username, email, password_hash, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id;
    `
	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation
				return nil, fmt.Errorf("username or email taken: %w", apperrors.ErrDuplicate)
			}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE email = $1;
	`
	var modelUser models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&modelUser.ID,
		&modelUser.Username,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM users
		WHERE id = $1;
	`
	var modelUser models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&modelUser.ID,
		&modelUser.Username,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %d: %w", userID, err)
	}

	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}
