package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	portsrepo "github.com/tubeview/tubeview_backend/internal/core/ports/repositories"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/dto"
	"github.com/tubeview/tubeview_backend/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates the credential store facade.
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		// ErrDuplicate passes through for the handler's conflict mapping.
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return created, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a wrong password: no account-existence leakage.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// A valid token for a deleted account stays a plain not-found.
			return nil, err
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return user, nil
}
