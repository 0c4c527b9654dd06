package services

import (
	"fmt"

	"github.com/tubeview/tubeview_backend/internal/apperrors"
	"github.com/tubeview/tubeview_backend/internal/core/domain"
	portssvc "github.com/tubeview/tubeview_backend/internal/core/ports/services"
	"github.com/tubeview/tubeview_backend/internal/platform/config"
	"github.com/tubeview/tubeview_backend/internal/utils"
)

// tokenService issues and verifies stateless session tokens. Validity is
// purely a function of signature and expiry; there is no revocation list.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates the session issuer.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) IssueToken(user *domain.User) (string, error) {
	token, err := utils.GenerateJWT(user.ID, user.Username, user.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

func (s *tokenService) VerifyToken(tokenString string) (*utils.SessionClaims, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrForbidden, err)
	}
	return claims, nil
}
