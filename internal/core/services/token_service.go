package services

import (
	"context"
	"time"

	portssvc "github.com/finpay-app/finpay_backend/internal/core/ports/services"
	"github.com/finpay-app/finpay_backend/internal/platform/config"
	"github.com/finpay-app/finpay_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade for minting JWT access tokens.
// The signing secret and expiry come from application configuration, never
// from code.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given username.
func (s *tokenService) GenerateAccessToken(ctx context.Context, username string) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
