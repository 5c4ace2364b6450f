package services

import (
	"context"
	"fmt"
	"time"

	portssvc "github.com/credistore/credistore_backend/internal/core/ports/services"
	"github.com/credistore/credistore_backend/internal/dto"
	"github.com/credistore/credistore_backend/internal/utils"
	"github.com/credistore/credistore_backend/pkg/config"
)

// ErrInvalidCredentials is returned for a failed login attempt.
var ErrInvalidCredentials = fmt.Errorf("invalid credentials")

// authService authenticates the single store operator configured in the
// environment and issues short-lived access tokens.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Username != s.cfg.AdminUsername || !utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash) {
		s.LogWarn(ctx, "Login attempt failed")
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(req.Username, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.cfg.JWTExpiryDuration),
	}, nil
}
