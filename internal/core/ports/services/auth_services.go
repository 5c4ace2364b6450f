package services

import (
	"context"

	"github.com/credistore/credistore_backend/internal/dto"
)

// AuthSvcFacade authenticates the store operator and issues access tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
