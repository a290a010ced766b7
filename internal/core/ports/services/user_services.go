package services

import (
	"context"

	"github.com/finpay-app/finpay_backend/internal/core/domain"
	"github.com/finpay-app/finpay_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByUsername retrieves a user's account by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new account with the fixed initial grant.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with username and password.
	// Unknown user and wrong password both return apperrors.ErrInvalidCredentials.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.Account, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
