package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finpay-app/finpay_backend/internal/apperrors"
	"github.com/finpay-app/finpay_backend/internal/core/domain"
	portsrepo "github.com/finpay-app/finpay_backend/internal/core/ports/repositories"
	portssvc "github.com/finpay-app/finpay_backend/internal/core/ports/services"
	"github.com/finpay-app/finpay_backend/internal/dto"
	"github.com/finpay-app/finpay_backend/internal/middleware"
	"github.com/finpay-app/finpay_backend/internal/utils"
)

// dummyPasswordHash is a valid bcrypt hash compared against when the username
// is unknown, keeping the timing profile of failed logins flat so callers
// cannot enumerate accounts.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// userService provides registration and authentication over the account store.
type userService struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{accountRepo: accountRepo}
}

// RegisterUser creates a new account with the fixed initial grant and its
// system credit transaction.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.ErrMissingFields
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := domain.Account{
		Username:     req.Username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := s.accountRepo.SaveAccount(ctx, account, domain.InitialGrant); err != nil {
		return nil, err
	}

	account.Balance = domain.InitialGrant
	return &account, nil
}

// AuthenticateUser verifies a username/password pair. Unknown users and wrong
// passwords produce the identical error kind.
func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Burn a bcrypt comparison so the response time does not reveal
			// whether the username exists.
			utils.CheckPasswordHash(password, dummyPasswordHash)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account for login: %w", err)
	}

	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return account, nil
}

// GetUserByUsername retrieves an account by username.
func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Authenticated account missing from store",
				slog.String("username", username))
		}
		return nil, err
	}
	return account, nil
}
