package repositories

import (
	"context"

	"github.com/finpay-app/finpay_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByUsername retrieves a specific account by its username.
	FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error)

	// ListAccounts retrieves a snapshot of all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account seeded with initialGrant and records
	// the matching system credit transaction in the same atomic step.
	// Returns apperrors.ErrDuplicateAccount if the username is taken.
	SaveAccount(ctx context.Context, account domain.Account, initialGrant decimal.Decimal) (domain.Transaction, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// This is a facade for clients that need access to all operations
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
