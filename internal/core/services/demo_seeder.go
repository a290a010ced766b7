package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finpay-app/finpay_backend/internal/apperrors"
	"github.com/finpay-app/finpay_backend/internal/core/domain"
	portsrepo "github.com/finpay-app/finpay_backend/internal/core/ports/repositories"
	"github.com/finpay-app/finpay_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// demoPassword is the shared credential of the demo fixture accounts.
const demoPassword = "password123"

// demoAccounts is the fresh-process fixture: two accounts with their initial
// credit transactions, useful for acceptance tests and the demo frontend.
var demoAccounts = []struct {
	username string
	grant    decimal.Decimal
}{
	{username: "alice", grant: decimal.NewFromInt(1000)},
	{username: "bob", grant: decimal.NewFromInt(1500)},
}

// DemoSeeder seeds the demo accounts into a fresh account store.
type DemoSeeder struct {
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewDemoSeeder creates a new DemoSeeder.
func NewDemoSeeder(accountRepo portsrepo.AccountRepositoryFacade) *DemoSeeder {
	return &DemoSeeder{accountRepo: accountRepo}
}

// Seed creates the demo accounts. Already-existing accounts are left alone so
// seeding is idempotent.
func (s *DemoSeeder) Seed(ctx context.Context) error {
	for _, demo := range demoAccounts {
		passwordHash, err := utils.HashPassword(demoPassword)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}

		account := domain.Account{
			Username:     demo.username,
			PasswordHash: passwordHash,
			CreatedAt:    time.Now().UTC(),
		}

		if _, err := s.accountRepo.SaveAccount(ctx, account, demo.grant); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateAccount) {
				continue
			}
			return fmt.Errorf("failed to seed demo account %q: %w", demo.username, err)
		}
	}
	return nil
}
