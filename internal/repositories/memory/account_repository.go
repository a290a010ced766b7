package memory

import (
	"context"

	"github.com/finpay-app/finpay_backend/internal/core/domain"
	portsrepo "github.com/finpay-app/finpay_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// AccountRepository implements portsrepo.AccountRepositoryFacade over the
// shared in-memory store.
type AccountRepository struct {
	store *Store
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

func NewAccountRepository(store *Store) *AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account, initialGrant decimal.Decimal) (domain.Transaction, error) {
	return r.store.createAccount(account, initialGrant)
}

func (r *AccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.store.findAccount(username)
}

func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.store.listAccounts(), nil
}
