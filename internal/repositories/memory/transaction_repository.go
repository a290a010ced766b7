package memory

import (
	"context"

	"github.com/finpay-app/finpay_backend/internal/core/domain"
	portsrepo "github.com/finpay-app/finpay_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements portsrepo.TransactionRepositoryFacade over
// the shared in-memory store.
type TransactionRepository struct {
	store *Store
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) SaveTransfer(ctx context.Context, from, to string, amount decimal.Decimal) (domain.Transaction, decimal.Decimal, error) {
	return r.store.transfer(from, to, amount)
}

func (r *TransactionRepository) FindTransactionsByUsername(ctx context.Context, username string) ([]domain.Transaction, error) {
	return r.store.transactionsFor(username), nil
}
