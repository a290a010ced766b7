package memory

import (
	portsrepo "github.com/finpay-app/finpay_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the in-memory repositories over one shared store.
func NewRepositoryProvider(store *Store) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:     NewAccountRepository(store),
		TransactionRepo: NewTransactionRepository(store),
	}
}
