package services

import (
	"context"

	"github.com/finpay-app/finpay_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations over the ledger
type LedgerReaderSvc interface {
	// GetBalance retrieves the current balance for a username.
	GetBalance(ctx context.Context, username string) (decimal.Decimal, error)

	// ListTransactions retrieves the user's transaction history, newest first.
	ListTransactions(ctx context.Context, username string) ([]domain.Transaction, error)
}

// LedgerTransferSvc defines the value-conserving transfer operation
type LedgerTransferSvc interface {
	// Transfer atomically moves amount from one account to another and appends
	// the transfer record. Returns the created transaction and the sender's
	// new balance.
	Transfer(ctx context.Context, fromUser, toUser string, amount decimal.Decimal) (*domain.Transaction, decimal.Decimal, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerTransferSvc
}
