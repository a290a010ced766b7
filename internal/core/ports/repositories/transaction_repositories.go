package repositories

import (
	"context"

	"github.com/finpay-app/finpay_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations over the append-only log
type TransactionReader interface {
	// FindTransactionsByUsername retrieves all transactions where the user is
	// sender or recipient, newest first; equal timestamps order by descending ID.
	FindTransactionsByUsername(ctx context.Context, username string) ([]domain.Transaction, error)
}

// TransferSupport defines the atomic transfer composite: debit sender, credit
// recipient and append the transfer record as one all-or-nothing step.
type TransferSupport interface {
	// SaveTransfer checks the sender's funds before mutation and fails with
	// apperrors.ErrInsufficientFunds (wrapped with the current balance) without
	// touching any state. On success it returns the created transaction and
	// the sender's new balance.
	SaveTransfer(ctx context.Context, from, to string, amount decimal.Decimal) (domain.Transaction, decimal.Decimal, error)
}

// TransactionRepositoryFacade combines all transaction-log repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransferSupport
}
