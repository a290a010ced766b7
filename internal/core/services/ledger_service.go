package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finpay-app/finpay_backend/internal/apperrors"
	"github.com/finpay-app/finpay_backend/internal/core/domain"
	portsrepo "github.com/finpay-app/finpay_backend/internal/core/ports/repositories"
	portssvc "github.com/finpay-app/finpay_backend/internal/core/ports/services"
	"github.com/finpay-app/finpay_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// ledgerService exposes the transfer state machine and the ledger read paths.
// It validates first and delegates the atomic debit/credit/append composite to
// the repository, which owns the mutual-exclusion boundary.
type ledgerService struct {
	accountRepo     portsrepo.AccountReader
	transactionRepo portsrepo.TransactionRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(accountRepo portsrepo.AccountReader, transactionRepo portsrepo.TransactionRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Transfer moves amount from fromUser to toUser, recording a single transfer
// transaction. The sender is assumed already authenticated by the caller.
func (s *ledgerService) Transfer(ctx context.Context, fromUser, toUser string, amount decimal.Decimal) (*domain.Transaction, decimal.Decimal, error) {
	if !amount.IsPositive() {
		return nil, decimal.Zero, apperrors.ErrInvalidAmount
	}
	if fromUser == toUser {
		return nil, decimal.Zero, apperrors.ErrSelfTransfer
	}

	if _, err := s.accountRepo.FindAccountByUsername(ctx, toUser); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, decimal.Zero, apperrors.ErrRecipientNotFound
		}
		return nil, decimal.Zero, fmt.Errorf("failed to resolve recipient: %w", err)
	}

	txn, newBalance, err := s.transactionRepo.SaveTransfer(ctx, fromUser, toUser, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Authenticated sender vanished from the store: internal anomaly,
			// not a caller mistake.
			middleware.GetLoggerFromCtx(ctx).Error("Sender account missing during transfer",
				slog.String("from", fromUser), slog.String("to", toUser))
		}
		return nil, decimal.Zero, err
	}

	return &txn, newBalance, nil
}

// GetBalance returns the current balance for username.
func (s *ledgerService) GetBalance(ctx context.Context, username string) (decimal.Decimal, error) {
	account, err := s.accountRepo.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Authenticated account missing on balance read",
				slog.String("username", username))
		}
		return decimal.Zero, err
	}
	return account.Balance, nil
}

// ListTransactions returns the user's history, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, username string) ([]domain.Transaction, error) {
	return s.transactionRepo.FindTransactionsByUsername(ctx, username)
}
