package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/finpay-app/finpay_backend/internal/apperrors"
	"github.com/finpay-app/finpay_backend/internal/core/domain"
	"github.com/finpay-app/finpay_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransfer(ctx context.Context, from, to string, amount decimal.Decimal) (domain.Transaction, decimal.Decimal, error) {
	args := m.Called(ctx, from, to, amount)
	return args.Get(0).(domain.Transaction), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockTransactionRepository) FindTransactionsByUsername(ctx context.Context, username string) ([]domain.Transaction, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	accountRepo *MockAccountRepository
	txnRepo     *MockTransactionRepository
	ctx         context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.accountRepo = new(MockAccountRepository)
	s.txnRepo = new(MockTransactionRepository)
	s.ctx = context.Background()
}

func (s *LedgerServiceTestSuite) TestTransferSuccess() {
	svc := services.NewLedgerService(s.accountRepo, s.txnRepo)
	amount := decimal.NewFromInt(200)

	s.accountRepo.On("FindAccountByUsername", s.ctx, "bob").
		Return(&domain.Account{Username: "bob"}, nil)
	s.txnRepo.On("SaveTransfer", s.ctx, "alice", "bob", amount).
		Return(domain.Transaction{
			ID:        3,
			From:      "alice",
			To:        "bob",
			Amount:    amount,
			Timestamp: time.Now().UTC(),
			Kind:      domain.Transfer,
		}, decimal.NewFromInt(800), nil)

	txn, newBalance, err := svc.Transfer(s.ctx, "alice", "bob", amount)
	s.Require().NoError(err)
	s.Equal("alice", txn.From)
	s.Equal("bob", txn.To)
	s.True(newBalance.Equal(decimal.NewFromInt(800)))
	s.txnRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestTransferRejectsNonPositiveAmount() {
	svc := services.NewLedgerService(s.accountRepo, s.txnRepo)

	_, _, err := svc.Transfer(s.ctx, "alice", "bob", decimal.Zero)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, _, err = svc.Transfer(s.ctx, "alice", "bob", decimal.NewFromInt(-5))
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	s.txnRepo.AssertNotCalled(s.T(), "SaveTransfer")
}

func (s *LedgerServiceTestSuite) TestTransferRejectsSelfTransfer() {
	svc := services.NewLedgerService(s.accountRepo, s.txnRepo)

	_, _, err := svc.Transfer(s.ctx, "alice", "alice", decimal.NewFromInt(10))
	s.ErrorIs(err, apperrors.ErrSelfTransfer)
	s.txnRepo.AssertNotCalled(s.T(), "SaveTransfer")
}

func (s *LedgerServiceTestSuite) TestTransferUnknownRecipient() {
	svc := services.NewLedgerService(s.accountRepo, s.txnRepo)

	s.accountRepo.On("FindAccountByUsername", s.ctx, "ghost").
		Return(nil, apperrors.ErrNotFound)

	_, _, err := svc.Transfer(s.ctx, "alice", "ghost", decimal.NewFromInt(10))
	s.ErrorIs(err, apperrors.ErrRecipientNotFound)
	s.txnRepo.AssertNotCalled(s.T(), "SaveTransfer")
}

func (s *LedgerServiceTestSuite) TestTransferPropagatesInsufficientFunds() {
	svc := services.NewLedgerService(s.accountRepo, s.txnRepo)
	amount := decimal.NewFromInt(5000)

	s.accountRepo.On("FindAccountByUsername", s.ctx, "bob").
		Return(&domain.Account{Username: "bob"}, nil)
	s.txnRepo.On("SaveTransfer", s.ctx, "alice", "bob", amount).
		Return(domain.Transaction{}, decimal.Zero,
			fmt.Errorf("%w (current balance 1000)", apperrors.ErrInsufficientFunds))

	_, _, err := svc.Transfer(s.ctx, "alice", "bob", amount)
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.Contains(err.Error(), "1000")
}

func (s *LedgerServiceTestSuite) TestGetBalance() {
	svc := services.NewLedgerService(s.accountRepo, s.txnRepo)

	s.accountRepo.On("FindAccountByUsername", s.ctx, "alice").
		Return(&domain.Account{Username: "alice", Balance: decimal.NewFromInt(800)}, nil)

	balance, err := svc.GetBalance(s.ctx, "alice")
	s.Require().NoError(err)
	s.True(balance.Equal(decimal.NewFromInt(800)))
}

func (s *LedgerServiceTestSuite) TestGetBalanceVanishedAccount() {
	svc := services.NewLedgerService(s.accountRepo, s.txnRepo)

	s.accountRepo.On("FindAccountByUsername", s.ctx, "ghost").
		Return(nil, apperrors.ErrNotFound)

	_, err := svc.GetBalance(s.ctx, "ghost")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestListTransactions() {
	svc := services.NewLedgerService(s.accountRepo, s.txnRepo)

	expected := []domain.Transaction{
		{ID: 2, From: "alice", To: "bob", Kind: domain.Transfer},
		{ID: 1, From: domain.SystemAccount, To: "alice", Kind: domain.Credit},
	}
	s.txnRepo.On("FindTransactionsByUsername", s.ctx, "alice").Return(expected, nil)

	txns, err := svc.ListTransactions(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(expected, txns)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
