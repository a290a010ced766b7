package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/finpay-app/finpay_backend/internal/apperrors"
	"github.com/finpay-app/finpay_backend/internal/core/domain"
	"github.com/finpay-app/finpay_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositoryTestSuite struct {
	suite.Suite
	store       *memory.Store
	accountRepo *memory.AccountRepository
	txnRepo     *memory.TransactionRepository
	ctx         context.Context
}

func (s *TransactionRepositoryTestSuite) SetupTest() {
	s.store = memory.NewStore()
	s.accountRepo = memory.NewAccountRepository(s.store)
	s.txnRepo = memory.NewTransactionRepository(s.store)
	s.ctx = context.Background()
}

func (s *TransactionRepositoryTestSuite) seed(username string, grant int64) {
	account := domain.Account{
		Username:     username,
		PasswordHash: "$2a$10$fakehashfortesting",
		CreatedAt:    time.Now().UTC(),
	}
	_, err := s.accountRepo.SaveAccount(s.ctx, account, decimal.NewFromInt(grant))
	s.Require().NoError(err)
}

func (s *TransactionRepositoryTestSuite) balance(username string) decimal.Decimal {
	account, err := s.accountRepo.FindAccountByUsername(s.ctx, username)
	s.Require().NoError(err)
	return account.Balance
}

func (s *TransactionRepositoryTestSuite) TestSaveTransferMovesFunds() {
	s.seed("alice", 1000)
	s.seed("bob", 1500)

	txn, newBalance, err := s.txnRepo.SaveTransfer(s.ctx, "alice", "bob", decimal.NewFromInt(200))
	s.Require().NoError(err)

	s.Equal("alice", txn.From)
	s.Equal("bob", txn.To)
	s.True(txn.Amount.Equal(decimal.NewFromInt(200)))
	s.Equal(domain.Transfer, txn.Kind)
	s.True(newBalance.Equal(decimal.NewFromInt(800)))

	s.True(s.balance("alice").Equal(decimal.NewFromInt(800)))
	s.True(s.balance("bob").Equal(decimal.NewFromInt(1700)))
}

func (s *TransactionRepositoryTestSuite) TestSaveTransferInsufficientFunds() {
	s.seed("alice", 1000)
	s.seed("bob", 1500)

	_, _, err := s.txnRepo.SaveTransfer(s.ctx, "alice", "bob", decimal.NewFromInt(5000))
	s.Require().ErrorIs(err, apperrors.ErrInsufficientFunds)
	s.Contains(err.Error(), "1000") // message carries the current balance

	// All-or-nothing: no balance change, no log entry.
	s.True(s.balance("alice").Equal(decimal.NewFromInt(1000)))
	s.True(s.balance("bob").Equal(decimal.NewFromInt(1500)))

	txns, err := s.txnRepo.FindTransactionsByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Len(txns, 1) // only the initial credit
}

func (s *TransactionRepositoryTestSuite) TestSaveTransferUnknownRecipient() {
	s.seed("alice", 1000)

	_, _, err := s.txnRepo.SaveTransfer(s.ctx, "alice", "ghost", decimal.NewFromInt(10))
	s.ErrorIs(err, apperrors.ErrRecipientNotFound)
}

func (s *TransactionRepositoryTestSuite) TestSaveTransferUnknownSender() {
	s.seed("bob", 1500)

	_, _, err := s.txnRepo.SaveTransfer(s.ctx, "ghost", "bob", decimal.NewFromInt(10))
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionRepositoryTestSuite) TestTransactionIDsFollowAppendOrder() {
	s.seed("alice", 1000)
	s.seed("bob", 1500)

	var ids []int64
	for i := 0; i < 5; i++ {
		txn, _, err := s.txnRepo.SaveTransfer(s.ctx, "alice", "bob", decimal.NewFromInt(1))
		s.Require().NoError(err)
		ids = append(ids, txn.ID)
	}

	for i := 1; i < len(ids); i++ {
		s.Equal(ids[i-1]+1, ids[i])
	}
}

func (s *TransactionRepositoryTestSuite) TestHistoryNewestFirstWithIDTieBreak() {
	s.seed("alice", 1000)
	s.seed("bob", 1500)

	for i := 0; i < 4; i++ {
		_, _, err := s.txnRepo.SaveTransfer(s.ctx, "alice", "bob", decimal.NewFromInt(10))
		s.Require().NoError(err)
	}

	txns, err := s.txnRepo.FindTransactionsByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Require().Len(txns, 5) // initial credit + 4 transfers

	for i := 1; i < len(txns); i++ {
		prev, cur := txns[i-1], txns[i]
		if prev.Timestamp.Equal(cur.Timestamp) {
			s.Greater(prev.ID, cur.ID)
		} else {
			s.True(prev.Timestamp.After(cur.Timestamp))
		}
	}
}

func (s *TransactionRepositoryTestSuite) TestHistoryFiltersByParticipant() {
	s.seed("alice", 1000)
	s.seed("bob", 1500)
	s.seed("carol", 1000)

	_, _, err := s.txnRepo.SaveTransfer(s.ctx, "alice", "bob", decimal.NewFromInt(50))
	s.Require().NoError(err)

	txns, err := s.txnRepo.FindTransactionsByUsername(s.ctx, "carol")
	s.Require().NoError(err)
	s.Require().Len(txns, 1)
	s.Equal(domain.Credit, txns[0].Kind)
}

func (s *TransactionRepositoryTestSuite) TestRepeatedReadsAreIdentical() {
	s.seed("alice", 1000)
	s.seed("bob", 1500)
	_, _, err := s.txnRepo.SaveTransfer(s.ctx, "alice", "bob", decimal.NewFromInt(25))
	s.Require().NoError(err)

	first, err := s.txnRepo.FindTransactionsByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	second, err := s.txnRepo.FindTransactionsByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(first, second)
}

// Two concurrent 600-transfers from a 1000 balance: exactly one succeeds.
func (s *TransactionRepositoryTestSuite) TestConcurrentOverdraftRace() {
	s.seed("alice", 1000)
	s.seed("bob", 1500)
	s.seed("carol", 1000)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	recipients := []string{"bob", "carol"}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = s.txnRepo.SaveTransfer(s.ctx, "alice", recipients[i], decimal.NewFromInt(600))
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			s.ErrorIs(err, apperrors.ErrInsufficientFunds)
			failures++
		}
	}
	s.Equal(1, failures)
	s.True(s.balance("alice").Equal(decimal.NewFromInt(400)))
}

// Conservation under concurrent load: transfers move value, never create or
// destroy it, and no balance ever goes negative.
func (s *TransactionRepositoryTestSuite) TestConservationUnderConcurrency() {
	users := []string{"u1", "u2", "u3", "u4"}
	totalCredited := decimal.Zero
	for _, u := range users {
		s.seed(u, 1000)
		totalCredited = totalCredited.Add(decimal.NewFromInt(1000))
	}

	var wg sync.WaitGroup
	unexpected := make(chan error, 8*50)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				from := users[(i+j)%len(users)]
				to := users[(i+j+1)%len(users)]
				amount := decimal.NewFromInt(int64(1 + j%7))
				_, _, err := s.txnRepo.SaveTransfer(s.ctx, from, to, amount)
				if err != nil && !errors.Is(err, apperrors.ErrInsufficientFunds) {
					unexpected <- err
				}
			}
		}(i)
	}
	wg.Wait()
	close(unexpected)
	for err := range unexpected {
		s.Require().NoError(err)
	}

	total := decimal.Zero
	accounts, err := s.accountRepo.ListAccounts(s.ctx)
	s.Require().NoError(err)
	for _, account := range accounts {
		s.False(account.Balance.IsNegative(), fmt.Sprintf("negative balance for %s", account.Username))
		total = total.Add(account.Balance)
	}
	s.True(total.Equal(totalCredited))
}

func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}
