// Package memory provides the in-memory implementations of the repository
// ports. A single Store instance is shared by the account and transaction
// repositories, the same way the pgsql repositories would share one pool.
//
// Locking discipline: each account record carries its own mutex, acquired in
// lexicographic username order so concurrent transfers can never deadlock.
// The store-level RWMutex guards map membership, the log slice and balance
// visibility; writers apply balance mutation and log append inside one write
// section, so readers always observe a consistent snapshot.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/finpay-app/finpay_backend/internal/apperrors"
	"github.com/finpay-app/finpay_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type accountRecord struct {
	mu      sync.Mutex // serializes transfers touching this account
	account domain.Account
}

// Store owns the account map and the append-only transaction log.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*accountRecord
	log      []domain.Transaction
	nextID   int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{accounts: make(map[string]*accountRecord)}
}

// appendLocked assigns the next sequential ID and appends the entry.
// Callers must hold s.mu for writing.
func (s *Store) appendLocked(from, to string, amount decimal.Decimal, kind domain.TransactionKind) domain.Transaction {
	s.nextID++
	txn := domain.Transaction{
		ID:        s.nextID,
		From:      from,
		To:        to,
		Amount:    amount,
		Timestamp: time.Now().UTC(),
		Kind:      kind,
	}
	s.log = append(s.log, txn)
	return txn
}

// createAccount inserts the account seeded with initialGrant and records the
// matching system credit in the same write section, so the conservation
// invariant holds at every observable instant.
func (s *Store) createAccount(account domain.Account, initialGrant decimal.Decimal) (domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.Username]; exists {
		return domain.Transaction{}, apperrors.ErrDuplicateAccount
	}

	account.Balance = initialGrant
	s.accounts[account.Username] = &accountRecord{account: account}
	return s.appendLocked(domain.SystemAccount, account.Username, initialGrant, domain.Credit), nil
}

// findAccount returns a snapshot copy so callers cannot mutate internal state.
func (s *Store) findAccount(username string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.accounts[username]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := rec.account
	return &cp, nil
}

func (s *Store) listAccounts() []domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Account, 0, len(s.accounts))
	for _, rec := range s.accounts {
		out = append(out, rec.account)
	}
	return out
}

// transfer is the atomic composite behind the ledger's transfer operation:
// funds check, debit, credit and log append either all apply or none do.
func (s *Store) transfer(from, to string, amount decimal.Decimal) (domain.Transaction, decimal.Decimal, error) {
	// Locking the same record twice would self-deadlock; the service rejects
	// self transfers before reaching the store.
	if from == to {
		return domain.Transaction{}, decimal.Zero, apperrors.ErrSelfTransfer
	}

	s.mu.RLock()
	sender, receiver := s.accounts[from], s.accounts[to]
	s.mu.RUnlock()

	if sender == nil {
		// Authenticated sender vanished: internal-consistency anomaly.
		return domain.Transaction{}, decimal.Zero, apperrors.ErrNotFound
	}
	if receiver == nil {
		return domain.Transaction{}, decimal.Zero, apperrors.ErrRecipientNotFound
	}

	first, second := sender, receiver
	if to < from {
		first, second = receiver, sender
	}
	first.mu.Lock()
	defer first.mu.Unlock()
	second.mu.Lock()
	defer second.mu.Unlock()

	// Balance only changes under the account lock, so the check-then-act
	// sequence below cannot race with another transfer from this sender.
	if sender.account.Balance.LessThan(amount) {
		return domain.Transaction{}, decimal.Zero, fmt.Errorf("%w (current balance %s)",
			apperrors.ErrInsufficientFunds, sender.account.Balance)
	}

	s.mu.Lock()
	sender.account.Balance = sender.account.Balance.Sub(amount)
	receiver.account.Balance = receiver.account.Balance.Add(amount)
	txn := s.appendLocked(from, to, amount, domain.Transfer)
	newBalance := sender.account.Balance
	s.mu.Unlock()

	return txn, newBalance, nil
}

// transactionsFor filters the log for entries touching username, newest first.
func (s *Store) transactionsFor(username string) []domain.Transaction {
	s.mu.RLock()
	out := make([]domain.Transaction, 0)
	for _, txn := range s.log {
		if txn.From == username || txn.To == username {
			out = append(out, txn)
		}
	}
	s.mu.RUnlock()

	// Timestamps may coincide for programmatically generated data; descending
	// ID keeps the order stable and matches append order.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
