package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SystemAccount is the sentinel source for value-creating credit
// transactions (initial grants). It never exists in the account store.
const SystemAccount = "system"

// InitialGrant is the balance credited to every newly registered account.
var InitialGrant = decimal.NewFromInt(1000)

// Account represents a registered user and their balance within the core domain.
// This is the primary representation used by services.
type Account struct {
	Username     string          `json:"username"` // Primary key, case-sensitive, immutable
	PasswordHash string          `json:"-"`        // bcrypt hash, never serialized
	Balance      decimal.Decimal `json:"balance"`  // Invariant: >= 0 at all times
	CreatedAt    time.Time       `json:"createdAt"`
}
