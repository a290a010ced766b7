package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction created value (a system
// grant) or moved it between two accounts.
type TransactionKind string

const (
	Credit   TransactionKind = "credit"
	Transfer TransactionKind = "transfer"
)

// Transaction is a single immutable entry in the append-only log.
type Transaction struct {
	ID        int64           `json:"id"`     // Strictly increasing, assigned in log-append order
	From      string          `json:"from"`   // Source username, or SystemAccount for credits
	To        string          `json:"to"`     // Destination username (Not Null)
	Amount    decimal.Decimal `json:"amount"` // Positive value
	Timestamp time.Time       `json:"timestamp"`
	Kind      TransactionKind `json:"type"` // credit or transfer
}
