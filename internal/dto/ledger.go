package dto

import (
	"github.com/finpay-app/finpay_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PayRequest carries a transfer order. The sender is the authenticated caller.
type PayRequest struct {
	To     string          `json:"to" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PayResponse reports a completed transfer.
type PayResponse struct {
	Message     string             `json:"message"`
	Transaction domain.Transaction `json:"transaction"`
	NewBalance  decimal.Decimal    `json:"newBalance"`
}

// BalanceResponse reports the caller's current balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}
