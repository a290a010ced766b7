package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finpay-app/finpay_backend/internal/apperrors"
	portssvc "github.com/finpay-app/finpay_backend/internal/core/ports/services"
	"github.com/finpay-app/finpay_backend/internal/dto"
	"github.com/finpay-app/finpay_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// LedgerHandler handles the authenticated balance, history and payment routes.
type LedgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// registerLedgerRoutes sets up the authenticated ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := NewLedgerHandler(ledgerService)

	rg.GET("/balance", h.GetBalance)
	rg.GET("/transactions", h.ListTransactions)
	rg.POST("/pay", h.Pay)
}

// GetBalance godoc
// @Summary Get current balance
// @Description Returns the authenticated user's balance.
// @Tags ledger
// @Produce json
// @Success 200 {object} dto.BalanceResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /balance [get]
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
		return
	}

	balance, err := h.ledgerService.GetBalance(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to read balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read balance"})
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// ListTransactions godoc
// @Summary Get transaction history
// @Description Returns the authenticated user's transactions, newest first.
// @Tags ledger
// @Produce json
// @Success 200 {array} domain.Transaction
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
		return
	}

	transactions, err := h.ledgerService.ListTransactions(c.Request.Context(), username)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// Pay godoc
// @Summary Send money
// @Description Transfers funds from the authenticated user to the recipient.
// @Tags ledger
// @Accept json
// @Produce json
// @Param pay body dto.PayRequest true "Transfer Order"
// @Success 200 {object} dto.PayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pay [post]
func (h *LedgerHandler) Pay(c *gin.Context) {
	username, ok := middleware.GetUsernameFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
		return
	}

	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Recipient and amount required"})
		return
	}

	txn, newBalance, err := h.ledgerService.Transfer(c.Request.Context(), username, req.To, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Amount must be positive"})
		case errors.Is(err, apperrors.ErrSelfTransfer):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cannot send money to yourself"})
		case errors.Is(err, apperrors.ErrRecipientNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recipient not found"})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			// The wrapped message carries the sender's current balance.
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Transfer failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Transaction failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.PayResponse{
		Message:     "Payment successful",
		Transaction: *txn,
		NewBalance:  newBalance,
	})
}
