package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrMissingFields indicates that a required input field was absent or empty.
var ErrMissingFields = errors.New("required fields missing")

// ErrDuplicateAccount indicates a registration attempt with a username that already exists.
var ErrDuplicateAccount = errors.New("username already exists")

// ErrInvalidCredentials indicates a failed login. Unknown user and wrong
// password are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrSelfTransfer indicates a transfer whose target equals its source.
var ErrSelfTransfer = errors.New("cannot send money to yourself")

// ErrInvalidAmount indicates a non-positive transfer amount.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrRecipientNotFound indicates that the transfer target does not exist.
var ErrRecipientNotFound = errors.New("recipient not found")

// ErrInsufficientFunds indicates that the sender's balance is below the
// requested amount. Callers wrap it with the current balance for feedback.
var ErrInsufficientFunds = errors.New("insufficient balance")
