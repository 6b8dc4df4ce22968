package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount        = 4001
	CodeInsufficientFunds    = 4002
	CodeSelfTransfer         = 4003
	CodeSenderNotPermitted   = 4004
	CodeReceiverNotPermitted = 4005
	CodeInvalidUserID        = 4006
	CodeInvalidRequest       = 4007
	CodeUserNotFound         = 4040
	CodeOperationConflict    = 4090

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorageUnavailable = 5030
)

// Base error types
var (
	// ErrInvalidAmount is returned when an amount is outside its allowed
	// bounds or has more than two decimal places
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when the sender's balance does not
	// cover the requested amount
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSelfTransfer is returned when sender and receiver are the same user
	ErrSelfTransfer = errors.New("cannot send a tip to yourself")

	// ErrSenderNotPermitted is returned when the sender lacks the give-tips flag
	ErrSenderNotPermitted = errors.New("sender is not permitted to give tips")

	// ErrReceiverNotPermitted is returned when the receiver lacks the receive-tips flag
	ErrReceiverNotPermitted = errors.New("receiver is not permitted to receive tips")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionTerminal is returned when attempting to change the status
	// of a transaction that is already Completed or Failed
	ErrTransactionTerminal = errors.New("transaction is already in a terminal state")

	// ErrOperationConflict is returned when concurrent units of work kept
	// conflicting and the bounded retry budget was exhausted
	ErrOperationConflict = errors.New("operation conflicted with concurrent requests")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateSettlementEvent is returned when a settlement event with the
	// same external event ID was already stored
	ErrDuplicateSettlementEvent = errors.New("settlement event already recorded")

	// ErrSettlementEventNotFound is returned when no settlement event exists
	// for the given external event ID
	ErrSettlementEventNotFound = errors.New("settlement event not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStorageUnavailable is returned when the ledger store cannot be reached
	ErrStorageUnavailable = errors.New("ledger store unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrSenderNotPermitted):
		return CodeSenderNotPermitted
	case errors.Is(err, ErrReceiverNotPermitted):
		return CodeReceiverNotPermitted
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrOperationConflict):
		return CodeOperationConflict
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for insufficient funds
type InsufficientFundsError struct {
	UserID      uint64
	Amount      string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Amount, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"amount":          e.Amount,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, amount, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Amount:      amount,
		CurrBalance: currentBalance,
	}
}

// TipError represents a failure while moving money between two users
type TipError struct {
	SenderID   uint64
	ReceiverID uint64
	Amount     string
	Reason     string
	Err        error
}

// Error implements the error interface for TipError
func (e *TipError) Error() string {
	return fmt.Sprintf("tip from user %d to user %d (amount: %s) failed: %s - %v",
		e.SenderID, e.ReceiverID, e.Amount, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TipError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TipError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "tip_error",
		"sender_id":   e.SenderID,
		"receiver_id": e.ReceiverID,
		"amount":      e.Amount,
		"reason":      e.Reason,
		"error":       e.Err.Error(),
		"error_code":  ErrorCode(e.Err),
	}
}

// NewTipError creates a detailed tip error
func NewTipError(senderID, receiverID uint64, amount, reason string, err error) error {
	return &TipError{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Amount:     amount,
		Reason:     reason,
		Err:        err,
	}
}

// SettlementError represents a failure while applying an external settlement event
type SettlementError struct {
	EventID     string
	ExternalRef string
	Reason      string
	Err         error
}

// Error implements the error interface for SettlementError
func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement event %s (ref: %s) failed: %s - %v",
		e.EventID, e.ExternalRef, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SettlementError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "settlement_error",
		"event_id":     e.EventID,
		"external_ref": e.ExternalRef,
		"reason":       e.Reason,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewSettlementError creates a detailed settlement error
func NewSettlementError(eventID, externalRef, reason string, err error) error {
	return &SettlementError{
		EventID:     eventID,
		ExternalRef: externalRef,
		Reason:      reason,
		Err:         err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrSettlementEventNotFound)
}

// IsConflictError checks if the error is a concurrency conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrOperationConflict)
}

// IsValidationError checks if the error is a business-rule violation that
// should be reported to the caller as a 4xx-class failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrSelfTransfer) ||
		errors.Is(err, ErrSenderNotPermitted) ||
		errors.Is(err, ErrReceiverNotPermitted) ||
		errors.Is(err, ErrInsufficientFunds)
}
