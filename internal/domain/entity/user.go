package entity

import (
	"time"

	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// User represents a platform user and their ledger balance
type User struct {
	ID             uint64          // Unique identifier for the user
	balance        decimal.Decimal // Current balance (private, non-negative invariant)
	CanGiveTips    bool            // Whether the user may send tips
	CanReceiveTips bool            // Whether the user may receive tips
	CustomerRef    *string         // External payment-processor customer reference
	PayoutRef      *string         // External payment-processor payout-account reference
	CreatedAt      time.Time       // When the user was created
	UpdatedAt      time.Time       // When the user was last updated
}

// NewUser creates a new user with the given ID and initial balance
func NewUser(id uint64, initialBalance string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == 0 {
		return nil, errs.ErrInvalidUserID
	}

	balance, err := ParseAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		ID:             id,
		balance:        balance,
		CanGiveTips:    true,
		CanReceiveTips: true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Balance returns the current balance
func (u *User) Balance() decimal.Decimal {
	return u.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return FormatAmount(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balance decimal.Decimal, timeProvider coreport.TimeProvider) {
	u.balance = balance
	u.UpdatedAt = timeProvider.Now()
}

// CanCover reports whether the balance covers the given amount
func (u *User) CanCover(amount decimal.Decimal) bool {
	return u.balance.GreaterThanOrEqual(amount)
}

// Credit adds the amount to the balance
func (u *User) Credit(amount decimal.Decimal, timeProvider coreport.TimeProvider) {
	u.balance = u.balance.Add(amount)
	u.UpdatedAt = timeProvider.Now()
}

// Debit subtracts the amount from the balance if sufficient funds exist.
// Returns an error if the balance would go negative.
func (u *User) Debit(amount decimal.Decimal, timeProvider coreport.TimeProvider) error {
	if !u.CanCover(amount) {
		return errs.NewInsufficientFundsError(u.ID, FormatAmount(amount), u.FormattedBalance())
	}

	u.balance = u.balance.Sub(amount)
	u.UpdatedAt = timeProvider.Now()
	return nil
}
