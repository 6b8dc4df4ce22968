package ledger

import (
	"fmt"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Validator holds the pure business-rule checks run before any balance
// mutation. No method has side effects beyond reading the passed entities.
type Validator struct{}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSelfTransfer rejects tips where sender and receiver are the same user
func (v *Validator) ValidateSelfTransfer(senderID, receiverID uint64) error {
	if senderID == receiverID {
		return errs.ErrSelfTransfer
	}
	return nil
}

// ValidateTipAmount checks a normalized tip amount against its bounds:
// 0 < amount <= 500.00
func (v *Validator) ValidateTipAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: tip amount must be positive", errs.ErrInvalidAmount)
	}
	if amount.GreaterThan(entity.MaxTipAmount) {
		return fmt.Errorf("%w: tip amount exceeds maximum of %s",
			errs.ErrInvalidAmount, entity.FormatAmount(entity.MaxTipAmount))
	}
	return nil
}

// ValidateFundingAmount checks a normalized funding or withdrawal amount
// against its bounds: 1.00 <= amount <= 10000.00
func (v *Validator) ValidateFundingAmount(amount decimal.Decimal) error {
	if amount.LessThan(entity.MinFundingAmount) {
		return fmt.Errorf("%w: amount below minimum of %s",
			errs.ErrInvalidAmount, entity.FormatAmount(entity.MinFundingAmount))
	}
	if amount.GreaterThan(entity.MaxFundingAmount) {
		return fmt.Errorf("%w: amount exceeds maximum of %s",
			errs.ErrInvalidAmount, entity.FormatAmount(entity.MaxFundingAmount))
	}
	return nil
}

// ValidateTipPermissions checks both parties' permission flags
func (v *Validator) ValidateTipPermissions(sender, receiver *entity.User) error {
	if !sender.CanGiveTips {
		return errs.ErrSenderNotPermitted
	}
	if !receiver.CanReceiveTips {
		return errs.ErrReceiverNotPermitted
	}
	return nil
}

// ValidateSufficientFunds checks the sender's balance covers the amount
func (v *Validator) ValidateSufficientFunds(sender *entity.User, amount decimal.Decimal) error {
	if !sender.CanCover(amount) {
		return errs.NewInsufficientFundsError(sender.ID, entity.FormatAmount(amount), sender.FormattedBalance())
	}
	return nil
}
