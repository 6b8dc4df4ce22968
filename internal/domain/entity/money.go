package entity

import (
	"fmt"
	"strings"

	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Monetary amounts are exact decimals with two-digit precision. All rounding
// happens exactly once, at the API boundary, via ParseAmount; every amount
// flowing through the engine afterwards is already normalized.

// MaxDecimalPlaces defines the number of decimal places carried by money amounts
const MaxDecimalPlaces = 2

// Amount bounds for the supported operations, in currency units
var (
	// MaxTipAmount is the upper bound for a single tip
	MaxTipAmount = decimal.NewFromInt(500)

	// MinFundingAmount is the lower bound for funding and withdrawals
	MinFundingAmount = decimal.NewFromInt(1)

	// MaxFundingAmount is the upper bound for funding and withdrawals
	MaxFundingAmount = decimal.NewFromInt(10000)
)

// ParseAmount parses a decimal string into a normalized two-decimal amount.
// Rounding is half-away-from-zero. Negative and malformed values are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}

	return amount.Round(MaxDecimalPlaces), nil
}

// FormatAmount renders an amount with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// AmountToCents converts a normalized amount to an integer cents value for storage
func AmountToCents(amount decimal.Decimal) int64 {
	return amount.Round(MaxDecimalPlaces).Shift(MaxDecimalPlaces).IntPart()
}

// CentsToAmount converts a stored cents value back to a decimal amount
func CentsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -MaxDecimalPlaces)
}
