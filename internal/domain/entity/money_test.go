package entity

import (
	"testing"

	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100.00", "100.00"},
			{"0.01", "0.01"},
			{"0.10", "0.10"},
			{"1", "1.00"},
			{"1.5", "1.50"},
			{"1234567.89", "1234567.89"},
			{"0.00", "0.00"},
			{"0", "0.00"},
			{"  42.00  ", "42.00"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				amount, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, FormatAmount(amount))
			})
		}
	})

	t.Run("Rounding is half away from zero", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"1.005", "1.01"},
			{"1.004", "1.00"},
			{"1.015", "1.02"},
			{"2.675", "2.68"},
			{"0.125", "0.13"},
			{"0.001", "0.00"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				amount, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, FormatAmount(amount))
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			description string
		}{
			{"", "Empty string"},
			{"   ", "Whitespace only"},
			{"-1.00", "Negative amount"},
			{"abc", "Non-numeric"},
			{"1,000.00", "Comma as thousands separator"},
			{"1.00.00", "Multiple decimal points"},
			{"$100", "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseAmount(tc.input)
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestAmountCentsConversion(t *testing.T) {
	t.Run("Amount to cents", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"0.00", 0},
			{"9999.99", 999999},
		}

		for _, tc := range testCases {
			amount, err := ParseAmount(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, AmountToCents(amount))
		}
	})

	t.Run("Cents to amount round trips", func(t *testing.T) {
		for _, cents := range []int64{0, 1, 99, 100, 10000, 999999} {
			amount := CentsToAmount(cents)
			assert.Equal(t, cents, AmountToCents(amount))
		}
	})

	t.Run("Cents to amount formatting", func(t *testing.T) {
		assert.Equal(t, "0.05", FormatAmount(CentsToAmount(5)))
		assert.Equal(t, "123.45", FormatAmount(CentsToAmount(12345)))
	})
}

func TestAmountBounds(t *testing.T) {
	assert.True(t, MaxTipAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, MinFundingAmount.Equal(decimal.NewFromInt(1)))
	assert.True(t, MaxFundingAmount.Equal(decimal.NewFromInt(10000)))
}
