package entity

import (
	"testing"
	"time"

	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coremocks "github.com/tipstream/tip-ledger/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(1, "100.00", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), user.ID)
		assert.Equal(t, "100.00", user.FormattedBalance())
		assert.True(t, user.CanGiveTips)
		assert.True(t, user.CanReceiveTips)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Zero ID should return error", func(t *testing.T) {
		user, err := NewUser(0, "100.00", mockTime)

		assert.Error(t, err)
		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, user)
	})

	t.Run("Invalid balance format", func(t *testing.T) {
		testCases := []string{
			"invalid",
			"",
			"-5.00",
			"$100.00",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				user, err := NewUser(1, tc, mockTime)
				assert.Error(t, err)
				assert.Nil(t, user)
			})
		}
	})
}

func TestUserBalanceOperations(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Credit adds to balance", func(t *testing.T) {
		user, err := NewUser(1, "10.00", mockTime)
		require.NoError(t, err)

		user.Credit(decimal.RequireFromString("5.25"), mockTime)

		assert.Equal(t, "15.25", user.FormattedBalance())
	})

	t.Run("Debit subtracts from balance", func(t *testing.T) {
		user, err := NewUser(1, "10.00", mockTime)
		require.NoError(t, err)

		err = user.Debit(decimal.RequireFromString("4.50"), mockTime)

		require.NoError(t, err)
		assert.Equal(t, "5.50", user.FormattedBalance())
	})

	t.Run("Debit to exactly zero succeeds", func(t *testing.T) {
		user, err := NewUser(1, "10.00", mockTime)
		require.NoError(t, err)

		err = user.Debit(decimal.RequireFromString("10.00"), mockTime)

		require.NoError(t, err)
		assert.Equal(t, "0.00", user.FormattedBalance())
	})

	t.Run("Debit below zero is rejected", func(t *testing.T) {
		user, err := NewUser(1, "10.00", mockTime)
		require.NoError(t, err)

		err = user.Debit(decimal.RequireFromString("10.01"), mockTime)

		assert.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, "10.00", user.FormattedBalance())
	})

	t.Run("CanCover checks sufficiency", func(t *testing.T) {
		user, err := NewUser(1, "10.00", mockTime)
		require.NoError(t, err)

		assert.True(t, user.CanCover(decimal.RequireFromString("10.00")))
		assert.True(t, user.CanCover(decimal.RequireFromString("0.01")))
		assert.False(t, user.CanCover(decimal.RequireFromString("10.01")))
	})

	t.Run("SetBalance replaces balance", func(t *testing.T) {
		user, err := NewUser(1, "10.00", mockTime)
		require.NoError(t, err)

		user.SetBalance(decimal.RequireFromString("42.42"), mockTime)

		assert.Equal(t, "42.42", user.FormattedBalance())
	})
}
