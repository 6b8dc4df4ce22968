package ledger

import (
	"testing"
	"time"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coremocks "github.com/tipstream/tip-ledger/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, id uint64, balance string) *entity.User {
	t.Helper()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	user, err := entity.NewUser(id, balance, mockTime)
	require.NoError(t, err)
	return user
}

func TestValidateSelfTransfer(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateSelfTransfer(1, 2))
	assert.ErrorIs(t, v.ValidateSelfTransfer(1, 1), errs.ErrSelfTransfer)
}

func TestValidateTipAmount(t *testing.T) {
	v := NewValidator()

	t.Run("Valid amounts", func(t *testing.T) {
		for _, raw := range []string{"0.01", "1.00", "250.00", "500.00"} {
			amount := decimal.RequireFromString(raw)
			assert.NoError(t, v.ValidateTipAmount(amount), raw)
		}
	})

	t.Run("Zero is rejected", func(t *testing.T) {
		err := v.ValidateTipAmount(decimal.Zero)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Above maximum is rejected", func(t *testing.T) {
		err := v.ValidateTipAmount(decimal.RequireFromString("500.01"))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestValidateFundingAmount(t *testing.T) {
	v := NewValidator()

	t.Run("Valid amounts", func(t *testing.T) {
		for _, raw := range []string{"1.00", "500.00", "10000.00"} {
			amount := decimal.RequireFromString(raw)
			assert.NoError(t, v.ValidateFundingAmount(amount), raw)
		}
	})

	t.Run("Below minimum is rejected", func(t *testing.T) {
		err := v.ValidateFundingAmount(decimal.RequireFromString("0.99"))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Above maximum is rejected", func(t *testing.T) {
		err := v.ValidateFundingAmount(decimal.RequireFromString("10000.01"))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestValidateTipPermissions(t *testing.T) {
	v := NewValidator()

	t.Run("Both permitted", func(t *testing.T) {
		sender := newTestUser(t, 1, "100.00")
		receiver := newTestUser(t, 2, "100.00")

		assert.NoError(t, v.ValidateTipPermissions(sender, receiver))
	})

	t.Run("Sender not permitted", func(t *testing.T) {
		sender := newTestUser(t, 1, "100.00")
		sender.CanGiveTips = false
		receiver := newTestUser(t, 2, "100.00")

		assert.ErrorIs(t, v.ValidateTipPermissions(sender, receiver), errs.ErrSenderNotPermitted)
	})

	t.Run("Receiver not permitted", func(t *testing.T) {
		sender := newTestUser(t, 1, "100.00")
		receiver := newTestUser(t, 2, "100.00")
		receiver.CanReceiveTips = false

		assert.ErrorIs(t, v.ValidateTipPermissions(sender, receiver), errs.ErrReceiverNotPermitted)
	})

	t.Run("Sender check runs first", func(t *testing.T) {
		sender := newTestUser(t, 1, "100.00")
		sender.CanGiveTips = false
		receiver := newTestUser(t, 2, "100.00")
		receiver.CanReceiveTips = false

		assert.ErrorIs(t, v.ValidateTipPermissions(sender, receiver), errs.ErrSenderNotPermitted)
	})
}

func TestValidateSufficientFunds(t *testing.T) {
	v := NewValidator()

	t.Run("Exact balance is sufficient", func(t *testing.T) {
		sender := newTestUser(t, 1, "50.00")
		assert.NoError(t, v.ValidateSufficientFunds(sender, decimal.RequireFromString("50.00")))
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		sender := newTestUser(t, 1, "49.99")
		err := v.ValidateSufficientFunds(sender, decimal.RequireFromString("50.00"))
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})
}
