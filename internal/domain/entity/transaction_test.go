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

func TestNewTipPair(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	amount := decimal.RequireFromString("25.00")
	description := "thanks for the stream"

	sent, received := NewTipPair(1, 2, amount, &description, mockTime)

	t.Run("Sender view row", func(t *testing.T) {
		assert.Equal(t, KindSendTip, sent.Kind)
		assert.Equal(t, StatusCompleted, sent.Status)
		require.NotNil(t, sent.SenderID)
		require.NotNil(t, sent.ReceiverID)
		assert.Equal(t, uint64(1), *sent.SenderID)
		assert.Equal(t, uint64(2), *sent.ReceiverID)
		assert.True(t, sent.Amount.Equal(amount))
		assert.Equal(t, fixedTime, sent.CreatedAt)
		require.NotNil(t, sent.ProcessedAt)
		assert.Equal(t, fixedTime, *sent.ProcessedAt)
	})

	t.Run("Receiver view row", func(t *testing.T) {
		assert.Equal(t, KindReceiveTip, received.Kind)
		assert.Equal(t, StatusCompleted, received.Status)
		require.NotNil(t, received.SenderID)
		require.NotNil(t, received.ReceiverID)
		assert.Equal(t, uint64(1), *received.SenderID)
		assert.Equal(t, uint64(2), *received.ReceiverID)
		assert.True(t, received.Amount.Equal(amount))
	})

	t.Run("Rows have distinct IDs", func(t *testing.T) {
		assert.NotEqual(t, sent.ID, received.ID)
	})
}

func TestNewPendingExternal(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	amount := decimal.RequireFromString("50.00")

	t.Run("Pending funding credits the user", func(t *testing.T) {
		txn, err := NewPendingExternal(7, KindAddFunds, amount, "pi_abc", mockTime)

		require.NoError(t, err)
		assert.Equal(t, StatusPending, txn.Status)
		assert.Nil(t, txn.SenderID)
		require.NotNil(t, txn.ReceiverID)
		assert.Equal(t, uint64(7), *txn.ReceiverID)
		require.NotNil(t, txn.ExternalRef)
		assert.Equal(t, "pi_abc", *txn.ExternalRef)
		assert.Nil(t, txn.ProcessedAt)
	})

	t.Run("Pending withdrawal debits the user", func(t *testing.T) {
		txn, err := NewPendingExternal(7, KindWithdraw, amount, "po_abc", mockTime)

		require.NoError(t, err)
		assert.Nil(t, txn.ReceiverID)
		require.NotNil(t, txn.SenderID)
		assert.Equal(t, uint64(7), *txn.SenderID)
	})

	t.Run("Tip kinds are rejected", func(t *testing.T) {
		_, err := NewPendingExternal(7, KindSendTip, amount, "ref", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Empty external ref is rejected", func(t *testing.T) {
		_, err := NewPendingExternal(7, KindAddFunds, amount, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Zero user ID is rejected", func(t *testing.T) {
		_, err := NewPendingExternal(0, KindAddFunds, amount, "ref", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestSubjectID(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	amount := decimal.RequireFromString("10.00")

	t.Run("Credits settle against the receiver", func(t *testing.T) {
		txn, err := NewPendingExternal(3, KindAddFunds, amount, "pi_1", mockTime)
		require.NoError(t, err)

		subject, ok := txn.SubjectID()
		assert.True(t, ok)
		assert.Equal(t, uint64(3), subject)
	})

	t.Run("Debits settle against the sender", func(t *testing.T) {
		txn, err := NewPendingExternal(3, KindWithdraw, amount, "po_1", mockTime)
		require.NoError(t, err)

		subject, ok := txn.SubjectID()
		assert.True(t, ok)
		assert.Equal(t, uint64(3), subject)
	})

	t.Run("Missing party reports not ok", func(t *testing.T) {
		txn := &Transaction{Kind: KindAddFunds}
		_, ok := txn.SubjectID()
		assert.False(t, ok)
	})
}

func TestStatusTransitions(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	amount := decimal.RequireFromString("10.00")

	t.Run("Pending to completed", func(t *testing.T) {
		txn, err := NewPendingExternal(1, KindAddFunds, amount, "pi_1", mockTime)
		require.NoError(t, err)

		require.NoError(t, txn.MarkCompleted(mockTime))

		assert.Equal(t, StatusCompleted, txn.Status)
		require.NotNil(t, txn.ProcessedAt)
		assert.Equal(t, fixedTime, *txn.ProcessedAt)
		assert.True(t, txn.IsTerminal())
	})

	t.Run("Pending to failed", func(t *testing.T) {
		txn, err := NewPendingExternal(1, KindAddFunds, amount, "pi_2", mockTime)
		require.NoError(t, err)

		require.NoError(t, txn.MarkFailed(mockTime))

		assert.Equal(t, StatusFailed, txn.Status)
		assert.True(t, txn.IsTerminal())
	})

	t.Run("Terminal status is immutable", func(t *testing.T) {
		txn, err := NewPendingExternal(1, KindAddFunds, amount, "pi_3", mockTime)
		require.NoError(t, err)
		require.NoError(t, txn.MarkCompleted(mockTime))

		assert.ErrorIs(t, txn.MarkFailed(mockTime), errs.ErrTransactionTerminal)
		assert.ErrorIs(t, txn.MarkCompleted(mockTime), errs.ErrTransactionTerminal)
		assert.Equal(t, StatusCompleted, txn.Status)
	})
}

func TestKindHelpers(t *testing.T) {
	t.Run("Valid kinds", func(t *testing.T) {
		for _, kind := range []string{"add_funds", "send_tip", "receive_tip", "withdraw"} {
			assert.True(t, IsValidKind(kind), kind)
		}
	})

	t.Run("Invalid kinds", func(t *testing.T) {
		for _, kind := range []string{"", "deposit", "tip"} {
			assert.False(t, IsValidKind(kind), kind)
		}
	})

	t.Run("External kinds", func(t *testing.T) {
		assert.True(t, IsExternalKind(KindAddFunds))
		assert.True(t, IsExternalKind(KindWithdraw))
		assert.False(t, IsExternalKind(KindSendTip))
		assert.False(t, IsExternalKind(KindReceiveTip))
	})
}
