package entity

import (
	"testing"
	"time"

	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coremocks "github.com/tipstream/tip-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSettlementEvent(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid event", func(t *testing.T) {
		payload := []byte(`{"amount":"10.00"}`)
		event, err := NewSettlementEvent("evt_1", EventPaymentSucceeded, "pi_1", payload, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "evt_1", event.EventID)
		assert.Equal(t, EventPaymentSucceeded, event.Kind)
		assert.Equal(t, "pi_1", event.ExternalRef)
		assert.Equal(t, payload, event.Payload)
		assert.False(t, event.Processed)
		assert.Nil(t, event.ProcessedAt)
		assert.Equal(t, fixedTime, event.CreatedAt)
	})

	t.Run("Empty event ID is rejected", func(t *testing.T) {
		_, err := NewSettlementEvent("", EventPaymentSucceeded, "pi_1", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unknown kind is rejected", func(t *testing.T) {
		_, err := NewSettlementEvent("evt_1", SettlementEventKind("payment.exploded"), "pi_1", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Empty external ref is rejected", func(t *testing.T) {
		_, err := NewSettlementEvent("evt_1", EventPaymentFailed, "", nil, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestMarkProcessed(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	event, err := NewSettlementEvent("evt_1", EventPaymentFailed, "po_1", nil, mockTime)
	require.NoError(t, err)

	event.MarkProcessed(mockTime)

	assert.True(t, event.Processed)
	require.NotNil(t, event.ProcessedAt)
	assert.Equal(t, fixedTime, *event.ProcessedAt)
}

func TestIsValidSettlementEventKind(t *testing.T) {
	assert.True(t, IsValidSettlementEventKind("payment_succeeded"))
	assert.True(t, IsValidSettlementEventKind("payment_failed"))
	assert.False(t, IsValidSettlementEventKind(""))
	assert.False(t, IsValidSettlementEventKind("payment_pending"))
}
