package entity

import (
	"testing"
	"time"

	coremocks "github.com/tipstream/tip-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserToBalanceResponse(t *testing.T) {
	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Copies ID and formats balance", func(t *testing.T) {
		user, err := NewUser(7, "42.5", mockTime)
		require.NoError(t, err)

		resp := UserToBalanceResponse(user)

		assert.Equal(t, uint64(7), resp.UserID)
		assert.Equal(t, "42.50", resp.Balance)
	})

	t.Run("Zero balance renders two decimals", func(t *testing.T) {
		user, err := NewUser(8, "0", mockTime)
		require.NoError(t, err)

		resp := UserToBalanceResponse(user)

		assert.Equal(t, "0.00", resp.Balance)
	})
}
