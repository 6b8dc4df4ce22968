package ledger

import (
	"context"
	"testing"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordFunding(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful funding credits balance and appends completed row", func(t *testing.T) {
		m := newEngineMocks(t)
		m.expectUnit(ctx)

		user := newTestUser(t, 1, "10.00")

		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.userRepo.EXPECT().UpdateBalance(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 1 && u.FormattedBalance() == "60.00"
		})).Return(nil).Once()
		m.txnRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.KindAddFunds &&
				txn.Status == entity.StatusCompleted &&
				txn.ExternalRef != nil && *txn.ExternalRef == "pi_1"
		})).Return(nil).Once()

		txn, err := m.engine().RecordFunding(ctx, 1, "50.00", "pi_1", nil)

		require.NoError(t, err)
		assert.Equal(t, entity.KindAddFunds, txn.Kind)
		assert.Equal(t, "50.00", entity.FormatAmount(txn.Amount))
	})

	t.Run("Amount below funding minimum is rejected", func(t *testing.T) {
		m := newEngineMocks(t)

		txn, err := m.engine().RecordFunding(ctx, 1, "0.50", "pi_1", nil)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Amount above funding maximum is rejected", func(t *testing.T) {
		m := newEngineMocks(t)

		txn, err := m.engine().RecordFunding(ctx, 1, "10000.01", "pi_1", nil)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Missing external ref is rejected", func(t *testing.T) {
		m := newEngineMocks(t)

		txn, err := m.engine().RecordFunding(ctx, 1, "50.00", "", nil)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})

	t.Run("Unknown user aborts the unit", func(t *testing.T) {
		m := newEngineMocks(t)
		m.expectAbortedUnit(ctx)

		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(nil, errs.ErrUserNotFound).Once()

		txn, err := m.engine().RecordFunding(ctx, 1, "50.00", "pi_1", nil)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestRecordWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful withdrawal debits balance and appends completed row", func(t *testing.T) {
		m := newEngineMocks(t)
		m.expectUnit(ctx)

		user := newTestUser(t, 1, "100.00")

		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.userRepo.EXPECT().UpdateBalance(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 1 && u.FormattedBalance() == "60.00"
		})).Return(nil).Once()
		m.txnRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.KindWithdraw &&
				txn.Status == entity.StatusCompleted &&
				txn.ExternalRef != nil && *txn.ExternalRef == "po_1"
		})).Return(nil).Once()

		txn, err := m.engine().RecordWithdrawal(ctx, 1, "40.00", "po_1", nil)

		require.NoError(t, err)
		assert.Equal(t, entity.KindWithdraw, txn.Kind)
	})

	t.Run("Insufficient funds aborts the unit", func(t *testing.T) {
		m := newEngineMocks(t)
		m.expectAbortedUnit(ctx)

		user := newTestUser(t, 1, "10.00")

		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(user, nil).Once()

		txn, err := m.engine().RecordWithdrawal(ctx, 1, "40.00", "po_1", nil)

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
	})

	t.Run("Withdrawal of exact balance succeeds", func(t *testing.T) {
		m := newEngineMocks(t)
		m.expectUnit(ctx)

		user := newTestUser(t, 1, "40.00")

		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.userRepo.EXPECT().UpdateBalance(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.FormattedBalance() == "0.00"
		})).Return(nil).Once()
		m.txnRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		_, err := m.engine().RecordWithdrawal(ctx, 1, "40.00", "po_1", nil)

		require.NoError(t, err)
	})
}

func TestInitiatePendingExternal(t *testing.T) {
	ctx := context.Background()

	t.Run("Pending funding row is created without balance effect", func(t *testing.T) {
		m := newEngineMocks(t)
		m.expectUnit(ctx)

		user := newTestUser(t, 1, "10.00")

		// Existence check only; no locking or balance update
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.txnRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.KindAddFunds &&
				txn.Status == entity.StatusPending &&
				txn.ExternalRef != nil && *txn.ExternalRef == "pi_1"
		})).Return(nil).Once()

		txn, err := m.engine().InitiatePendingExternal(ctx, 1, entity.KindAddFunds, "50.00", "pi_1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, txn.Status)
		assert.Nil(t, txn.ProcessedAt)
	})

	t.Run("Pending withdrawal does not check sufficiency", func(t *testing.T) {
		m := newEngineMocks(t)
		m.expectUnit(ctx)

		// Balance below the requested amount; sufficiency is settled later
		user := newTestUser(t, 1, "10.00")

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.txnRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Kind == entity.KindWithdraw && txn.Status == entity.StatusPending
		})).Return(nil).Once()

		_, err := m.engine().InitiatePendingExternal(ctx, 1, entity.KindWithdraw, "40.00", "po_1")

		require.NoError(t, err)
	})

	t.Run("Unknown user aborts the unit", func(t *testing.T) {
		m := newEngineMocks(t)
		m.expectAbortedUnit(ctx)

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(nil, errs.ErrUserNotFound).Once()

		txn, err := m.engine().InitiatePendingExternal(ctx, 1, entity.KindAddFunds, "50.00", "pi_1")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Tip kinds are rejected before any unit of work", func(t *testing.T) {
		m := newEngineMocks(t)
		m.expectAbortedUnit(ctx)

		user := newTestUser(t, 1, "10.00")
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(user, nil).Once()

		txn, err := m.engine().InitiatePendingExternal(ctx, 1, entity.KindSendTip, "50.00", "ref")

		assert.Nil(t, txn)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
