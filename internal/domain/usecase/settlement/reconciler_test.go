package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coremocks "github.com/tipstream/tip-ledger/mocks/port/core"
	persistencemocks "github.com/tipstream/tip-ledger/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reconcilerMocks struct {
	uow       *persistencemocks.MockUnitOfWork
	userRepo  *persistencemocks.MockUserRepository
	txnRepo   *persistencemocks.MockTransactionRepository
	eventRepo *persistencemocks.MockSettlementEventRepository
	time      *coremocks.MockTimeProvider
	logger    *coremocks.MockLogger
}

func newReconcilerMocks(t *testing.T) *reconcilerMocks {
	t.Helper()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	m := &reconcilerMocks{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		userRepo:  persistencemocks.NewMockUserRepository(t),
		txnRepo:   persistencemocks.NewMockTransactionRepository(t),
		eventRepo: persistencemocks.NewMockSettlementEventRepository(t),
		time:      coremocks.NewMockTimeProvider(t),
		logger:    coremocks.NewMockLogger(t),
	}

	m.time.EXPECT().Now().Return(fixedTime).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return m
}

func (m *reconcilerMocks) reconciler() *Reconciler {
	return NewReconciler(m.uow, m.time, m.logger)
}

func (m *reconcilerMocks) expectUnit(ctx context.Context) {
	m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	m.uow.EXPECT().GetSettlementEventRepository(mock.Anything).Return(m.eventRepo).Maybe()
	m.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(m.txnRepo).Maybe()
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
}

// pendingExternal builds a pending row for settlement scenarios
func pendingExternal(t *testing.T, m *reconcilerMocks, userID uint64, kind entity.TransactionKind, amount, ref string) *entity.Transaction {
	t.Helper()

	parsed, err := entity.ParseAmount(amount)
	require.NoError(t, err)

	txn, err := entity.NewPendingExternal(userID, kind, parsed, ref, m.time)
	require.NoError(t, err)
	return txn
}

func settlementUser(t *testing.T, m *reconcilerMocks, id uint64, balance string) *entity.User {
	t.Helper()

	user, err := entity.NewUser(id, balance, m.time)
	require.NoError(t, err)
	return user
}

func TestProcessSuccessfulPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Funding settlement credits balance and completes row", func(t *testing.T) {
		m := newReconcilerMocks(t)
		m.expectUnit(ctx)

		txn := pendingExternal(t, m, 1, entity.KindAddFunds, "50.00", "pi_1")
		user := settlementUser(t, m, 1, "10.00")

		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_1").
			Return(nil, errs.ErrSettlementEventNotFound).Once()
		m.eventRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.SettlementEvent) bool {
			return e.EventID == "evt_1" && e.Kind == entity.EventPaymentSucceeded && !e.Processed
		})).Return(nil).Once()

		m.txnRepo.EXPECT().GetByExternalRefForUpdate(mock.Anything, "pi_1").Return(txn, nil).Once()
		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.userRepo.EXPECT().UpdateBalance(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.FormattedBalance() == "60.00"
		})).Return(nil).Once()
		m.txnRepo.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Status == entity.StatusCompleted
		})).Return(nil).Once()
		m.eventRepo.EXPECT().MarkProcessed(mock.Anything, mock.MatchedBy(func(e *entity.SettlementEvent) bool {
			return e.Processed
		})).Return(nil).Once()

		err := m.reconciler().ProcessSuccessfulPayment(ctx, "evt_1", "pi_1", nil)

		require.NoError(t, err)
	})

	t.Run("Withdrawal settlement debits balance", func(t *testing.T) {
		m := newReconcilerMocks(t)
		m.expectUnit(ctx)

		txn := pendingExternal(t, m, 2, entity.KindWithdraw, "30.00", "po_1")
		user := settlementUser(t, m, 2, "100.00")

		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_2").
			Return(nil, errs.ErrSettlementEventNotFound).Once()
		m.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		m.txnRepo.EXPECT().GetByExternalRefForUpdate(mock.Anything, "po_1").Return(txn, nil).Once()
		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(2)).Return(user, nil).Once()
		m.userRepo.EXPECT().UpdateBalance(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.FormattedBalance() == "70.00"
		})).Return(nil).Once()
		m.txnRepo.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Status == entity.StatusCompleted
		})).Return(nil).Once()
		m.eventRepo.EXPECT().MarkProcessed(mock.Anything, mock.Anything).Return(nil).Once()

		err := m.reconciler().ProcessSuccessfulPayment(ctx, "evt_2", "po_1", nil)

		require.NoError(t, err)
	})

	t.Run("Withdrawal settlement with insufficient balance fails the row", func(t *testing.T) {
		m := newReconcilerMocks(t)
		m.expectUnit(ctx)

		txn := pendingExternal(t, m, 2, entity.KindWithdraw, "30.00", "po_2")
		user := settlementUser(t, m, 2, "20.00")

		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_3").
			Return(nil, errs.ErrSettlementEventNotFound).Once()
		m.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		m.txnRepo.EXPECT().GetByExternalRefForUpdate(mock.Anything, "po_2").Return(txn, nil).Once()
		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(2)).Return(user, nil).Once()

		// Balance untouched, row goes to Failed, event still marked processed
		m.txnRepo.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Status == entity.StatusFailed
		})).Return(nil).Once()
		m.eventRepo.EXPECT().MarkProcessed(mock.Anything, mock.Anything).Return(nil).Once()

		err := m.reconciler().ProcessSuccessfulPayment(ctx, "evt_3", "po_2", nil)

		require.NoError(t, err)
		assert.Equal(t, "20.00", user.FormattedBalance())
	})

	t.Run("Duplicate delivery of processed event is a no-op", func(t *testing.T) {
		m := newReconcilerMocks(t)
		m.expectUnit(ctx)

		event, err := entity.NewSettlementEvent("evt_1", entity.EventPaymentSucceeded, "pi_1", nil, m.time)
		require.NoError(t, err)
		event.MarkProcessed(m.time)

		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_1").Return(event, nil).Once()

		err = m.reconciler().ProcessSuccessfulPayment(ctx, "evt_1", "pi_1", nil)

		require.NoError(t, err)
	})

	t.Run("Concurrent insert of the same event retries the unit", func(t *testing.T) {
		m := newReconcilerMocks(t)
		m.time.EXPECT().Sleep(mock.Anything).Maybe()

		// First attempt: not found, then insert loses the race.
		// Second attempt: record exists and is processed.
		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Twice()
		m.uow.EXPECT().GetSettlementEventRepository(mock.Anything).Return(m.eventRepo).Maybe()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_1").
			Return(nil, errs.ErrSettlementEventNotFound).Once()
		m.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).
			Return(errs.ErrDuplicateSettlementEvent).Once()

		processed, err := entity.NewSettlementEvent("evt_1", entity.EventPaymentSucceeded, "pi_1", nil, m.time)
		require.NoError(t, err)
		processed.MarkProcessed(m.time)
		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_1").Return(processed, nil).Once()

		err = m.reconciler().ProcessSuccessfulPayment(ctx, "evt_1", "pi_1", nil)

		require.NoError(t, err)
	})

	t.Run("Unknown external ref is acknowledged and marked processed", func(t *testing.T) {
		m := newReconcilerMocks(t)
		m.expectUnit(ctx)

		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_9").
			Return(nil, errs.ErrSettlementEventNotFound).Once()
		m.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.txnRepo.EXPECT().GetByExternalRefForUpdate(mock.Anything, "pi_missing").
			Return(nil, errs.ErrTransactionNotFound).Once()
		m.eventRepo.EXPECT().MarkProcessed(mock.Anything, mock.Anything).Return(nil).Once()

		err := m.reconciler().ProcessSuccessfulPayment(ctx, "evt_9", "pi_missing", nil)

		require.NoError(t, err)
	})

	t.Run("Terminal transaction is acknowledged without changes", func(t *testing.T) {
		m := newReconcilerMocks(t)
		m.expectUnit(ctx)

		txn := pendingExternal(t, m, 1, entity.KindAddFunds, "50.00", "pi_1")
		require.NoError(t, txn.MarkCompleted(m.time))

		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_1").
			Return(nil, errs.ErrSettlementEventNotFound).Once()
		m.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.txnRepo.EXPECT().GetByExternalRefForUpdate(mock.Anything, "pi_1").Return(txn, nil).Once()
		m.eventRepo.EXPECT().MarkProcessed(mock.Anything, mock.Anything).Return(nil).Once()

		err := m.reconciler().ProcessSuccessfulPayment(ctx, "evt_1", "pi_1", nil)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, txn.Status)
	})

	t.Run("Empty identifiers are rejected", func(t *testing.T) {
		m := newReconcilerMocks(t)

		assert.ErrorIs(t, m.reconciler().ProcessSuccessfulPayment(ctx, "", "pi_1", nil), errs.ErrInvalidRequest)
		assert.ErrorIs(t, m.reconciler().ProcessSuccessfulPayment(ctx, "evt_1", "", nil), errs.ErrInvalidRequest)
	})
}

func TestProcessFailedPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed payment marks row failed without balance effect", func(t *testing.T) {
		m := newReconcilerMocks(t)
		m.expectUnit(ctx)

		txn := pendingExternal(t, m, 1, entity.KindAddFunds, "50.00", "pi_1")

		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_1").
			Return(nil, errs.ErrSettlementEventNotFound).Once()
		m.eventRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.SettlementEvent) bool {
			return e.Kind == entity.EventPaymentFailed
		})).Return(nil).Once()
		m.txnRepo.EXPECT().GetByExternalRefForUpdate(mock.Anything, "pi_1").Return(txn, nil).Once()
		m.txnRepo.EXPECT().UpdateStatus(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Status == entity.StatusFailed
		})).Return(nil).Once()
		m.eventRepo.EXPECT().MarkProcessed(mock.Anything, mock.Anything).Return(nil).Once()

		err := m.reconciler().ProcessFailedPayment(ctx, "evt_1", "pi_1", nil)

		require.NoError(t, err)
	})

	t.Run("Failed payment for terminal row is a no-op", func(t *testing.T) {
		m := newReconcilerMocks(t)
		m.expectUnit(ctx)

		txn := pendingExternal(t, m, 1, entity.KindWithdraw, "30.00", "po_1")
		require.NoError(t, txn.MarkFailed(m.time))

		m.eventRepo.EXPECT().GetByEventIDForUpdate(mock.Anything, "evt_2").
			Return(nil, errs.ErrSettlementEventNotFound).Once()
		m.eventRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		m.txnRepo.EXPECT().GetByExternalRefForUpdate(mock.Anything, "po_1").Return(txn, nil).Once()
		m.eventRepo.EXPECT().MarkProcessed(mock.Anything, mock.Anything).Return(nil).Once()

		err := m.reconciler().ProcessFailedPayment(ctx, "evt_2", "po_1", nil)

		require.NoError(t, err)
	})
}
