package database

import (
	"context"
	"testing"
	"time"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	loggeradapter "github.com/tipstream/tip-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/tipstream/tip-ledger/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requires a reachable PostgreSQL instance (TEST_DB_* environment
// variables); skipped otherwise.
func TestListByUserPagesPartitionTiedRows(t *testing.T) {
	logger := loggeradapter.NewNoopLogger()
	tm := NewTestDBManager(t, logger)

	db, err := tm.Manager.Connect()
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	tm.Manager.db = db
	defer tm.Close(t)

	tm.SetupTestDB(t)

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	uow := NewUnitOfWork(db, logger, mockTime)
	ctx := context.Background()

	amount, err := entity.ParseAmount("5.00")
	require.NoError(t, err)

	// All four rows share one created_at, so user 1's two rows are tied
	// on the primary sort key
	sentByOne, _ := entity.NewTipPair(1, 2, amount, nil, mockTime)
	_, receivedByOne := entity.NewTipPair(3, 1, amount, nil, mockTime)

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)

	userRepo := uow.GetUserRepository(txCtx)
	for id := uint64(1); id <= 3; id++ {
		u, err := entity.NewUser(id, "100.00", mockTime)
		require.NoError(t, err)
		require.NoError(t, userRepo.Create(txCtx, u))
	}

	txnRepo := uow.GetTransactionRepository(txCtx)
	for _, txn := range []*entity.Transaction{sentByOne, receivedByOne} {
		require.NoError(t, txnRepo.Create(txCtx, txn))
	}
	require.NoError(t, uow.Commit(txCtx))

	readCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = uow.Rollback(readCtx) }()

	repo := uow.GetTransactionRepository(readCtx)

	pageOne, total, err := repo.ListByUser(readCtx, 1, 0, 1)
	require.NoError(t, err)
	require.Len(t, pageOne, 1)
	assert.Equal(t, int64(2), total)

	pageTwo, total, err := repo.ListByUser(readCtx, 1, 1, 1)
	require.NoError(t, err)
	require.Len(t, pageTwo, 1)
	assert.Equal(t, int64(2), total)

	// Tied rows must split across the pages with no duplicate and no gap
	got := []string{pageOne[0].ID.String(), pageTwo[0].ID.String()}
	want := []string{sentByOne.ID.String(), receivedByOne.ID.String()}
	assert.ElementsMatch(t, want, got)
}
