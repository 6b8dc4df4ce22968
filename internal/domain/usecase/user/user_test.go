package user

import (
	"context"
	"errors"
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

type userMocks struct {
	uow      *persistencemocks.MockUnitOfWork
	userRepo *persistencemocks.MockUserRepository
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func newUserMocks(t *testing.T) *userMocks {
	t.Helper()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	m := &userMocks{
		uow:      persistencemocks.NewMockUnitOfWork(t),
		userRepo: persistencemocks.NewMockUserRepository(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}

	m.time.EXPECT().Now().Return(fixedTime).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return m
}

func (m *userMocks) service() *Service {
	return NewService(m.uow, m.time, m.logger)
}

func (m *userMocks) expectUnit(ctx context.Context) {
	m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
}

func (m *userMocks) expectAbortedUnit(ctx context.Context) {
	m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a user with both permissions enabled", func(t *testing.T) {
		m := newUserMocks(t)
		m.expectUnit(ctx)

		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 42 &&
				u.FormattedBalance() == "25.00" &&
				u.CanGiveTips && u.CanReceiveTips
		})).Return(nil).Once()

		created, err := m.service().CreateUser(ctx, 42, "25.00")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), created.ID)
		assert.Equal(t, "25.00", created.FormattedBalance())
	})

	t.Run("Empty initial balance is rejected", func(t *testing.T) {
		m := newUserMocks(t)

		created, err := m.service().CreateUser(ctx, 42, "")

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Zero ID is rejected without a unit of work", func(t *testing.T) {
		m := newUserMocks(t)

		created, err := m.service().CreateUser(ctx, 0, "10.00")

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Negative initial balance is rejected", func(t *testing.T) {
		m := newUserMocks(t)

		created, err := m.service().CreateUser(ctx, 42, "-1.00")

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Duplicate ID aborts the unit", func(t *testing.T) {
		m := newUserMocks(t)
		m.expectAbortedUnit(ctx)

		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()

		created, err := m.service().CreateUser(ctx, 42, "10.00")

		assert.Nil(t, created)
		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}

func TestUserExists(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing user", func(t *testing.T) {
		m := newUserMocks(t)
		m.expectUnit(ctx)
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		user, err := entity.NewUser(1, "0.00", m.time)
		require.NoError(t, err)
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(1)).Return(user, nil).Once()

		exists, err := m.service().UserExists(ctx, 1)

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Missing user reports false without error", func(t *testing.T) {
		m := newUserMocks(t)
		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(2)).Return(nil, errs.ErrUserNotFound).Once()

		exists, err := m.service().UserExists(ctx, 2)

		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Storage error is surfaced", func(t *testing.T) {
		m := newUserMocks(t)
		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		repoErr := errors.New("connection reset")
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(3)).Return(nil, repoErr).Once()

		exists, err := m.service().UserExists(ctx, 3)

		assert.False(t, exists)
		assert.ErrorIs(t, err, repoErr)
	})

	t.Run("Zero ID is rejected", func(t *testing.T) {
		m := newUserMocks(t)

		exists, err := m.service().UserExists(ctx, 0)

		assert.False(t, exists)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestSetTipPermissions(t *testing.T) {
	ctx := context.Background()

	t.Run("Updates both flags under lock", func(t *testing.T) {
		m := newUserMocks(t)
		m.expectUnit(ctx)

		user, err := entity.NewUser(1, "10.00", m.time)
		require.NoError(t, err)

		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(user, nil).Once()
		m.userRepo.EXPECT().UpdatePermissions(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return !u.CanGiveTips && u.CanReceiveTips
		})).Return(nil).Once()

		updated, err := m.service().SetTipPermissions(ctx, 1, false, true)

		require.NoError(t, err)
		assert.False(t, updated.CanGiveTips)
		assert.True(t, updated.CanReceiveTips)
	})

	t.Run("Unknown user aborts the unit", func(t *testing.T) {
		m := newUserMocks(t)
		m.expectAbortedUnit(ctx)

		m.userRepo.EXPECT().GetByIDForUpdate(mock.Anything, uint64(5)).Return(nil, errs.ErrUserNotFound).Once()

		updated, err := m.service().SetTipPermissions(ctx, 5, true, true)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Zero ID is rejected", func(t *testing.T) {
		m := newUserMocks(t)

		updated, err := m.service().SetTipPermissions(ctx, 0, true, true)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}

func TestCreateDefaultUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds all default users", func(t *testing.T) {
		m := newUserMocks(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Times(3)
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Times(3)

		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Times(3)

		err := m.service().CreateDefaultUsers(ctx)

		require.NoError(t, err)
	})

	t.Run("Existing users are skipped", func(t *testing.T) {
		m := newUserMocks(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Times(3)
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
		m.uow.EXPECT().Commit(mock.Anything).Return(nil).Twice()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == 1
		})).Return(errs.ErrDuplicateUser).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID != 1
		})).Return(nil).Twice()

		err := m.service().CreateDefaultUsers(ctx)

		require.NoError(t, err)
	})

	t.Run("Unexpected failure stops seeding", func(t *testing.T) {
		m := newUserMocks(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(ctx, nil).Once()
		m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
		m.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		repoErr := errors.New("connection reset")
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr).Once()

		err := m.service().CreateDefaultUsers(ctx)

		assert.ErrorIs(t, err, repoErr)
	})
}
