package user

import (
	"context"
	"errors"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/domain/port/persistence"
	"github.com/tipstream/tip-ledger/internal/domain/port/usecase"
	"github.com/tipstream/tip-ledger/internal/domain/usecase/atomic"
)

// Service handles user account management
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.UserUseCase = (*Service)(nil)

// NewService creates a user management service
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateUser creates a user with the given ID and initial balance. Both tip
// permission flags default to enabled.
func (s *Service) CreateUser(ctx context.Context, id uint64, initialBalance string) (*entity.User, error) {
	newUser, err := entity.NewUser(id, initialBalance, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = atomic.Run(ctx, s.uow, s.timeProvider, s.logger, "create_user", func(txCtx context.Context) error {
		return s.uow.GetUserRepository(txCtx).Create(txCtx, newUser)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User created", map[string]any{
		"user_id": id,
		"balance": newUser.FormattedBalance(),
	})

	return newUser, nil
}

// UserExists reports whether a user with the given ID exists
func (s *Service) UserExists(ctx context.Context, userID uint64) (bool, error) {
	if userID == 0 {
		return false, errs.ErrInvalidUserID
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = s.uow.Rollback(txCtx) }()

	_, err = s.uow.GetUserRepository(txCtx).GetByID(txCtx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, s.uow.Commit(txCtx)
}

// SetTipPermissions updates the user's give/receive flags under lock
func (s *Service) SetTipPermissions(ctx context.Context, userID uint64, canGive, canReceive bool) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	var updated *entity.User

	err := atomic.Run(ctx, s.uow, s.timeProvider, s.logger, "set_permissions", func(txCtx context.Context) error {
		userRepo := s.uow.GetUserRepository(txCtx)

		u, err := userRepo.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		u.CanGiveTips = canGive
		u.CanReceiveTips = canReceive
		u.UpdatedAt = s.timeProvider.Now()

		if err := userRepo.UpdatePermissions(txCtx, u); err != nil {
			return err
		}

		updated = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Tip permissions updated", map[string]any{
		"user_id":     userID,
		"can_give":    canGive,
		"can_receive": canReceive,
	})

	return updated, nil
}

// CreateDefaultUsers seeds a handful of funded users for development
// environments. Already-existing users are skipped.
func (s *Service) CreateDefaultUsers(ctx context.Context) error {
	seeds := []struct {
		id      uint64
		balance string
	}{
		{1, "100.00"},
		{2, "100.00"},
		{3, "250.00"},
	}

	for _, seed := range seeds {
		_, err := s.CreateUser(ctx, seed.id, seed.balance)
		if err != nil {
			if errors.Is(err, errs.ErrDuplicateUser) {
				continue
			}
			return err
		}
	}

	return nil
}
