package history

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/domain/port/persistence"
	"github.com/tipstream/tip-ledger/internal/domain/port/usecase"
)

// Service answers read queries over the ledger. Each query runs inside its
// own unit of work so the page and its total count come from one snapshot.
type Service struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.HistoryUseCase = (*Service)(nil)

// NewService creates a history query service
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

// GetTransactionHistory returns one page of the user's transactions, newest
// first. Out-of-range page and limit values are clamped, not rejected.
func (s *Service) GetTransactionHistory(ctx context.Context, userID uint64, page, limit int) (*entity.TransactionPage, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	page = entity.ClampHistoryPage(page)
	limit = entity.ClampHistoryLimit(limit)
	offset := (page - 1) * limit

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.uow.Rollback(txCtx) }()

	if _, err := s.uow.GetUserRepository(txCtx).GetByID(txCtx, userID); err != nil {
		return nil, err
	}

	transactions, totalCount, err := s.uow.GetTransactionRepository(txCtx).ListByUser(txCtx, userID, offset, limit)
	if err != nil {
		s.logger.Error("Transaction history query failed", map[string]any{
			"user_id": userID,
			"page":    page,
			"limit":   limit,
			"error":   err.Error(),
		})
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	return entity.NewTransactionPage(transactions, totalCount, page, limit), nil
}

// GetBalance returns the user's current balance formatted to two decimals
func (s *Service) GetBalance(ctx context.Context, userID uint64) (*entity.BalanceResponse, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.uow.Rollback(txCtx) }()

	user, err := s.uow.GetUserRepository(txCtx).GetByID(txCtx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	return entity.UserToBalanceResponse(user), nil
}
