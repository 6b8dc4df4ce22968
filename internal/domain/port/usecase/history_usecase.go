package usecase

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
)

// HistoryUseCase is the read path over the transaction log
type HistoryUseCase interface {
	// GetTransactionHistory returns one page of transactions where the user
	// is sender or receiver, newest first. Page and limit are clamped to
	// their allowed ranges.
	GetTransactionHistory(ctx context.Context, userID uint64, page, limit int) (*entity.TransactionPage, error)

	// GetBalance returns the user's current stored balance
	GetBalance(ctx context.Context, userID uint64) (*entity.BalanceResponse, error)
}
