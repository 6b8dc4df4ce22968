package persistence

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	"github.com/google/uuid"
)

// TransactionRepository defines essential methods to interact with the
// append-only transaction log
type TransactionRepository interface {
	// Create appends a new transaction row
	//
	// Possible errors:
	// - ErrStorageUnavailable: if the store cannot be reached
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by its identifier
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction with the given ID exists
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// GetByExternalRefForUpdate retrieves the transaction carrying the given
	// external processor reference, taking an exclusive row lock for the
	// duration of the enclosing unit of work
	//
	// Possible errors:
	// - ErrTransactionNotFound: if no transaction carries the reference
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByExternalRefForUpdate(ctx context.Context, externalRef string) (*entity.Transaction, error)

	// UpdateStatus persists a status transition together with the processed
	// timestamp. Only status and processed-at are ever updated; all other
	// columns are immutable.
	//
	// Possible errors:
	// - ErrTransactionNotFound: if the transaction no longer exists
	// - ErrStorageUnavailable: if the store cannot be reached
	UpdateStatus(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns one history page for transactions where the user is
	// sender or receiver, ordered by creation time descending, along with
	// the total row count
	//
	// Possible errors:
	// - ErrStorageUnavailable: if the store cannot be reached
	ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]*entity.Transaction, int64, error)
}
