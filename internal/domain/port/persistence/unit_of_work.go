package persistence

import (
	"context"
)

// UnitOfWork is the atomic scope every balance mutation runs inside. All
// reads and writes performed through repositories bound to the returned
// context commit together or not at all, and concurrent units touching the
// same rows serialize or abort for retry.
type UnitOfWork interface {
	// Begin starts a new serializable transaction and returns a
	// transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context. A serialization
	// conflict surfaces as ErrOperationConflict so callers can retry the
	// whole unit.
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetSettlementEventRepository returns a settlement event repository bound to the current transaction
	GetSettlementEventRepository(ctx context.Context) SettlementEventRepository
}
