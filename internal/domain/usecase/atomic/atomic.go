package atomic

import (
	"context"

	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/domain/port/persistence"
)

// MaxConflictRetries bounds how often a conflicted unit of work is re-run
// before ErrOperationConflict is surfaced to the caller
const MaxConflictRetries = 3

// baseBackoff is the delay before the first retry; it doubles per attempt
const baseBackoff = 25 * coreport.Millisecond

// Run executes fn inside one unit of work. On a serialization conflict the
// whole unit is rolled back and re-executed up to MaxConflictRetries times;
// no partial effect of an aborted attempt is ever observable. Any other
// error aborts immediately.
func Run(
	ctx context.Context,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	operation string,
	fn func(txCtx context.Context) error,
) error {
	var err error

	for attempt := 0; attempt <= MaxConflictRetries; attempt++ {
		if attempt > 0 {
			backoff := baseBackoff * coreport.Duration(1<<uint(attempt-1))
			logger.Warn("Retrying conflicted unit of work", map[string]any{
				"operation":   operation,
				"attempt":     attempt,
				"max_retries": MaxConflictRetries,
				"backoff_ms":  backoff.Std().Milliseconds(),
			})

			timeProvider.Sleep(backoff)

			if ctx.Err() != nil {
				return ctx.Err()
			}
		}

		err = runOnce(ctx, uow, fn)
		if err == nil {
			return nil
		}
		if !errs.IsConflictError(err) {
			return err
		}
	}

	logger.Error("Unit of work exhausted conflict retries", map[string]any{
		"operation":   operation,
		"max_retries": MaxConflictRetries,
		"error":       err.Error(),
	})

	return errs.ErrOperationConflict
}

// runOnce executes fn in a fresh transaction, committing on success and
// rolling back on any error
func runOnce(
	ctx context.Context,
	uow persistence.UnitOfWork,
	fn func(txCtx context.Context) error,
) error {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(txCtx); err != nil {
		// Rollback failures don't change the outcome; the transaction is
		// already doomed
		_ = uow.Rollback(txCtx)
		return err
	}

	return uow.Commit(txCtx)
}
