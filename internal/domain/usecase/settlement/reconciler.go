package settlement

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

// Reconciler applies external settlement events exactly once. The
// idempotency record, the transaction status transition and the balance
// effect all commit in the same unit of work, so at-least-once webhook
// delivery can never apply an effect twice.
type Reconciler struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// Compile-time check that Reconciler satisfies the settlement use case port
var _ usecase.SettlementUseCase = (*Reconciler)(nil)

// NewReconciler creates a settlement reconciler bound to the given unit of work
func NewReconciler(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Reconciler {
	return &Reconciler{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ProcessSuccessfulPayment completes the pending transaction carrying the
// external reference and applies its balance effect
func (r *Reconciler) ProcessSuccessfulPayment(ctx context.Context, eventID, externalRef string, payload []byte) error {
	return r.process(ctx, eventID, entity.EventPaymentSucceeded, externalRef, payload)
}

// ProcessFailedPayment marks the pending transaction carrying the external
// reference as Failed with no balance effect
func (r *Reconciler) ProcessFailedPayment(ctx context.Context, eventID, externalRef string, payload []byte) error {
	return r.process(ctx, eventID, entity.EventPaymentFailed, externalRef, payload)
}

// process runs the settlement state machine for one delivery
func (r *Reconciler) process(
	ctx context.Context,
	eventID string,
	kind entity.SettlementEventKind,
	externalRef string,
	payload []byte,
) error {
	if eventID == "" || externalRef == "" {
		return errs.ErrInvalidRequest
	}

	err := atomic.Run(ctx, r.uow, r.timeProvider, r.logger, "settlement", func(txCtx context.Context) error {
		eventRepo := r.uow.GetSettlementEventRepository(txCtx)

		event, err := r.claimEvent(txCtx, eventRepo, eventID, kind, externalRef, payload)
		if err != nil {
			return err
		}
		if event == nil {
			// Already processed; duplicate delivery is acknowledged as success
			return nil
		}

		if err := r.applyEvent(txCtx, event); err != nil {
			return err
		}

		event.MarkProcessed(r.timeProvider)
		return eventRepo.MarkProcessed(txCtx, event)
	})
	if err != nil {
		r.logger.Error("Settlement event processing failed", map[string]any{
			"event_id":     eventID,
			"kind":         string(kind),
			"external_ref": externalRef,
			"error":        err.Error(),
		})
		return err
	}

	return nil
}

// claimEvent loads or creates the idempotency record under lock. It returns
// nil when the event was already processed and no work remains.
func (r *Reconciler) claimEvent(
	ctx context.Context,
	eventRepo persistence.SettlementEventRepository,
	eventID string,
	kind entity.SettlementEventKind,
	externalRef string,
	payload []byte,
) (*entity.SettlementEvent, error) {
	event, err := eventRepo.GetByEventIDForUpdate(ctx, eventID)
	switch {
	case err == nil:
		if event.Processed {
			r.logger.Debug("Duplicate settlement event delivery skipped", map[string]any{
				"event_id":     eventID,
				"external_ref": externalRef,
			})
			return nil, nil
		}
		return event, nil

	case errors.Is(err, errs.ErrSettlementEventNotFound):
		event, err = entity.NewSettlementEvent(eventID, kind, externalRef, payload, r.timeProvider)
		if err != nil {
			return nil, err
		}
		if err := eventRepo.Create(ctx, event); err != nil {
			// A concurrent delivery inserted the record first; retry the
			// unit so this delivery observes its outcome
			if errors.Is(err, errs.ErrDuplicateSettlementEvent) {
				return nil, errs.ErrOperationConflict
			}
			return nil, err
		}
		return event, nil

	default:
		return nil, err
	}
}

// applyEvent resolves the referenced transaction and applies the event's
// effect. Unknown references and already-terminal transactions are benign
// no-ops; the event is still marked processed so redelivery stays silent.
func (r *Reconciler) applyEvent(ctx context.Context, event *entity.SettlementEvent) error {
	txnRepo := r.uow.GetTransactionRepository(ctx)

	txn, err := txnRepo.GetByExternalRefForUpdate(ctx, event.ExternalRef)
	if err != nil {
		if errors.Is(err, errs.ErrTransactionNotFound) {
			r.logger.Warn("Settlement event references unknown transaction", map[string]any{
				"event_id":     event.EventID,
				"external_ref": event.ExternalRef,
			})
			return nil
		}
		return err
	}

	if txn.IsTerminal() {
		r.logger.Warn("Settlement event references terminal transaction", map[string]any{
			"event_id":       event.EventID,
			"external_ref":   event.ExternalRef,
			"transaction_id": txn.ID.String(),
			"status":         string(txn.Status),
		})
		return nil
	}

	if event.Kind == entity.EventPaymentFailed {
		// Funds were never debited or credited for a transaction that
		// didn't settle
		if err := txn.MarkFailed(r.timeProvider); err != nil {
			return err
		}
		if err := txnRepo.UpdateStatus(ctx, txn); err != nil {
			return err
		}

		r.logger.Info("Settlement marked transaction failed", map[string]any{
			"event_id":       event.EventID,
			"transaction_id": txn.ID.String(),
		})
		return nil
	}

	return r.settleSuccess(ctx, event, txn)
}

// settleSuccess applies the balance effect of a confirmed payment and
// completes the transaction
func (r *Reconciler) settleSuccess(ctx context.Context, event *entity.SettlementEvent, txn *entity.Transaction) error {
	subjectID, ok := txn.SubjectID()
	if !ok {
		return errs.NewSettlementError(event.EventID, event.ExternalRef,
			"transaction has no settling party", errs.ErrInternalServer)
	}

	userRepo := r.uow.GetUserRepository(ctx)
	txnRepo := r.uow.GetTransactionRepository(ctx)

	user, err := userRepo.GetByIDForUpdate(ctx, subjectID)
	if err != nil {
		return err
	}

	switch txn.Kind {
	case entity.KindAddFunds:
		user.Credit(txn.Amount, r.timeProvider)

	case entity.KindWithdraw:
		if err := user.Debit(txn.Amount, r.timeProvider); err != nil {
			// The balance no longer covers the payout; fail the row rather
			// than drive the balance negative
			r.logger.Warn("Withdrawal settlement exceeds current balance, failing transaction", map[string]any{
				"event_id":       event.EventID,
				"transaction_id": txn.ID.String(),
				"user_id":        subjectID,
				"amount":         entity.FormatAmount(txn.Amount),
				"balance":        user.FormattedBalance(),
			})
			if err := txn.MarkFailed(r.timeProvider); err != nil {
				return err
			}
			return txnRepo.UpdateStatus(ctx, txn)
		}

	default:
		return errs.NewSettlementError(event.EventID, event.ExternalRef,
			"transaction kind does not settle externally", errs.ErrInternalServer)
	}

	if err := userRepo.UpdateBalance(ctx, user); err != nil {
		return err
	}
	if err := txn.MarkCompleted(r.timeProvider); err != nil {
		return err
	}
	if err := txnRepo.UpdateStatus(ctx, txn); err != nil {
		return err
	}

	r.logger.Info("Settlement completed transaction", map[string]any{
		"event_id":       event.EventID,
		"transaction_id": txn.ID.String(),
		"user_id":        subjectID,
		"kind":           string(txn.Kind),
		"amount":         entity.FormatAmount(txn.Amount),
		"new_balance":    user.FormattedBalance(),
	})

	return nil
}
