package ledger

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	"github.com/tipstream/tip-ledger/internal/domain/usecase/atomic"
	"github.com/shopspring/decimal"
)

// RecordFunding atomically increments the user's balance and appends a
// Completed AddFunds row carrying the external payment reference. Invoked
// by the settlement path once the processor confirms a payment, never
// directly by a client request.
func (e *Engine) RecordFunding(
	ctx context.Context,
	userID uint64,
	amount string,
	externalPaymentRef string,
	description *string,
) (*entity.Transaction, error) {
	fundingAmount, err := e.parseExternalAmount(userID, amount, externalPaymentRef)
	if err != nil {
		return nil, err
	}

	var txn *entity.Transaction

	err = atomic.Run(ctx, e.uow, e.timeProvider, e.logger, "record_funding", func(txCtx context.Context) error {
		userRepo := e.uow.GetUserRepository(txCtx)

		user, err := userRepo.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		user.Credit(fundingAmount, e.timeProvider)
		if err := userRepo.UpdateBalance(txCtx, user); err != nil {
			return err
		}

		txn = entity.NewCompletedFunding(userID, fundingAmount, externalPaymentRef, description, e.timeProvider)
		return e.uow.GetTransactionRepository(txCtx).Create(txCtx, txn)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Funding recorded", map[string]any{
		"transaction_id": txn.ID.String(),
		"user_id":        userID,
		"amount":         entity.FormatAmount(fundingAmount),
		"external_ref":   externalPaymentRef,
	})

	return txn, nil
}

// RecordWithdrawal checks sufficiency against the current balance, then
// atomically decrements it and appends a Completed Withdraw row carrying
// the external payout reference.
func (e *Engine) RecordWithdrawal(
	ctx context.Context,
	userID uint64,
	amount string,
	externalPayoutRef string,
	description *string,
) (*entity.Transaction, error) {
	withdrawalAmount, err := e.parseExternalAmount(userID, amount, externalPayoutRef)
	if err != nil {
		return nil, err
	}

	var txn *entity.Transaction

	err = atomic.Run(ctx, e.uow, e.timeProvider, e.logger, "record_withdrawal", func(txCtx context.Context) error {
		userRepo := e.uow.GetUserRepository(txCtx)

		user, err := userRepo.GetByIDForUpdate(txCtx, userID)
		if err != nil {
			return err
		}

		if err := e.validator.ValidateSufficientFunds(user, withdrawalAmount); err != nil {
			return err
		}

		if err := user.Debit(withdrawalAmount, e.timeProvider); err != nil {
			return err
		}
		if err := userRepo.UpdateBalance(txCtx, user); err != nil {
			return err
		}

		txn = entity.NewCompletedWithdrawal(userID, withdrawalAmount, externalPayoutRef, description, e.timeProvider)
		return e.uow.GetTransactionRepository(txCtx).Create(txCtx, txn)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Withdrawal recorded", map[string]any{
		"transaction_id": txn.ID.String(),
		"user_id":        userID,
		"amount":         entity.FormatAmount(withdrawalAmount),
		"external_ref":   externalPayoutRef,
	})

	return txn, nil
}

// InitiatePendingExternal creates a Pending row for a funding or withdrawal
// that was just submitted to the external processor. Balance is untouched
// until the settlement reconciler resolves the row.
func (e *Engine) InitiatePendingExternal(
	ctx context.Context,
	userID uint64,
	kind entity.TransactionKind,
	amount string,
	externalRef string,
) (*entity.Transaction, error) {
	pendingAmount, err := e.parseExternalAmount(userID, amount, externalRef)
	if err != nil {
		return nil, err
	}

	var txn *entity.Transaction

	err = atomic.Run(ctx, e.uow, e.timeProvider, e.logger, "initiate_pending", func(txCtx context.Context) error {
		// Existence check only; no lock is needed since balance stays untouched
		if _, err := e.uow.GetUserRepository(txCtx).GetByID(txCtx, userID); err != nil {
			return err
		}

		pending, err := entity.NewPendingExternal(userID, kind, pendingAmount, externalRef, e.timeProvider)
		if err != nil {
			return err
		}
		if err := e.uow.GetTransactionRepository(txCtx).Create(txCtx, pending); err != nil {
			return err
		}

		txn = pending
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Pending external transaction initiated", map[string]any{
		"transaction_id": txn.ID.String(),
		"user_id":        userID,
		"kind":           string(kind),
		"amount":         entity.FormatAmount(pendingAmount),
		"external_ref":   externalRef,
	})

	return txn, nil
}

// parseExternalAmount normalizes and bounds-checks an externally settled
// amount and validates the accompanying identifiers
func (e *Engine) parseExternalAmount(userID uint64, amount, externalRef string) (decimal.Decimal, error) {
	if userID == 0 {
		return decimal.Zero, errs.ErrInvalidUserID
	}
	if externalRef == "" {
		return decimal.Zero, errs.ErrInvalidRequest
	}

	parsed, err := entity.ParseAmount(amount)
	if err != nil {
		return decimal.Zero, err
	}
	if err := e.validator.ValidateFundingAmount(parsed); err != nil {
		return decimal.Zero, err
	}

	return parsed, nil
}
