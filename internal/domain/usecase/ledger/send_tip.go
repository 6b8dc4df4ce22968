package ledger

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	"github.com/tipstream/tip-ledger/internal/domain/port/persistence"
	"github.com/tipstream/tip-ledger/internal/domain/port/usecase"
	"github.com/tipstream/tip-ledger/internal/domain/usecase/atomic"
)

// SendTip atomically moves amount from sender to receiver. Inside one unit
// of work it locks both user rows in ascending ID order, runs the invariant
// checks (self-transfer, amount, permissions, sufficiency - stopping at the
// first failure), persists both balances and appends the paired
// SendTip/ReceiveTip rows as Completed.
func (e *Engine) SendTip(
	ctx context.Context,
	senderID, receiverID uint64,
	amount string,
	description *string,
) (*usecase.TipResult, error) {
	if senderID == 0 || receiverID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	if err := e.validator.ValidateSelfTransfer(senderID, receiverID); err != nil {
		return nil, err
	}

	tipAmount, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if err := e.validator.ValidateTipAmount(tipAmount); err != nil {
		return nil, err
	}

	var result *usecase.TipResult

	err = atomic.Run(ctx, e.uow, e.timeProvider, e.logger, "send_tip", func(txCtx context.Context) error {
		userRepo := e.uow.GetUserRepository(txCtx)

		// Lock both rows in ascending ID order so opposing concurrent tips
		// between the same pair cannot deadlock
		sender, receiver, err := e.lockTipParties(txCtx, userRepo, senderID, receiverID)
		if err != nil {
			return err
		}

		if err := e.validator.ValidateTipPermissions(sender, receiver); err != nil {
			return err
		}
		if err := e.validator.ValidateSufficientFunds(sender, tipAmount); err != nil {
			return err
		}

		if err := sender.Debit(tipAmount, e.timeProvider); err != nil {
			return err
		}
		receiver.Credit(tipAmount, e.timeProvider)

		if err := userRepo.UpdateBalance(txCtx, sender); err != nil {
			return err
		}
		if err := userRepo.UpdateBalance(txCtx, receiver); err != nil {
			return err
		}

		sent, received := entity.NewTipPair(senderID, receiverID, tipAmount, description, e.timeProvider)

		txnRepo := e.uow.GetTransactionRepository(txCtx)
		if err := txnRepo.Create(txCtx, sent); err != nil {
			return err
		}
		if err := txnRepo.Create(txCtx, received); err != nil {
			return err
		}

		result = &usecase.TipResult{
			Transaction:        sent,
			SenderNewBalance:   sender.FormattedBalance(),
			ReceiverNewBalance: receiver.FormattedBalance(),
		}
		return nil
	})

	if err != nil {
		e.logTipFailure(senderID, receiverID, amount, err)
		return nil, err
	}

	e.logger.Info("Tip sent", map[string]any{
		"transaction_id": result.Transaction.ID.String(),
		"sender_id":      senderID,
		"receiver_id":    receiverID,
		"amount":         entity.FormatAmount(tipAmount),
	})

	return result, nil
}

// lockTipParties loads and locks the two user rows in ascending ID order,
// returning them as (sender, receiver)
func (e *Engine) lockTipParties(
	ctx context.Context,
	userRepo persistence.UserRepository,
	senderID, receiverID uint64,
) (*entity.User, *entity.User, error) {
	firstID, secondID := senderID, receiverID
	if receiverID < senderID {
		firstID, secondID = receiverID, senderID
	}

	first, err := userRepo.GetByIDForUpdate(ctx, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := userRepo.GetByIDForUpdate(ctx, secondID)
	if err != nil {
		return nil, nil, err
	}

	if firstID == senderID {
		return first, second, nil
	}
	return second, first, nil
}

// logTipFailure logs a failed tip at the severity its cause deserves
func (e *Engine) logTipFailure(senderID, receiverID uint64, amount string, err error) {
	fields := map[string]any{
		"sender_id":   senderID,
		"receiver_id": receiverID,
		"amount":      amount,
		"error":       err.Error(),
		"error_code":  errs.ErrorCode(err),
	}

	if errs.IsValidationError(err) || errs.IsNotFoundError(err) {
		e.logger.Warn("Tip rejected", fields)
		return
	}
	e.logger.Error("Tip failed", fields)
}
