package usecase

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
)

// TipResult contains the sender-perspective transaction row plus both
// resulting balances of a successful tip
type TipResult struct {
	Transaction        *entity.Transaction
	SenderNewBalance   string
	ReceiverNewBalance string
}

// LedgerUseCase exposes the atomic operations of the transaction engine.
// Amounts cross this boundary as decimal strings and are normalized exactly
// once inside.
type LedgerUseCase interface {
	// SendTip atomically moves amount from sender to receiver and writes the
	// paired SendTip/ReceiveTip rows
	SendTip(ctx context.Context, senderID, receiverID uint64, amount string, description *string) (*TipResult, error)

	// RecordFunding atomically increments the user's balance and writes a
	// Completed AddFunds row carrying the external payment reference
	RecordFunding(ctx context.Context, userID uint64, amount string, externalPaymentRef string, description *string) (*entity.Transaction, error)

	// RecordWithdrawal checks sufficiency, atomically decrements the user's
	// balance and writes a Completed Withdraw row
	RecordWithdrawal(ctx context.Context, userID uint64, amount string, externalPayoutRef string, description *string) (*entity.Transaction, error)

	// InitiatePendingExternal creates a Pending row for a funding or
	// withdrawal awaiting external settlement, without touching balance
	InitiatePendingExternal(ctx context.Context, userID uint64, kind entity.TransactionKind, amount string, externalRef string) (*entity.Transaction, error)
}
