package entity

import (
	"time"

	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the kind of a ledger transaction
type TransactionKind string

// Transaction kinds
const (
	KindAddFunds   TransactionKind = "add_funds"
	KindSendTip    TransactionKind = "send_tip"
	KindReceiveTip TransactionKind = "receive_tip"
	KindWithdraw   TransactionKind = "withdraw"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// TransactionStatus constants. Completed and Failed are terminal.
const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction represents one row of the append-only ledger log. Rows are
// never mutated after creation except for status and the processed
// timestamp, and a terminal status is immutable.
type Transaction struct {
	ID          uuid.UUID         // Unique identifier for the transaction
	Kind        TransactionKind   // Kind of ledger movement
	Amount      decimal.Decimal   // Positive two-decimal amount
	SenderID    *uint64           // User whose balance was debited, if any
	ReceiverID  *uint64           // User whose balance was credited, if any
	Status      TransactionStatus // Current status
	Description *string           // Optional free-text description
	ExternalRef *string           // Payment-processor reference for externally settled rows
	CreatedAt   time.Time         // When the transaction was created (immutable)
	ProcessedAt *time.Time        // When the transaction reached a terminal state
}

// IsValidKind validates if the transaction kind is allowed
func IsValidKind(kind string) bool {
	switch TransactionKind(kind) {
	case KindAddFunds, KindSendTip, KindReceiveTip, KindWithdraw:
		return true
	}
	return false
}

// IsExternalKind reports whether the kind settles against the external
// payment processor
func IsExternalKind(kind TransactionKind) bool {
	return kind == KindAddFunds || kind == KindWithdraw
}

// NewTipPair creates the paired sender-view and receiver-view rows of a
// completed tip. Both rows reference the same two parties and amount and
// must be persisted in the same atomic unit of work.
func NewTipPair(
	senderID, receiverID uint64,
	amount decimal.Decimal,
	description *string,
	timeProvider coreport.TimeProvider,
) (*Transaction, *Transaction) {
	now := timeProvider.Now()

	sent := &Transaction{
		ID:          uuid.New(),
		Kind:        KindSendTip,
		Amount:      amount,
		SenderID:    &senderID,
		ReceiverID:  &receiverID,
		Status:      StatusCompleted,
		Description: description,
		CreatedAt:   now,
		ProcessedAt: &now,
	}
	received := &Transaction{
		ID:          uuid.New(),
		Kind:        KindReceiveTip,
		Amount:      amount,
		SenderID:    &senderID,
		ReceiverID:  &receiverID,
		Status:      StatusCompleted,
		Description: description,
		CreatedAt:   now,
		ProcessedAt: &now,
	}

	return sent, received
}

// NewPendingExternal creates a Pending row for a funding or withdrawal that
// was submitted to the external processor but not yet confirmed. It carries
// no balance effect until the settlement reconciler resolves it.
func NewPendingExternal(
	userID uint64,
	kind TransactionKind,
	amount decimal.Decimal,
	externalRef string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if !IsExternalKind(kind) {
		return nil, errs.ErrInvalidRequest
	}
	if externalRef == "" {
		return nil, errs.ErrInvalidRequest
	}

	txn := &Transaction{
		ID:          uuid.New(),
		Kind:        kind,
		Amount:      amount,
		Status:      StatusPending,
		ExternalRef: &externalRef,
		CreatedAt:   timeProvider.Now(),
	}
	if kind == KindAddFunds {
		txn.ReceiverID = &userID
	} else {
		txn.SenderID = &userID
	}

	return txn, nil
}

// NewCompletedFunding creates a Completed AddFunds row carrying the external
// payment reference
func NewCompletedFunding(
	userID uint64,
	amount decimal.Decimal,
	externalRef string,
	description *string,
	timeProvider coreport.TimeProvider,
) *Transaction {
	now := timeProvider.Now()
	return &Transaction{
		ID:          uuid.New(),
		Kind:        KindAddFunds,
		Amount:      amount,
		ReceiverID:  &userID,
		Status:      StatusCompleted,
		Description: description,
		ExternalRef: &externalRef,
		CreatedAt:   now,
		ProcessedAt: &now,
	}
}

// NewCompletedWithdrawal creates a Completed Withdraw row carrying the
// external payout reference
func NewCompletedWithdrawal(
	userID uint64,
	amount decimal.Decimal,
	externalRef string,
	description *string,
	timeProvider coreport.TimeProvider,
) *Transaction {
	now := timeProvider.Now()
	return &Transaction{
		ID:          uuid.New(),
		Kind:        KindWithdraw,
		Amount:      amount,
		SenderID:    &userID,
		Status:      StatusCompleted,
		Description: description,
		ExternalRef: &externalRef,
		CreatedAt:   now,
		ProcessedAt: &now,
	}
}

// SubjectID returns the user whose balance the row settles against: the
// receiver for credits, the sender for debits
func (t *Transaction) SubjectID() (uint64, bool) {
	switch t.Kind {
	case KindAddFunds, KindReceiveTip:
		if t.ReceiverID != nil {
			return *t.ReceiverID, true
		}
	case KindWithdraw, KindSendTip:
		if t.SenderID != nil {
			return *t.SenderID, true
		}
	}
	return 0, false
}

// IsTerminal reports whether the transaction reached a terminal status
func (t *Transaction) IsTerminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusFailed
}

// MarkCompleted transitions a pending transaction to Completed.
// A terminal status is never overwritten.
func (t *Transaction) MarkCompleted(timeProvider coreport.TimeProvider) error {
	if t.IsTerminal() {
		return errs.ErrTransactionTerminal
	}

	now := timeProvider.Now()
	t.Status = StatusCompleted
	t.ProcessedAt = &now
	return nil
}

// MarkFailed transitions a pending transaction to Failed.
// A terminal status is never overwritten.
func (t *Transaction) MarkFailed(timeProvider coreport.TimeProvider) error {
	if t.IsTerminal() {
		return errs.ErrTransactionTerminal
	}

	now := timeProvider.Now()
	t.Status = StatusFailed
	t.ProcessedAt = &now
	return nil
}
