package entity

import (
	"time"

	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
)

// SettlementEventKind represents the kind of an external settlement event
type SettlementEventKind string

// Settlement event kinds delivered by the payment processor
const (
	EventPaymentSucceeded SettlementEventKind = "payment_succeeded"
	EventPaymentFailed    SettlementEventKind = "payment_failed"
)

// SettlementEvent is the idempotency record for one webhook delivery from
// the external payment processor. Processed flips to true only after the
// corresponding transaction and balance mutations commit; a re-delivered
// event with Processed true is a no-op.
type SettlementEvent struct {
	ID          uint64              // Storage identifier
	EventID     string              // Unique external event identifier
	Kind        SettlementEventKind // Event kind
	ExternalRef string              // Payment/payout reference the event settles
	Processed   bool                // Whether side effects have been committed
	Payload     []byte              // Raw event payload as delivered
	CreatedAt   time.Time           // First time this event was received
	ProcessedAt *time.Time          // When side effects committed
}

// IsValidSettlementEventKind validates if the event kind is allowed
func IsValidSettlementEventKind(kind string) bool {
	switch SettlementEventKind(kind) {
	case EventPaymentSucceeded, EventPaymentFailed:
		return true
	}
	return false
}

// NewSettlementEvent creates an unprocessed settlement event record
func NewSettlementEvent(
	eventID string,
	kind SettlementEventKind,
	externalRef string,
	payload []byte,
	timeProvider coreport.TimeProvider,
) (*SettlementEvent, error) {
	if eventID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if !IsValidSettlementEventKind(string(kind)) {
		return nil, errs.ErrInvalidRequest
	}
	if externalRef == "" {
		return nil, errs.ErrInvalidRequest
	}

	return &SettlementEvent{
		EventID:     eventID,
		Kind:        kind,
		ExternalRef: externalRef,
		Payload:     payload,
		CreatedAt:   timeProvider.Now(),
	}, nil
}

// MarkProcessed records that the event's side effects have been committed
func (e *SettlementEvent) MarkProcessed(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	e.Processed = true
	e.ProcessedAt = &now
}
