package persistence

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
)

// SettlementEventRepository manages the idempotency records for external
// settlement events
type SettlementEventRepository interface {
	// Create stores a newly received event record
	//
	// Possible errors:
	// - ErrDuplicateSettlementEvent: if an event with the same external
	//   event ID was already stored
	// - ErrStorageUnavailable: if the store cannot be reached
	Create(ctx context.Context, event *entity.SettlementEvent) error

	// GetByEventIDForUpdate retrieves an event record by its external event
	// ID, taking an exclusive row lock for the duration of the enclosing
	// unit of work so concurrent deliveries of the same event serialize
	//
	// Possible errors:
	// - ErrSettlementEventNotFound: if no record exists for the event ID
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByEventIDForUpdate(ctx context.Context, eventID string) (*entity.SettlementEvent, error)

	// MarkProcessed persists the processed flag and timestamp
	//
	// Possible errors:
	// - ErrSettlementEventNotFound: if the record no longer exists
	// - ErrStorageUnavailable: if the store cannot be reached
	MarkProcessed(ctx context.Context, event *entity.SettlementEvent) error
}
