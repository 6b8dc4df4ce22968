package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettlementEventRepository implements the settlement event idempotency
// record port using GORM
type SettlementEventRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewSettlementEventRepository creates a new SettlementEventRepository instance
func NewSettlementEventRepository(db *gorm.DB, logger coreport.Logger) *SettlementEventRepository {
	return &SettlementEventRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func modelToSettlementEvent(eventModel *model.SettlementEvent) *entity.SettlementEvent {
	return &entity.SettlementEvent{
		ID:          eventModel.ID,
		EventID:     eventModel.EventID,
		Kind:        entity.SettlementEventKind(eventModel.Kind),
		ExternalRef: eventModel.ExternalRef,
		Processed:   eventModel.Processed,
		Payload:     eventModel.Payload,
		CreatedAt:   eventModel.CreatedAt,
		ProcessedAt: eventModel.ProcessedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *SettlementEventRepository) handleDatabaseError(operation string, err error, eventID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrSettlementEventNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"event_id": eventID,
		"error":    err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateSettlementEvent
	}
	if r.errorClassifier.IsSerializationError(err) {
		return errs.ErrOperationConflict
	}

	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}

// Create stores a newly received event record
func (r *SettlementEventRepository) Create(ctx context.Context, event *entity.SettlementEvent) error {
	eventModel := model.SettlementEvent{
		EventID:     event.EventID,
		Kind:        string(event.Kind),
		ExternalRef: event.ExternalRef,
		Processed:   event.Processed,
		Payload:     event.Payload,
		CreatedAt:   event.CreatedAt,
		ProcessedAt: event.ProcessedAt,
	}

	result := r.db.WithContext(ctx).Create(&eventModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating settlement event", result.Error, event.EventID)
	}

	event.ID = eventModel.ID
	return nil
}

// GetByEventIDForUpdate retrieves an event record by its external event ID
// with an exclusive row lock held until the enclosing transaction ends
func (r *SettlementEventRepository) GetByEventIDForUpdate(ctx context.Context, eventID string) (*entity.SettlementEvent, error) {
	var eventModel model.SettlementEvent
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&eventModel, "event_id = ?", eventID)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking settlement event", result.Error, eventID)
	}

	return modelToSettlementEvent(&eventModel), nil
}

// MarkProcessed persists the processed flag and timestamp
func (r *SettlementEventRepository) MarkProcessed(ctx context.Context, event *entity.SettlementEvent) error {
	result := r.db.WithContext(ctx).Model(&model.SettlementEvent{}).
		Where("event_id = ?", event.EventID).
		Updates(map[string]interface{}{
			"processed":    event.Processed,
			"processed_at": event.ProcessedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("marking settlement event processed", result.Error, event.EventID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrSettlementEventNotFound
	}

	return nil
}
