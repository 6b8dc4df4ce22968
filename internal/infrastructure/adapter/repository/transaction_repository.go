package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements the append-only transaction log port
// using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to its database model
func entityToModel(txn *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:          txn.ID,
		Kind:        string(txn.Kind),
		AmountCents: entity.AmountToCents(txn.Amount),
		SenderID:    txn.SenderID,
		ReceiverID:  txn.ReceiverID,
		Status:      string(txn.Status),
		Description: txn.Description,
		ExternalRef: txn.ExternalRef,
		CreatedAt:   txn.CreatedAt,
		ProcessedAt: txn.ProcessedAt,
	}
}

// modelToTransaction converts a database model to a transaction entity
func modelToTransaction(txnModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          txnModel.ID,
		Kind:        entity.TransactionKind(txnModel.Kind),
		Amount:      entity.CentsToAmount(txnModel.AmountCents),
		SenderID:    txnModel.SenderID,
		ReceiverID:  txnModel.ReceiverID,
		Status:      entity.TransactionStatus(txnModel.Status),
		Description: txnModel.Description,
		ExternalRef: txnModel.ExternalRef,
		CreatedAt:   txnModel.CreatedAt,
		ProcessedAt: txnModel.ProcessedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *TransactionRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})

	if r.errorClassifier.IsSerializationError(err) {
		return errs.ErrOperationConflict
	}

	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}

// Create appends a new transaction row
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Create(entityToModel(transaction))
	if result.Error != nil {
		return r.handleDatabaseError("creating transaction", result.Error)
	}

	r.logger.Debug("Transaction row appended", map[string]any{
		"transaction_id": transaction.ID.String(),
		"kind":           string(transaction.Kind),
		"status":         string(transaction.Status),
	})
	return nil
}

// GetByID retrieves a transaction by its identifier
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).First(&txnModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting transaction", result.Error)
	}

	return modelToTransaction(&txnModel), nil
}

// GetByExternalRefForUpdate retrieves the transaction carrying the given
// external reference with an exclusive row lock held until the enclosing
// transaction ends
func (r *TransactionRepository) GetByExternalRefForUpdate(ctx context.Context, externalRef string) (*entity.Transaction, error) {
	var txnModel model.Transaction
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&txnModel, "external_ref = ?", externalRef)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking transaction by external ref", result.Error)
	}

	return modelToTransaction(&txnModel), nil
}

// UpdateStatus persists a status transition together with the processed
// timestamp. All other columns stay untouched.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"status":       string(transaction.Status),
			"processed_at": transaction.ProcessedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating transaction status", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}

	return nil
}

// ListByUser returns one history page of transactions where the user is
// sender or receiver, newest first, along with the total row count
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]*entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("sender_id = ? OR receiver_id = ?", userID, userID)

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, r.handleDatabaseError("counting transactions", err)
	}

	// Both rows of a tip pair share one created_at, so the id tiebreaker
	// keeps the order stable across the separate page scans
	var txnModels []model.Transaction
	err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&txnModels).Error
	if err != nil {
		return nil, 0, r.handleDatabaseError("listing transactions", err)
	}

	transactions := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		transactions = append(transactions, modelToTransaction(&txnModels[i]))
	}

	return transactions, totalCount, nil
}
