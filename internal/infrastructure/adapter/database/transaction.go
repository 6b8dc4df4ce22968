package database

import (
	"context"
	"fmt"
	"strings"

	errs "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/domain/port/persistence"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern for database transactions.
// Every unit runs at SERIALIZABLE isolation; serialization failures surface
// as ErrOperationConflict so callers can retry the whole unit.
type UnitOfWork struct {
	db              *gorm.DB
	logger          coreport.Logger
	timeProvider    coreport.TimeProvider
	errorClassifier *repository.ErrorClassifier
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:              db,
		logger:          logger,
		timeProvider:    timeProvider,
		errorClassifier: repository.NewErrorClassifier(),
	}
}

// Begin starts a new database transaction
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("%w: failed to begin transaction: %s", errs.ErrStorageUnavailable, tx.Error.Error())
	}

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
		tx.Rollback()
		u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
		return ctx, fmt.Errorf("%w: failed to set isolation level: %s", errs.ErrStorageUnavailable, err.Error())
	}

	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction. Serialization conflicts are mapped
// to ErrOperationConflict.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		if u.errorClassifier.IsSerializationError(err) {
			u.logger.Warn("Transaction commit hit serialization conflict", map[string]any{
				"error": err.Error(),
			})
			return errs.ErrOperationConflict
		}
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: failed to commit transaction: %s", errs.ErrStorageUnavailable, err.Error())
	}

	return nil
}

// Rollback rolls back the current transaction. Rolling back an already
// finished transaction is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return fmt.Errorf("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && strings.Contains(err.Error(), "already been committed or rolled back") {
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	return nil
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	db := u.getDbFromContext(ctx)
	return repository.NewUserRepository(db, u.timeProvider, u.logger)
}

// GetTransactionRepository returns a transaction repository in the current transaction
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	db := u.getDbFromContext(ctx)
	return repository.NewTransactionRepository(db, u.logger)
}

// GetSettlementEventRepository returns a settlement event repository in the current transaction
func (u *UnitOfWork) GetSettlementEventRepository(ctx context.Context) persistence.SettlementEventRepository {
	db := u.getDbFromContext(ctx)
	return repository.NewSettlementEventRepository(db, u.logger)
}

// getDbFromContext retrieves the database instance from context
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
