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

// UserRepository implements the user persistence port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.NewUser(userModel.ID, "0.00", r.timeProvider)
	if err != nil {
		r.logger.Error("Failed to create user entity", map[string]any{
			"user_id": userModel.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create user entity: %s", errs.ErrInternalServer, err.Error())
	}

	user.SetBalance(entity.CentsToAmount(userModel.BalanceCents), r.timeProvider)
	user.CanGiveTips = userModel.CanGiveTips
	user.CanReceiveTips = userModel.CanReceiveTips
	user.CustomerRef = userModel.CustomerRef
	user.PayoutRef = userModel.PayoutRef
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}
	if r.errorClassifier.IsSerializationError(err) {
		return errs.ErrOperationConflict
	}

	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// GetByIDForUpdate retrieves a user by ID with an exclusive row lock held
// until the enclosing transaction ends
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Locking user row", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:             user.ID,
		BalanceCents:   entity.AmountToCents(user.Balance()),
		CanGiveTips:    user.CanGiveTips,
		CanReceiveTips: user.CanReceiveTips,
		CustomerRef:    user.CustomerRef,
		PayoutRef:      user.PayoutRef,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Debug("User created", map[string]any{
		"user_id": user.ID,
		"balance": user.FormattedBalance(),
	})
	return nil
}

// UpdateBalance persists the user's current balance and timestamps
func (r *UserRepository) UpdateBalance(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"balance_cents": entity.AmountToCents(user.Balance()),
			"updated_at":    user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating balance", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during balance update", map[string]any{
			"user_id": user.ID,
		})
		return errs.ErrUserNotFound
	}

	return nil
}

// UpdatePermissions persists the user's give/receive tip flags
func (r *UserRepository) UpdatePermissions(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"can_give_tips":    user.CanGiveTips,
			"can_receive_tips": user.CanReceiveTips,
			"updated_at":       user.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating permissions", result.Error, user.ID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}
