package usecase

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
)

// UserUseCase defines methods for user-related business operations
type UserUseCase interface {
	// CreateUser creates a new user with the given ID and initial balance
	CreateUser(ctx context.Context, id uint64, initialBalance string) (*entity.User, error)

	// UserExists checks if a user exists with the given ID
	UserExists(ctx context.Context, userID uint64) (bool, error)

	// SetTipPermissions updates the user's give/receive tip flags
	SetTipPermissions(ctx context.Context, userID uint64, canGive, canReceive bool) (*entity.User, error)

	// CreateDefaultUsers seeds the development environment with a few
	// funded users
	CreateDefaultUsers(ctx context.Context) error
}
