package persistence

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByIDForUpdate retrieves a user by ID while taking an exclusive row
	// lock for the duration of the enclosing unit of work. Callers locking
	// more than one user must lock in ascending ID order to avoid deadlock.
	//
	// Possible errors:
	// - ErrUserNotFound: if no user with the given ID exists
	// - ErrOperationConflict: if the lock could not be acquired due to a
	//   serialization conflict
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByIDForUpdate(ctx context.Context, id uint64) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: if a user with the same ID already exists
	// - ErrStorageUnavailable: if the store cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// UpdateBalance persists the user's current balance and timestamps.
	// Must be called inside the same unit of work that loaded the user with
	// GetByIDForUpdate.
	//
	// Possible errors:
	// - ErrUserNotFound: if the user no longer exists
	// - ErrStorageUnavailable: if the store cannot be reached
	UpdateBalance(ctx context.Context, user *entity.User) error

	// UpdatePermissions persists the user's give/receive tip flags
	//
	// Possible errors:
	// - ErrUserNotFound: if the user no longer exists
	// - ErrStorageUnavailable: if the store cannot be reached
	UpdatePermissions(ctx context.Context, user *entity.User) error
}
