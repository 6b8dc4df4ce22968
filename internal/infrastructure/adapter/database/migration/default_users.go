package migration

import (
	"context"

	"github.com/tipstream/tip-ledger/internal/domain/port/usecase"
)

// SeedDefaultUsers creates the development seed users through the user use
// case so the same validation and logging paths apply
func SeedDefaultUsers(ctx context.Context, userService usecase.UserUseCase) error {
	return userService.CreateDefaultUsers(ctx)
}
