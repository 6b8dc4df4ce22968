package usecase

import (
	"context"
)

// SettlementUseCase applies external settlement events exactly once.
// Events referencing unknown or already-terminal transactions are
// acknowledged as no-ops so the processor stops redelivering them.
type SettlementUseCase interface {
	// ProcessSuccessfulPayment completes the pending transaction carrying
	// the external reference and applies its balance effect
	ProcessSuccessfulPayment(ctx context.Context, eventID, externalRef string, payload []byte) error

	// ProcessFailedPayment marks the pending transaction carrying the
	// external reference as Failed without any balance effect
	ProcessFailedPayment(ctx context.Context, eventID, externalRef string, payload []byte) error
}
