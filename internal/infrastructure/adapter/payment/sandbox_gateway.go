package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	paymentport "github.com/tipstream/tip-ledger/internal/domain/port/payment"
)

// SandboxGateway is an in-process stand-in for a real payment processor.
// It issues unique external references immediately; settlement outcomes
// arrive later through the webhook endpoint, exactly as with a real
// provider's sandbox environment.
type SandboxGateway struct {
	logger coreport.Logger
}

// NewSandboxGateway creates a new sandbox payment gateway
func NewSandboxGateway(logger coreport.Logger) paymentport.Gateway {
	return &SandboxGateway{logger: logger}
}

// CreatePaymentIntent registers a funding intent and returns its reference
func (g *SandboxGateway) CreatePaymentIntent(ctx context.Context, userID uint64, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := "pi_" + uuid.NewString()
	g.logger.Info("Created sandbox payment intent", map[string]any{
		"user_id":      userID,
		"amount":       amount.StringFixed(2),
		"external_ref": ref,
	})
	return ref, nil
}

// CreatePayout registers a payout and returns its reference
func (g *SandboxGateway) CreatePayout(ctx context.Context, userID uint64, amount decimal.Decimal) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ref := "po_" + uuid.NewString()
	g.logger.Info("Created sandbox payout", map[string]any{
		"user_id":      userID,
		"amount":       amount.StringFixed(2),
		"external_ref": ref,
	})
	return ref, nil
}
