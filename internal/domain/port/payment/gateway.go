package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// Gateway is the surface of the external payment processor the service
// depends on. The processor confirms or rejects each created intent
// asynchronously through settlement events keyed by the returned reference.
type Gateway interface {
	// CreatePaymentIntent registers a funding intent with the processor and
	// returns the external reference used to correlate its settlement
	CreatePaymentIntent(ctx context.Context, userID uint64, amount decimal.Decimal) (string, error)

	// CreatePayout registers a payout with the processor and returns the
	// external reference used to correlate its settlement
	CreatePayout(ctx context.Context, userID uint64, amount decimal.Decimal) (string, error)
}
