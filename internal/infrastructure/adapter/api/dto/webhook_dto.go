package dto

import "encoding/json"

// Webhook event types accepted from the payment processor
const (
	EventPaymentSucceeded = "payment.succeeded"
	EventPaymentFailed    = "payment.failed"
)

// WebhookRequest represents a settlement event delivered by the payment
// processor. Deliveries are at-least-once; the event ID is the
// deduplication key.
type WebhookRequest struct {
	EventID     string          `json:"eventId" binding:"required"`
	EventType   string          `json:"eventType" binding:"required,oneof=payment.succeeded payment.failed"`
	ExternalRef string          `json:"externalRef" binding:"required"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// WebhookResponse acknowledges a settlement event
type WebhookResponse struct {
	EventID  string `json:"eventId"`
	Received bool   `json:"received"`
}
