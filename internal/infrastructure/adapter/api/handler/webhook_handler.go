package handler

import (
	"net/http"

	domainerr "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/domain/port/usecase"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WebhookHandler receives settlement events from the payment processor.
// Deliveries are at-least-once, so the settlement use case deduplicates
// by event ID; a duplicate delivery gets the same acknowledgement.
type WebhookHandler struct {
	settlement usecase.SettlementUseCase
	logger     coreport.Logger
}

// NewWebhookHandler creates a new webhook handler instance
func NewWebhookHandler(settlement usecase.SettlementUseCase, logger coreport.Logger) *WebhookHandler {
	return &WebhookHandler{
		settlement: settlement,
		logger:     logger,
	}
}

// HandlePaymentEvent handles the POST /webhooks/payments endpoint
func (h *WebhookHandler) HandlePaymentEvent(c *gin.Context) {
	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid webhook request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	var err error
	switch req.EventType {
	case dto.EventPaymentSucceeded:
		err = h.settlement.ProcessSuccessfulPayment(c.Request.Context(), req.EventID, req.ExternalRef, req.Payload)
	case dto.EventPaymentFailed:
		err = h.settlement.ProcessFailedPayment(c.Request.Context(), req.EventID, req.ExternalRef, req.Payload)
	}

	if err != nil {
		h.logger.Error("Failed to process settlement event", map[string]any{
			"event_id":     req.EventID,
			"event_type":   req.EventType,
			"external_ref": req.ExternalRef,
			"error":        err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{
		EventID:  req.EventID,
		Received: true,
	})
}
