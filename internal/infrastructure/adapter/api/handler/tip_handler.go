package handler

import (
	"net/http"

	domainerr "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/domain/port/usecase"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TipHandler handles tip-related HTTP requests
type TipHandler struct {
	ledger usecase.LedgerUseCase
	logger coreport.Logger
}

// NewTipHandler creates a new tip handler instance
func NewTipHandler(ledger usecase.LedgerUseCase, logger coreport.Logger) *TipHandler {
	return &TipHandler{
		ledger: ledger,
		logger: logger,
	}
}

// SendTip handles the POST /users/:userId/tips endpoint
func (h *TipHandler) SendTip(c *gin.Context) {
	senderID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.TipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid tip request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.ledger.SendTip(c.Request.Context(), senderID, req.ReceiverID, req.Amount, req.Description)
	if err != nil {
		h.logger.Error("Tip failed", map[string]any{
			"sender_id":   senderID,
			"receiver_id": req.ReceiverID,
			"amount":      req.Amount,
			"error":       err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TipResponse{
		TransactionID:      result.Transaction.ID.String(),
		SenderID:           senderID,
		ReceiverID:         req.ReceiverID,
		Amount:             result.Transaction.Amount.StringFixed(2),
		SenderNewBalance:   result.SenderNewBalance,
		ReceiverNewBalance: result.ReceiverNewBalance,
	})
}
