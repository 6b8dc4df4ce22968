package handler

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/tipstream/tip-ledger/internal/domain/entity"
	domainerr "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	paymentport "github.com/tipstream/tip-ledger/internal/domain/port/payment"
	"github.com/tipstream/tip-ledger/internal/domain/port/usecase"
	ledgerUseCase "github.com/tipstream/tip-ledger/internal/domain/usecase/ledger"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ExternalHandler handles funding and withdrawal requests that settle
// through the external payment processor
type ExternalHandler struct {
	ledger    usecase.LedgerUseCase
	gateway   paymentport.Gateway
	validator *ledgerUseCase.Validator
	logger    coreport.Logger
}

// NewExternalHandler creates a new external transaction handler instance
func NewExternalHandler(
	ledger usecase.LedgerUseCase,
	gateway paymentport.Gateway,
	logger coreport.Logger,
) *ExternalHandler {
	return &ExternalHandler{
		ledger:    ledger,
		gateway:   gateway,
		validator: ledgerUseCase.NewValidator(),
		logger:    logger,
	}
}

// parseAndValidateAmount normalizes the requested amount and bounds-checks
// it before anything is registered with the processor
func (h *ExternalHandler) parseAndValidateAmount(raw string) (decimal.Decimal, error) {
	amount, err := entity.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if err := h.validator.ValidateFundingAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// CreateFunding handles the POST /users/:userId/funding endpoint.
// It registers a payment intent with the processor and writes a Pending
// AddFunds row; the balance moves only when the settlement event arrives.
func (h *ExternalHandler) CreateFunding(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.FundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid funding request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	amount, err := h.parseAndValidateAmount(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	externalRef, err := h.gateway.CreatePaymentIntent(c.Request.Context(), userID, amount)
	if err != nil {
		h.logger.Error("Failed to create payment intent", map[string]any{
			"user_id": userID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	txn, err := h.ledger.InitiatePendingExternal(c.Request.Context(), userID, entity.KindAddFunds, req.Amount, externalRef)
	if err != nil {
		h.logger.Error("Failed to record pending funding", map[string]any{
			"user_id":      userID,
			"amount":       req.Amount,
			"external_ref": externalRef,
			"error":        err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ExternalTransactionResponse{
		TransactionID: txn.ID.String(),
		UserID:        userID,
		Kind:          string(txn.Kind),
		Amount:        entity.FormatAmount(txn.Amount),
		Status:        string(txn.Status),
		ExternalRef:   externalRef,
	})
}

// CreateWithdrawal handles the POST /users/:userId/withdrawals endpoint.
// The Pending row holds no funds; sufficiency is checked when settlement
// completes the withdrawal.
func (h *ExternalHandler) CreateWithdrawal(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid withdrawal request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	amount, err := h.parseAndValidateAmount(req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	externalRef, err := h.gateway.CreatePayout(c.Request.Context(), userID, amount)
	if err != nil {
		h.logger.Error("Failed to create payout", map[string]any{
			"user_id": userID,
			"amount":  req.Amount,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	txn, err := h.ledger.InitiatePendingExternal(c.Request.Context(), userID, entity.KindWithdraw, req.Amount, externalRef)
	if err != nil {
		h.logger.Error("Failed to record pending withdrawal", map[string]any{
			"user_id":      userID,
			"amount":       req.Amount,
			"external_ref": externalRef,
			"error":        err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.ExternalTransactionResponse{
		TransactionID: txn.ID.String(),
		UserID:        userID,
		Kind:          string(txn.Kind),
		Amount:        entity.FormatAmount(txn.Amount),
		Status:        string(txn.Status),
		ExternalRef:   externalRef,
	})
}
