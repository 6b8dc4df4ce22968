package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/tipstream/tip-ledger/internal/domain/error"
	coreport "github.com/tipstream/tip-ledger/internal/domain/port/core"
	"github.com/tipstream/tip-ledger/internal/domain/port/usecase"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase    usecase.UserUseCase
	historyUseCase usecase.HistoryUseCase
	logger         coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	historyUseCase usecase.HistoryUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase:    userUseCase,
		historyUseCase: historyUseCase,
		logger:         logger,
	}
}

// CreateUser handles the POST /users endpoint
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid create user request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	initialBalance := req.InitialBalance
	if initialBalance == "" {
		initialBalance = "0.00"
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), req.UserID, initialBalance)
	if err != nil {
		h.logger.Error("Failed to create user", map[string]any{
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		UserID:         user.ID,
		Balance:        user.FormattedBalance(),
		CanGiveTips:    user.CanGiveTips,
		CanReceiveTips: user.CanReceiveTips,
	})
}

// GetBalance handles the GET /users/:userId/balance endpoint
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	balanceResponse, err := h.historyUseCase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Error getting user balance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:  balanceResponse.UserID,
		Balance: balanceResponse.Balance,
	})
}

// SetPermissions handles the PUT /users/:userId/permissions endpoint
func (h *UserHandler) SetPermissions(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req dto.PermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid permissions request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	user, err := h.userUseCase.SetTipPermissions(c.Request.Context(), userID, *req.CanGiveTips, *req.CanReceiveTips)
	if err != nil {
		h.logger.Error("Failed to update tip permissions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		UserID:         user.ID,
		Balance:        user.FormattedBalance(),
		CanGiveTips:    user.CanGiveTips,
		CanReceiveTips: user.CanReceiveTips,
	})
}

// GetTransactionHistory handles the GET /users/:userId/transactions endpoint
func (h *UserHandler) GetTransactionHistory(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	// Out-of-range values are clamped by the use case, not rejected
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	historyPage, err := h.historyUseCase.GetTransactionHistory(c.Request.Context(), userID, page, limit)
	if err != nil {
		h.logger.Error("Error getting transaction history", map[string]any{
			"user_id": userID,
			"page":    page,
			"limit":   limit,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PageToHistoryResponse(historyPage))
}
