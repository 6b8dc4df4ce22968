package handler

import (
	"errors"
	"net/http"
	"strconv"

	domainerr "github.com/tipstream/tip-ledger/internal/domain/error"
	"github.com/tipstream/tip-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// parseUserID extracts and validates the userId path parameter. On failure
// it writes the error response and returns false.
func parseUserID(c *gin.Context) (uint64, bool) {
	userIDParam := c.Param("userId")
	userID, err := strconv.ParseUint(userIDParam, 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return 0, false
	}
	return userID, true
}

// respondError maps a domain error to the appropriate HTTP response
func respondError(c *gin.Context, err error) {
	status := httpStatus(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// httpStatus maps the closed error taxonomy to HTTP status codes
func httpStatus(err error) int {
	switch {
	case domainerr.IsValidationError(err),
		errors.Is(err, domainerr.ErrInvalidUserID),
		errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict
	case domainerr.IsConflictError(err):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
