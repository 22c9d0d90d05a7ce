package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"marketplace-settlement/internal/settlementerrors"
	"marketplace-settlement/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, 0, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ParseID reads the numeric path parameter name, answering 400 when it is malformed
func ParseID(c *gin.Context, handlerName, name string) (uint64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, 0, fmt.Errorf("invalid %s %q: %w", name, raw, err), "invalid "+name)
		utils.Warn(handlerName+": invalid path parameter", map[string]any{"param": name, "value": raw})
		return 0, false
	}
	return id, true
}

// RespondError reports a service failure with its mapped HTTP status and settlement code
func RespondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, settlementerrors.CodeOf(err), fmt.Errorf("%s: %w", message, err), message)

	fields := map[string]any{"handler": handlerName, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, settlementerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, settlementerrors.ErrDisputeNotFound):
		return http.StatusNotFound, "dispute not found"
	case errors.Is(err, settlementerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, settlementerrors.ErrNotAdmin):
		return http.StatusForbidden, "caller is not the administrator"
	case errors.Is(err, settlementerrors.ErrUnauthorized):
		return http.StatusForbidden, "unauthorized"
	case errors.Is(err, settlementerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, settlementerrors.ErrAuctionAlreadyEnded):
		return http.StatusConflict, "auction already ended"
	case errors.Is(err, settlementerrors.ErrAuctionNotStarted):
		return http.StatusConflict, "auction not started"
	case errors.Is(err, settlementerrors.ErrAuctionReserveNotMet):
		return http.StatusConflict, "auction reserve not met"
	case errors.Is(err, settlementerrors.ErrDisputeAlreadyResolved):
		return http.StatusConflict, "dispute already resolved"
	case errors.Is(err, settlementerrors.ErrAlreadyExists):
		return http.StatusConflict, "already exists"
	case errors.Is(err, settlementerrors.ErrInvalidState):
		return http.StatusConflict, "invalid state"
	case errors.Is(err, settlementerrors.ErrInsufficientArbitrators):
		return http.StatusConflict, "insufficient arbitrators"
	case errors.Is(err, settlementerrors.ErrReentrancyDetected):
		return http.StatusConflict, "reentrancy detected"
	case errors.Is(err, settlementerrors.ErrFrontRunningDetected):
		return http.StatusForbidden, "front-running detected"
	case errors.Is(err, settlementerrors.ErrExpired):
		return http.StatusGone, "expired"
	case errors.Is(err, settlementerrors.ErrCommitmentMismatch):
		return http.StatusBadRequest, "commitment mismatch"
	case errors.Is(err, settlementerrors.ErrBidRevealFailed):
		return http.StatusBadRequest, "bid reveal failed"
	case errors.Is(err, settlementerrors.ErrInvalidBidIncrement):
		return http.StatusBadRequest, "invalid bid increment"
	case errors.Is(err, settlementerrors.ErrInvalidCurrency):
		return http.StatusBadRequest, "invalid currency"
	case errors.Is(err, settlementerrors.ErrInvalidFeeConfig):
		return http.StatusBadRequest, "invalid fee config"
	case errors.Is(err, settlementerrors.ErrInvalidRoyaltyPercentage):
		return http.StatusBadRequest, "invalid royalty percentage"
	case errors.Is(err, settlementerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid amount"
	case errors.Is(err, settlementerrors.ErrOverflow),
		errors.Is(err, settlementerrors.ErrUnderflow),
		errors.Is(err, settlementerrors.ErrDivisionByZero):
		return http.StatusBadRequest, "arithmetic error"
	case errors.Is(err, settlementerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient funds"
	case errors.Is(err, settlementerrors.ErrPaymentFailed):
		return http.StatusBadGateway, "payment failed"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
