package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"marketplace-settlement/internal/settlementerrors"

	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "auction_not_found", err: fmt.Errorf("auction 1: %w", settlementerrors.ErrAuctionNotFound), status: http.StatusNotFound},
		{name: "dispute_not_found", err: settlementerrors.ErrDisputeNotFound, status: http.StatusNotFound},
		{name: "not_admin", err: settlementerrors.ErrNotAdmin, status: http.StatusForbidden},
		{name: "bid_too_low", err: settlementerrors.ErrBidTooLow, status: http.StatusConflict},
		{name: "invalid_state", err: settlementerrors.ErrInvalidState, status: http.StatusConflict},
		{name: "expired_commitment", err: fmt.Errorf("auction 1: %w", settlementerrors.ErrExpired), status: http.StatusGone},
		{name: "overflow", err: settlementerrors.ErrOverflow, status: http.StatusBadRequest},
		{name: "insufficient_funds", err: settlementerrors.ErrInsufficientFunds, status: http.StatusPaymentRequired},
		{name: "payment_failed", err: settlementerrors.ErrPaymentFailed, status: http.StatusBadGateway},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := MapErrorToHTTP(tt.err)
			require.Equal(t, tt.status, status)
			require.NotEmpty(t, message)
		})
	}
}
