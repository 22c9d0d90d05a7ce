package settlementerrors

import "errors"

// Error is a settlement failure carrying a stable numeric code for external callers.
type Error struct {
	Code int
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(code int, msg string) *Error {
	return &Error{Code: code, msg: msg}
}

// CodeOf returns the code of the first settlement error in err's chain, 0 when there is none
func CodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}

// General errors
var (
	ErrUnauthorized      = newError(1, "unauthorized")
	ErrNotFound          = newError(2, "not found")
	ErrAlreadyExists     = newError(3, "already exists")
	ErrInvalidState      = newError(4, "invalid state")
	ErrExpired           = newError(5, "expired")
	ErrInsufficientFunds = newError(6, "insufficient funds")
	ErrInvalidAmount     = newError(7, "invalid amount")
)

// Auction errors
var (
	ErrAuctionNotFound      = newError(200, "auction not found")
	ErrAuctionAlreadyEnded  = newError(201, "auction already ended")
	ErrAuctionNotStarted    = newError(202, "auction not started")
	ErrBidTooLow            = newError(203, "bid amount too low")
	ErrInvalidBidIncrement  = newError(204, "invalid bid increment")
	ErrAuctionReserveNotMet = newError(205, "auction reserve not met")
	ErrBidRevealFailed      = newError(206, "bid reveal failed")
	ErrCommitmentMismatch   = newError(207, "commitment mismatch")
)

// Payment errors
var (
	ErrPaymentFailed   = newError(300, "payment failed")
	ErrInvalidCurrency = newError(302, "invalid currency")
)

// Royalty errors
var (
	ErrInvalidRoyaltyPercentage = newError(401, "invalid royalty percentage")
)

// Dispute errors
var (
	ErrDisputeNotFound         = newError(500, "dispute not found")
	ErrDisputeAlreadyResolved  = newError(501, "dispute already resolved")
	ErrInsufficientArbitrators = newError(504, "insufficient arbitrators")
)

// Security errors
var (
	ErrReentrancyDetected   = newError(600, "reentrancy detected")
	ErrFrontRunningDetected = newError(601, "front-running detected")
)

// Fee errors
var (
	ErrInvalidFeeConfig = newError(701, "invalid fee config")
)

// Admin errors
var (
	ErrNotAdmin = newError(800, "caller is not the administrator")
)

// Math errors
var (
	ErrOverflow       = newError(900, "arithmetic overflow")
	ErrUnderflow      = newError(901, "arithmetic underflow")
	ErrDivisionByZero = newError(902, "division by zero")
)
