package tradesim

import "errors"

// Error taxonomy of the simulator. Every failure is non-fatal: the
// failed operation leaves market and account state exactly as it found
// it, and call sites wrap these sentinels with context so callers can
// match them with errors.Is.
var (
	// ErrInsufficientFunds reports a buy whose cost exceeds the
	// account's cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientHoldings reports a sell of more shares than the
	// account holds.
	ErrInsufficientHoldings = errors.New("insufficient holdings")

	// ErrNotFound reports a trade referencing an unknown account id or
	// instrument symbol.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTradeType reports a trade side outside {BUY, SELL}.
	ErrInvalidTradeType = errors.New("invalid trade type")

	// ErrInvalidQuantity reports a zero, negative or fractional trade
	// quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
)
