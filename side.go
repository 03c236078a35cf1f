package tradesim

import (
	"fmt"
	"strings"
)

// Side is the direction of a trade.
//
// It is a closed two-variant type so that dispatching on the trade kind
// is exhaustively checked at compile time, instead of comparing raw
// strings the way an external driver speaks them.
type Side int

const (
	// Buy acquires shares against cash.
	Buy Side = iota
	// Sell disposes of held shares for cash.
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseSide parses a trade side. The match is case-insensitive and the
// recognized values are exactly "BUY" and "SELL"; anything else is
// rejected with ErrInvalidTradeType.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(s) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("%w: %q, use 'BUY' or 'SELL'", ErrInvalidTradeType, s)
	}
}
