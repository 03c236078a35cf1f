package tradesim

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// now is swapped out in tests to pin transaction timestamps.
var now = time.Now

// Transaction is the immutable record of one executed trade.
//
// It is created exactly once per successful trade, appended to the
// owning account's log, and never mutated or removed afterwards.
type Transaction struct {
	ID        string    // unique record id
	AccountID string    // account that executed the trade
	Symbol    string    // instrument traded
	Side      Side      // BUY or SELL
	Quantity  Quantity  // number of shares, always positive
	Price     Money     // instrument price at execution time
	Time      time.Time // execution timestamp
}

func newTransaction(accountID, symbol string, side Side, quantity Quantity, price Money) Transaction {
	return Transaction{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Symbol:    symbol,
		Side:      side,
		Quantity:  quantity,
		Price:     price,
		Time:      now(),
	}
}

// Value returns the total traded value, quantity times execution price.
func (t Transaction) Value() Money {
	return t.Price.Mul(t.Quantity)
}

// Equal reports whether two transactions record the same trade.
// The record id is intentionally ignored.
func (t Transaction) Equal(o Transaction) bool {
	return t.AccountID == o.AccountID &&
		t.Symbol == o.Symbol &&
		t.Side == o.Side &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Time.Equal(o.Time)
}

// String renders the record the way the transaction history report
// lists it.
func (t Transaction) String() string {
	return fmt.Sprintf("[%s] %s %s shares of %s at %s. Total: %s",
		t.Time.Format("2006-01-02"), t.Side, t.Quantity, t.Symbol, t.Price, t.Value())
}
