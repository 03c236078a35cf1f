package tradesim

import "github.com/shopspring/decimal"

// Quantity is a count of shares of a single instrument.
//
// The simulator trades in whole shares only; operations reject
// fractional or non-positive quantities before touching any state.
type Quantity struct {
	value decimal.Decimal
}

// Q creates a new Quantity.
func Q[T int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool    { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool { return q.value.LessThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity  { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity  { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsNegative() bool         { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool         { return q.value.IsPositive() }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }
func (q Quantity) IsInteger() bool          { return q.value.IsInteger() }
func (q Quantity) String() string           { return q.value.String() }
