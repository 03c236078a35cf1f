package tradesim

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Account holds a user's cash, holdings and transaction log.
//
// Invariants: the cash balance never goes negative, every holdings
// entry is strictly positive (a symbol whose quantity reaches zero is
// removed from the map), and the log is append-only in call order.
// A trade is atomic with respect to its own account: it either fully
// succeeds or leaves the account untouched.
type Account struct {
	id       string
	cash     Money
	holdings map[string]Quantity
	log      []Transaction
}

// NewAccount creates an account with an initial cash deposit.
func NewAccount(id string, deposit Money) *Account {
	return &Account{
		id:       id,
		cash:     deposit,
		holdings: make(map[string]Quantity),
	}
}

// ID returns the account's unique identifier.
func (a *Account) ID() string { return a.id }

// Cash returns the current cash balance.
func (a *Account) Cash() Money { return a.cash }

// Position returns the quantity held for a symbol, zero if none.
func (a *Account) Position(symbol string) Quantity {
	return a.holdings[symbol]
}

// validQuantity guards both sides of a trade. Zero, negative and
// fractional quantities are rejected before any state change.
func validQuantity(q Quantity) error {
	if !q.IsPositive() || !q.IsInteger() {
		return fmt.Errorf("%w: %s, quantity must be a positive whole number", ErrInvalidQuantity, q)
	}
	return nil
}

// Buy purchases shares of the instrument at its current price.
//
// The cost is quantity times the current quote. When the cash balance
// cannot cover it the trade fails with ErrInsufficientFunds and the
// account is left unchanged; otherwise cash is debited, the position is
// incremented and a BUY transaction is appended to the log.
func (a *Account) Buy(instrument *Instrument, quantity Quantity) (TradeResult, error) {
	if err := validQuantity(quantity); err != nil {
		return TradeResult{}, err
	}

	price := instrument.Price()
	cost := price.Mul(quantity)
	if a.cash.LessThan(cost) {
		return TradeResult{}, fmt.Errorf("%s: cannot buy %s shares of %s for %s, cash balance is %s: %w",
			a.id, quantity, instrument.Symbol(), cost, a.cash, ErrInsufficientFunds)
	}

	a.cash = a.cash.Sub(cost)
	a.holdings[instrument.Symbol()] = a.holdings[instrument.Symbol()].Add(quantity)
	tx := newTransaction(a.id, instrument.Symbol(), Buy, quantity, price)
	a.log = append(a.log, tx)
	return TradeResult{Transaction: tx, Cash: a.cash}, nil
}

// Sell disposes of held shares at the instrument's current price.
//
// When the position is smaller than the requested quantity the trade
// fails with ErrInsufficientHoldings and the account is left unchanged;
// otherwise cash is credited, the position is decremented (and removed
// entirely when it reaches zero) and a SELL transaction is appended.
func (a *Account) Sell(instrument *Instrument, quantity Quantity) (TradeResult, error) {
	if err := validQuantity(quantity); err != nil {
		return TradeResult{}, err
	}

	symbol := instrument.Symbol()
	held := a.holdings[symbol]
	if held.LessThan(quantity) {
		return TradeResult{}, fmt.Errorf("%s: cannot sell %s shares of %s, position is only %s: %w",
			a.id, quantity, symbol, held, ErrInsufficientHoldings)
	}

	price := instrument.Price()
	revenue := price.Mul(quantity)
	a.cash = a.cash.Add(revenue)
	remaining := held.Sub(quantity)
	if remaining.IsZero() {
		delete(a.holdings, symbol)
	} else {
		a.holdings[symbol] = remaining
	}
	tx := newTransaction(a.id, symbol, Sell, quantity, price)
	a.log = append(a.log, tx)
	return TradeResult{Transaction: tx, Cash: a.cash}, nil
}

// PortfolioValue returns the cash balance plus the market value of all
// holdings at their current prices. The lookup resolves a symbol to its
// instrument; symbols it cannot resolve (instrument no longer
// registered) are skipped rather than treated as an error.
func (a *Account) PortfolioValue(lookup func(symbol string) (*Instrument, bool)) Money {
	total := a.cash
	for symbol, quantity := range a.Holdings() {
		instrument, ok := lookup(symbol)
		if !ok {
			continue
		}
		total = total.Add(instrument.Price().Mul(quantity))
	}
	return total
}

// Transactions returns a read-only iterator over the account's
// transaction log in insertion order.
func (a *Account) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range a.log {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Holdings iterates over the account's positions in symbol order.
func (a *Account) Holdings() iter.Seq2[string, Quantity] {
	return func(yield func(string, Quantity) bool) {
		symbols := slices.Collect(maps.Keys(a.holdings))
		slices.Sort(symbols)
		for _, symbol := range symbols {
			if !yield(symbol, a.holdings[symbol]) {
				return
			}
		}
	}
}
