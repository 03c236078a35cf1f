package tradesim

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Quote is one line of a market snapshot.
type Quote struct {
	Symbol string
	Name   string
	Price  Money
}

// Market owns the set of instruments and accounts of the simulation.
//
// It is the sole trade-entry point: ExecuteTrade resolves the account
// and instrument and delegates to the account, it never mutates either
// directly. Instruments keep their registration order so that
// snapshots iterate deterministically.
type Market struct {
	instruments map[string]*Instrument
	listing     []string // symbols in registration order
	accounts    map[string]*Account
}

// NewMarket returns a new empty market.
func NewMarket() *Market {
	return &Market{
		instruments: make(map[string]*Instrument),
		accounts:    make(map[string]*Account),
	}
}

// RegisterInstrument adds an instrument to the market. Registering a
// symbol twice replaces the prior entry (last registration wins) while
// keeping its original position in the snapshot order.
func (m *Market) RegisterInstrument(instrument *Instrument) {
	symbol := instrument.Symbol()
	if _, exists := m.instruments[symbol]; !exists {
		m.listing = append(m.listing, symbol)
	}
	m.instruments[symbol] = instrument
}

// RegisterAccount adds an account to the market. Registering an id
// twice replaces the prior entry (last registration wins).
func (m *Market) RegisterAccount(account *Account) {
	m.accounts[account.ID()] = account
}

// Instrument returns the instrument registered under symbol.
func (m *Market) Instrument(symbol string) (*Instrument, bool) {
	instrument, ok := m.instruments[symbol]
	return instrument, ok
}

// Account returns the account registered under id.
func (m *Market) Account(id string) (*Account, bool) {
	account, ok := m.accounts[id]
	return account, ok
}

// ExecuteTrade resolves the account and instrument and delegates the
// trade to the account. When either is missing it fails with
// ErrNotFound and performs no state change.
func (m *Market) ExecuteTrade(accountID, symbol string, side Side, quantity Quantity) (TradeResult, error) {
	account, ok := m.accounts[accountID]
	if !ok {
		return TradeResult{}, fmt.Errorf("account %q: %w", accountID, ErrNotFound)
	}
	instrument, ok := m.instruments[symbol]
	if !ok {
		return TradeResult{}, fmt.Errorf("instrument %q: %w", symbol, ErrNotFound)
	}

	switch side {
	case Buy:
		return account.Buy(instrument, quantity)
	case Sell:
		return account.Sell(instrument, quantity)
	default:
		return TradeResult{}, fmt.Errorf("%w: %d", ErrInvalidTradeType, side)
	}
}

// ExecuteTradeOrder is ExecuteTrade for external drivers that speak
// string sides: the side is matched case-insensitively against "BUY"
// and "SELL", anything else fails with ErrInvalidTradeType.
func (m *Market) ExecuteTradeOrder(accountID, symbol, side string, quantity Quantity) (TradeResult, error) {
	s, err := ParseSide(side)
	if err != nil {
		return TradeResult{}, err
	}
	return m.ExecuteTrade(accountID, symbol, s, quantity)
}

// UpdatePrice pushes a new quote to the instrument registered under
// symbol. It fails with ErrNotFound when the symbol is unknown.
func (m *Market) UpdatePrice(symbol string, price Money) (PriceUpdate, error) {
	instrument, ok := m.instruments[symbol]
	if !ok {
		return PriceUpdate{}, fmt.Errorf("instrument %q: %w", symbol, ErrNotFound)
	}
	return instrument.UpdatePrice(price), nil
}

// PortfolioValue values an account's portfolio against the market's
// current instrument set.
func (m *Market) PortfolioValue(accountID string) (Money, error) {
	account, ok := m.accounts[accountID]
	if !ok {
		return Money{}, fmt.Errorf("account %q: %w", accountID, ErrNotFound)
	}
	return account.PortfolioValue(m.Instrument), nil
}

// Snapshot returns a lazy, restartable iterator over the current
// quotes of all registered instruments, in registration order.
func (m *Market) Snapshot() iter.Seq[Quote] {
	return func(yield func(Quote) bool) {
		for _, symbol := range m.listing {
			instrument := m.instruments[symbol]
			q := Quote{Symbol: instrument.Symbol(), Name: instrument.Name(), Price: instrument.Price()}
			if !yield(q) {
				return
			}
		}
	}
}

// Accounts iterates over the registered accounts in id order.
func (m *Market) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		ids := slices.Collect(maps.Keys(m.accounts))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(m.accounts[id]) {
				return
			}
		}
	}
}
