package tradesim

import "iter"

// Instrument is a tradable asset quoted on the market.
//
// Symbol and name are immutable. The price history is append-only and
// never empty: it starts with the initial price and grows by one entry
// per UpdatePrice call, so the current price is always the last entry.
type Instrument struct {
	symbol  string
	name    string
	history []Money
}

// NewInstrument creates an instrument quoted at an initial price.
func NewInstrument(symbol, name string, initial Money) *Instrument {
	return &Instrument{
		symbol:  symbol,
		name:    name,
		history: []Money{initial},
	}
}

// Symbol returns the instrument's unique ticker symbol.
func (s *Instrument) Symbol() string { return s.symbol }

// Name returns the instrument's display name.
func (s *Instrument) Name() string { return s.name }

// Price returns the current quoted price, the last of the history.
func (s *Instrument) Price() Money { return s.history[len(s.history)-1] }

// UpdatePrice sets a new current price and appends it to the history.
// The price is taken as quoted, no validation of sign or magnitude:
// callers are trusted. It always succeeds and returns the market-update
// event for the caller to render or log.
func (s *Instrument) UpdatePrice(price Money) PriceUpdate {
	previous := s.Price()
	s.history = append(s.history, price)
	return PriceUpdate{Symbol: s.symbol, Previous: previous, Price: price}
}

// History returns an iterator over the recorded prices, oldest first.
func (s *Instrument) History() iter.Seq2[int, Money] {
	return func(yield func(int, Money) bool) {
		for i, p := range s.history {
			if !yield(i, p) {
				return
			}
		}
	}
}
