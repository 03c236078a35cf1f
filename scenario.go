package tradesim

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Report kinds a scenario step can request.
const (
	ReportMarket      = "market"
	ReportPerformance = "performance"
	ReportHistory     = "history"
)

// Scenario is a declarative trading session: the instruments and
// accounts to register, then a sequence of steps replayed in order
// against a fresh market. It is the file form of what the original
// driver program hard-coded.
type Scenario struct {
	Name        string               `yaml:"name"`
	Currency    string               `yaml:"currency"`
	Instruments []ScenarioInstrument `yaml:"instruments"`
	Accounts    []ScenarioAccount    `yaml:"accounts"`
	Steps       []Step               `yaml:"steps"`
}

// ScenarioInstrument declares one instrument and its initial price.
type ScenarioInstrument struct {
	Symbol string  `yaml:"symbol"`
	Name   string  `yaml:"name"`
	Price  float64 `yaml:"price"`
}

// ScenarioAccount declares one account and its initial deposit.
type ScenarioAccount struct {
	ID      string  `yaml:"id"`
	Deposit float64 `yaml:"deposit"`
}

// Step is one scenario action. Exactly one of the fields is set.
type Step struct {
	Trade    *TradeStep  `yaml:"trade,omitempty"`
	SetPrice *PriceStep  `yaml:"set-price,omitempty"`
	Report   *ReportStep `yaml:"report,omitempty"`
}

// TradeStep issues a trade order. The side is a string matched
// case-insensitively against BUY and SELL, the contract external
// drivers honor.
type TradeStep struct {
	Account  string `yaml:"account"`
	Symbol   string `yaml:"symbol"`
	Side     string `yaml:"side"`
	Quantity int64  `yaml:"quantity"`
}

// PriceStep injects a new quote for an instrument.
type PriceStep struct {
	Symbol string  `yaml:"symbol"`
	Price  float64 `yaml:"price"`
}

// ReportStep requests a report. Kind is one of market, performance or
// history; the latter two name the account to report on.
type ReportStep struct {
	Kind    string `yaml:"kind"`
	Account string `yaml:"account,omitempty"`
}

// DecodeScenario reads and validates a YAML scenario.
func DecodeScenario(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("error decoding scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %q: %w", s.Name, err)
	}
	return &s, nil
}

// Validate checks the scenario for correctness and applies defaults
// (the currency defaults to USD). Trade and report steps may reference
// any declared instrument or account; side strings and report kinds
// must be recognized.
func (s *Scenario) Validate() error {
	if s.Currency == "" {
		s.Currency = "USD"
	}

	symbols := make(map[string]bool)
	for i, ins := range s.Instruments {
		if ins.Symbol == "" {
			return fmt.Errorf("instrument %d: symbol is missing", i)
		}
		if ins.Price < 0 {
			return fmt.Errorf("instrument %s: initial price must not be negative, got %v", ins.Symbol, ins.Price)
		}
		symbols[ins.Symbol] = true
	}
	ids := make(map[string]bool)
	for i, acc := range s.Accounts {
		if acc.ID == "" {
			return fmt.Errorf("account %d: id is missing", i)
		}
		if acc.Deposit < 0 {
			return fmt.Errorf("account %s: initial deposit must not be negative, got %v", acc.ID, acc.Deposit)
		}
		ids[acc.ID] = true
	}

	for i, step := range s.Steps {
		set := 0
		if step.Trade != nil {
			set++
			t := step.Trade
			if !ids[t.Account] {
				return fmt.Errorf("step %d: unknown account %q", i, t.Account)
			}
			if !symbols[t.Symbol] {
				return fmt.Errorf("step %d: unknown instrument %q", i, t.Symbol)
			}
			if _, err := ParseSide(t.Side); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			if t.Quantity <= 0 {
				return fmt.Errorf("step %d: %w: %d", i, ErrInvalidQuantity, t.Quantity)
			}
		}
		if step.SetPrice != nil {
			set++
			if !symbols[step.SetPrice.Symbol] {
				return fmt.Errorf("step %d: unknown instrument %q", i, step.SetPrice.Symbol)
			}
		}
		if step.Report != nil {
			set++
			r := step.Report
			switch r.Kind {
			case ReportMarket:
			case ReportPerformance, ReportHistory:
				if !ids[r.Account] {
					return fmt.Errorf("step %d: unknown account %q", i, r.Account)
				}
			default:
				return fmt.Errorf("step %d: unknown report kind %q", i, r.Kind)
			}
		}
		if set != 1 {
			return fmt.Errorf("step %d: exactly one of trade, set-price or report must be set", i)
		}
	}
	return nil
}

// Runner replays a scenario against a market, notifying the optional
// callbacks as it goes. Failed trades are reported through OnTradeError
// and the run continues, the way the original session kept going after
// a rejected order.
type Runner struct {
	Market *Market

	// Quotes are prices imported from a quote document, applied after
	// registration and before the first step. Quotes for unregistered
	// symbols are skipped.
	Quotes []PriceQuote

	OnTrade      func(TradeResult)
	OnTradeError func(TradeStep, error)
	OnPrice      func(PriceUpdate)
	OnQuoteSkip  func(PriceQuote)
	OnReport     func(ReportStep, *Market)
}

// Run registers the scenario's instruments and accounts, applies the
// imported quotes, and replays the steps in order. The scenario must
// have been validated.
func (r *Runner) Run(s *Scenario) error {
	if r.Market == nil {
		return errors.New("runner has no market")
	}

	for _, ins := range s.Instruments {
		r.Market.RegisterInstrument(NewInstrument(ins.Symbol, ins.Name, M(ins.Price, s.Currency)))
	}
	for _, acc := range s.Accounts {
		r.Market.RegisterAccount(NewAccount(acc.ID, M(acc.Deposit, s.Currency)))
	}

	for _, q := range r.Quotes {
		ev, err := r.Market.UpdatePrice(q.Symbol, q.Price)
		if err != nil {
			if r.OnQuoteSkip != nil {
				r.OnQuoteSkip(q)
			}
			continue
		}
		if r.OnPrice != nil {
			r.OnPrice(ev)
		}
	}

	for _, step := range s.Steps {
		switch {
		case step.Trade != nil:
			t := step.Trade
			res, err := r.Market.ExecuteTradeOrder(t.Account, t.Symbol, t.Side, Q(t.Quantity))
			if err != nil {
				if r.OnTradeError != nil {
					r.OnTradeError(*t, err)
				}
				continue
			}
			if r.OnTrade != nil {
				r.OnTrade(res)
			}
		case step.SetPrice != nil:
			ev, err := r.Market.UpdatePrice(step.SetPrice.Symbol, M(step.SetPrice.Price, s.Currency))
			if err != nil {
				// Validate guarantees the symbol exists.
				return err
			}
			if r.OnPrice != nil {
				r.OnPrice(ev)
			}
		case step.Report != nil:
			if r.OnReport != nil {
				r.OnReport(*step.Report, r.Market)
			}
		}
	}
	return nil
}
