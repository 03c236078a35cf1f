package tradesim

import (
	"errors"
	"strings"
	"testing"
)

const demoYAML = `
name: demo
currency: USD
instruments:
  - symbol: AAPL
    name: Apple Inc.
    price: 150.00
  - symbol: GOOGL
    name: Alphabet Inc.
    price: 2500.00
accounts:
  - id: Alice
    deposit: 10000.00
  - id: Bob
    deposit: 5000.00
steps:
  - trade: {account: Alice, symbol: AAPL, side: BUY, quantity: 10}
  - trade: {account: Alice, symbol: GOOGL, side: BUY, quantity: 2}
  - set-price: {symbol: AAPL, price: 155.50}
  - set-price: {symbol: GOOGL, price: 2450.00}
  - trade: {account: Alice, symbol: AAPL, side: SELL, quantity: 5}
  - report: {kind: performance, account: Alice}
`

func TestDecodeScenario(t *testing.T) {
	s, err := DecodeScenario(strings.NewReader(demoYAML))
	if err != nil {
		t.Fatalf("DecodeScenario() unexpected error: %v", err)
	}
	if s.Name != "demo" || s.Currency != "USD" {
		t.Errorf("header = %q/%q, want demo/USD", s.Name, s.Currency)
	}
	if len(s.Instruments) != 2 || len(s.Accounts) != 2 || len(s.Steps) != 6 {
		t.Errorf("decoded %d instruments, %d accounts, %d steps, want 2/2/6",
			len(s.Instruments), len(s.Accounts), len(s.Steps))
	}
}

func TestDecodeScenario_invalid(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{
			"unknown account in trade",
			`{instruments: [{symbol: A, price: 1}], steps: [{trade: {account: Nobody, symbol: A, side: BUY, quantity: 1}}]}`,
		},
		{
			"unknown instrument in trade",
			`{accounts: [{id: A, deposit: 1}], steps: [{trade: {account: A, symbol: X, side: BUY, quantity: 1}}]}`,
		},
		{
			"bad side",
			`{instruments: [{symbol: A, price: 1}], accounts: [{id: U, deposit: 1}], steps: [{trade: {account: U, symbol: A, side: HOLD, quantity: 1}}]}`,
		},
		{
			"non-positive quantity",
			`{instruments: [{symbol: A, price: 1}], accounts: [{id: U, deposit: 1}], steps: [{trade: {account: U, symbol: A, side: BUY, quantity: 0}}]}`,
		},
		{
			"unknown report kind",
			`{steps: [{report: {kind: pnl}}]}`,
		},
		{
			"empty step",
			`{steps: [{}]}`,
		},
		{
			"negative deposit",
			`{accounts: [{id: U, deposit: -5}]}`,
		},
		{
			"negative initial price",
			`{instruments: [{symbol: A, price: -1}]}`,
		},
		{
			"missing symbol",
			`{instruments: [{name: nameless, price: 1}]}`,
		},
		{
			"unknown field",
			`{instrument: []}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeScenario(strings.NewReader(tc.yaml)); err == nil {
				t.Errorf("DecodeScenario() accepted invalid scenario %q", tc.yaml)
			}
		})
	}
}

func TestRunner_Run(t *testing.T) {
	fixedClock(t)

	s, err := DecodeScenario(strings.NewReader(demoYAML))
	if err != nil {
		t.Fatalf("DecodeScenario() unexpected error: %v", err)
	}

	var trades int
	var prices int
	var reports int
	r := &Runner{
		Market:   NewMarket(),
		OnTrade:  func(TradeResult) { trades++ },
		OnPrice:  func(PriceUpdate) { prices++ },
		OnReport: func(ReportStep, *Market) { reports++ },
		OnTradeError: func(step TradeStep, err error) {
			t.Errorf("unexpected trade error on %+v: %v", step, err)
		},
	}
	if err := r.Run(s); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if trades != 3 || prices != 2 || reports != 1 {
		t.Errorf("callbacks = %d trades, %d prices, %d reports, want 3/2/1", trades, prices, reports)
	}

	// End state of the session: Alice bought 10 AAPL at 150 and
	// 2 GOOGL at 2500, then sold 5 AAPL at 155.50.
	alice, _ := r.Market.Account("Alice")
	if want := M(4277.50, "USD"); !alice.Cash().Equal(want) {
		t.Errorf("Alice cash = %s, want %s", alice.Cash(), want)
	}
	if got := alice.Position("AAPL"); !got.Equal(Q(5)) {
		t.Errorf("Alice AAPL position = %s, want 5", got)
	}
	if got := alice.Position("GOOGL"); !got.Equal(Q(2)) {
		t.Errorf("Alice GOOGL position = %s, want 2", got)
	}

	bob, _ := r.Market.Account("Bob")
	if want := M(5000.00, "USD"); !bob.Cash().Equal(want) {
		t.Errorf("Bob cash = %s, want untouched %s", bob.Cash(), want)
	}
}

func TestRunner_Run_continuesAfterRejectedTrade(t *testing.T) {
	fixedClock(t)

	const yaml = `
instruments:
  - {symbol: X, name: X Corp, price: 50.00}
accounts:
  - {id: Bob, deposit: 100.00}
steps:
  - trade: {account: Bob, symbol: X, side: BUY, quantity: 3}
  - trade: {account: Bob, symbol: X, side: BUY, quantity: 2}
`
	s, err := DecodeScenario(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("DecodeScenario() unexpected error: %v", err)
	}

	var rejected []error
	var trades int
	r := &Runner{
		Market:       NewMarket(),
		OnTrade:      func(TradeResult) { trades++ },
		OnTradeError: func(_ TradeStep, err error) { rejected = append(rejected, err) },
	}
	if err := r.Run(s); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	// The first buy costs $150 and is rejected; the run continues and
	// the second buy ($100) succeeds.
	if len(rejected) != 1 || !errors.Is(rejected[0], ErrInsufficientFunds) {
		t.Fatalf("rejected = %v, want one ErrInsufficientFunds", rejected)
	}
	if trades != 1 {
		t.Errorf("successful trades = %d, want 1", trades)
	}
	bob, _ := r.Market.Account("Bob")
	if want := M(0, "USD"); !bob.Cash().Equal(want) {
		t.Errorf("Bob cash = %s, want %s", bob.Cash(), want)
	}
}

func TestRunner_Run_appliesQuotes(t *testing.T) {
	const yaml = `
instruments:
  - {symbol: AAPL, name: Apple Inc., price: 150.00}
accounts:
  - {id: Alice, deposit: 0}
steps: []
`
	s, err := DecodeScenario(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("DecodeScenario() unexpected error: %v", err)
	}

	var skipped []string
	r := &Runner{
		Market: NewMarket(),
		Quotes: []PriceQuote{
			{Symbol: "AAPL", Price: M(155.50, "USD")},
			{Symbol: "TSLA", Price: M(999.00, "USD")},
		},
		OnQuoteSkip: func(q PriceQuote) { skipped = append(skipped, q.Symbol) },
	}
	if err := r.Run(s); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	aapl, _ := r.Market.Instrument("AAPL")
	if !aapl.Price().Equal(M(155.50, "USD")) {
		t.Errorf("AAPL price = %s, want quoted %s", aapl.Price(), M(155.50, "USD"))
	}
	if len(skipped) != 1 || skipped[0] != "TSLA" {
		t.Errorf("skipped = %v, want [TSLA]", skipped)
	}
}
