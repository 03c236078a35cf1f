// Package cmd implements the CLI application driving the simulator.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"tradesim"
	"tradesim/renderer"

	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
// As a CLI application it has a very short lived lifecycle, so it is ok
// to use global variables for the shared flags.
var Commands = []subcommands.Command{
	&runCmd{},
	&demoCmd{},
	&quotesCmd{},
	&topicCmd{},
}

var plainOutput = flag.Bool("plain", false, "Print reports as raw markdown instead of rendering them for the terminal")

// newRunner wires a market runner to the terminal: trade confirmations
// and market updates as plain lines, reports as rendered markdown.
func newRunner(quotes []tradesim.PriceQuote) *tradesim.Runner {
	return &tradesim.Runner{
		Market: tradesim.NewMarket(),
		Quotes: quotes,
		OnTrade: func(res tradesim.TradeResult) {
			fmt.Printf("✅ %s\n", renderer.Trade(res))
		},
		OnTradeError: func(_ tradesim.TradeStep, err error) {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		},
		OnPrice: func(ev tradesim.PriceUpdate) {
			fmt.Println(renderer.PriceUpdate(ev))
		},
		OnQuoteSkip: func(q tradesim.PriceQuote) {
			fmt.Fprintf(os.Stderr, "Warning: skipping quote for unregistered symbol %q\n", q.Symbol)
		},
		OnReport: func(step tradesim.ReportStep, m *tradesim.Market) {
			switch step.Kind {
			case tradesim.ReportMarket:
				printMarkdown(renderer.MarketData(m))
			case tradesim.ReportPerformance:
				if account, ok := m.Account(step.Account); ok {
					printMarkdown(renderer.Performance(account, m))
				}
			case tradesim.ReportHistory:
				if account, ok := m.Account(step.Account); ok {
					printMarkdown(renderer.History(account))
				}
			}
		},
	}
}
