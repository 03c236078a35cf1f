package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"tradesim"

	"github.com/google/subcommands"
)

type runCmd struct {
	quotesFile string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "replay a YAML scenario against a fresh market" }
func (*runCmd) Usage() string {
	return `tsim run [-quotes <quotes.json>] <scenario.yaml>

  Registers the scenario's instruments and accounts, then executes its
  steps in order: trades, price updates and reports. Use '-' as the
  scenario file to read from stdin. See 'tsim topic scenario'.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quotesFile, "quotes", "", "JSON quote document applied before the first step")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	scenario, err := decodeScenarioFile(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var quotes []tradesim.PriceQuote
	if c.quotesFile != "" {
		quotes, err = decodeQuotesFile(c.quotesFile, scenario.Currency)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if err := newRunner(quotes).Run(scenario); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func decodeScenarioFile(name string) (*tradesim.Scenario, error) {
	if name == "-" {
		return tradesim.DecodeScenario(os.Stdin)
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error opening scenario file %q: %w", name, err)
	}
	defer file.Close()
	return tradesim.DecodeScenario(file)
}

func decodeQuotesFile(name, currency string) ([]tradesim.PriceQuote, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("error opening quote document %q: %w", name, err)
	}
	defer file.Close()
	return tradesim.DecodeQuotes(file, currency)
}
