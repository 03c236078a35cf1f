package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type quotesCmd struct {
	currency string
}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "decode a JSON quote document and print the prices" }
func (*quotesCmd) Usage() string {
	return `tsim quotes [-c <currency>] <quotes.json>

  Extracts the (symbol, price) pairs from a quote document without
  running anything, to inspect what 'run -quotes' would apply.
  See 'tsim topic quotes'.
`
}

func (c *quotesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Currency the quotes are denominated in")
}

func (c *quotesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	quotes, err := decodeQuotesFile(f.Arg(0), c.currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("# Imported Quotes\n\n")
	b.WriteString("| Symbol | Price |\n")
	b.WriteString("|---|---:|\n")
	for _, q := range quotes {
		fmt.Fprintf(&b, "| %s | %s |\n", q.Symbol, q.Price)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
