package cmd

import (
	"bytes"
	"context"
	_ "embed"
	"flag"
	"fmt"
	"os"

	"tradesim"

	"github.com/google/subcommands"
)

//go:embed demo.yaml
var demoScenario []byte

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the built-in demo trading session" }
func (*demoCmd) Usage() string {
	return `tsim demo

  Runs a scripted session: two instruments, two accounts, a few trades,
  a burst of market volatility, and the closing reports.
`
}

func (*demoCmd) SetFlags(_ *flag.FlagSet) {}

func (c *demoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	scenario, err := tradesim.DecodeScenario(bytes.NewReader(demoScenario))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := newRunner(nil).Run(scenario); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
