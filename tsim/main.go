package main

import (
	"context"
	"flag"
	"os"
	"path"

	"tradesim/cmd"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion and returns immediately unless
// the binary is invoked by the shell's completion machinery.
func completion() {
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"run": {Flags: map[string]complete.Predictor{
				"quotes": predict.Files("*.json"),
			}},
			"demo":   {},
			"quotes": {Flags: map[string]complete.Predictor{"c": predict.Something}},
			"topic":  {},
		},
		Flags: map[string]complete.Predictor{"plain": predict.Nothing},
	}
	c.Complete("tsim")
}
