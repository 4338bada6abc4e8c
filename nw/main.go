package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/dmoraru/networth/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: in completion mode it prints the
	// candidates and exits before any flag parsing.
	completion().Complete("nw")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"input-file": predict.Files("*.json"),
			"store":      predict.Files("*.db"),
		},
		Sub: map[string]*complete.Command{
			"report": {Flags: map[string]complete.Predictor{
				"raw":    predict.Nothing,
				"fx-chf": predict.Something,
				"fx-ron": predict.Something,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set{"csv", "xlsx"},
				"o":      predict.Files("*"),
				"fx-chf": predict.Something,
				"fx-ron": predict.Something,
			}},
			"add": {Flags: map[string]complete.Predictor{
				"name":     predict.Something,
				"label":    predict.Something,
				"currency": predict.Set{"EUR", "USD"},
				"amount":   predict.Something,
			}},
			"withdraw": {Flags: map[string]complete.Predictor{
				"name":     predict.Something,
				"currency": predict.Set{"EUR", "USD"},
				"amount":   predict.Something,
			}},
			"snapshot": {Flags: map[string]complete.Predictor{
				"d":      predict.Something,
				"fx-chf": predict.Something,
				"fx-ron": predict.Something,
			}},
		},
	}
}
