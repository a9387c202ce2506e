package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/expenses/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Best effort: a missing .env file is fine.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion and returns immediately unless the
// binary is invoked by the shell completion machinery.
func completion() {
	completer := &complete.Command{
		Flags: map[string]complete.Predictor{
			"expenses-file": predict.Files("*.jsonl"),
			"currency":      predict.Something,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Something, "c": predict.Something, "a": predict.Something,
			}},
			"list": {Flags: map[string]complete.Predictor{
				"c": predict.Something, "from": predict.Something, "to": predict.Something,
				"head": predict.Something, "tail": predict.Something,
			}},
			"total":      {Flags: map[string]complete.Predictor{"c": predict.Something}},
			"categories": {},
			"fmt":        {},
			"import": {Flags: map[string]complete.Predictor{
				"i": predict.Files("*.json"), "records": predict.Something,
				"date": predict.Something, "category": predict.Something,
				"description": predict.Something, "amount": predict.Something,
			}},
			"suggest": {Flags: map[string]complete.Predictor{"model": predict.Something}},
		},
	}
	completer.Complete("xps")
}
