// Package cmd implements the CLI application to record and summarize expenses.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands the application offers.
// A main package will register them on a Commander and Execute the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&totalCmd{},
	&categoriesCmd{},
	&fmtCmd{},
	&importCmd{},
	&suggestCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var expensesFile = flag.String("expenses-file", "", "Path to the expenses file (JSONL format, defaults to $EXPENSES_FILE or expenses.jsonl)")
var currency = flag.String("currency", "", "ISO 4217 code used to display amounts (defaults to $EXPENSES_CURRENCY or EUR)")

// The env fallbacks are resolved lazily so that a .env file loaded at
// startup is taken into account.

func expensesPath() string {
	if *expensesFile != "" {
		return *expensesFile
	}
	return envOr("EXPENSES_FILE", "expenses.jsonl")
}

func displayCurrency() string {
	if *currency != "" {
		return *currency
	}
	return envOr("EXPENSES_CURRENCY", "EUR")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newTracker builds the tracker over the app expenses file.
func newTracker() *expenses.Tracker {
	return expenses.NewTracker(expenses.NewStore(expensesPath()), displayCurrency())
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// markdown when the renderer is unavailable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
