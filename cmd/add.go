package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type addCmd struct {
	date     string
	category string
	amount   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `xps add -c <category> -a <amount> [-d <date>] [description...]

  Validates and appends one expense to the expenses file. The date defaults
  to today; the description is the remaining arguments, and may be empty.

Usage Examples:
$ xps add -d 2024-01-15 -c food -a 12.50 lunch at the corner place
$ xps add -c travel -a 3.25 bus
`
}

func (p *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "d", expenses.Today().String(), "Date of the expense (YYYY-MM-DD).")
	f.StringVar(&p.category, "c", "", "Category of the expense (e.g. food, travel).")
	f.StringVar(&p.amount, "a", "", "Amount spent, a strictly positive decimal number.")
}

func (p *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	description := strings.Join(f.Args(), " ")

	tracker := newTracker()
	e, err := tracker.Add(p.date, p.category, description, p.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s %s expense on %s to %s\n",
		expenses.M(e.Amount, tracker.Currency()), e.Category, e.Date, tracker.Store().Path())
	return subcommands.ExitSuccess
}
