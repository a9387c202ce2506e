package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "show the total spending per category" }
func (*categoriesCmd) Usage() string {
	return `xps categories

  Prints each category with its subtotal, in the order categories first
  appear in the expenses file, followed by the grand total.
`
}

func (*categoriesCmd) SetFlags(_ *flag.FlagSet) {}

func (p *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker := newTracker()

	totals, err := tracker.TotalsByCategory()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CategoryTotals(totals, tracker.Currency()))
	return subcommands.ExitSuccess
}
