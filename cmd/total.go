package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type totalCmd struct {
	category string
}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "show the total spending" }
func (*totalCmd) Usage() string {
	return `xps total [-c <category>]

  Prints the grand total of all recorded expenses, or the total of one
  category. Category matching is exact and case-sensitive.
`
}

func (p *totalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Only total expenses with this exact category.")
}

func (p *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker := newTracker()

	if p.category != "" {
		total, err := tracker.TotalByCategory(p.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.CategoryTotal(p.category, total))
		return subcommands.ExitSuccess
	}

	total, err := tracker.Total()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Total(total))
	return subcommands.ExitSuccess
}
