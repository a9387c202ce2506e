package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	category string
	from     string
	to       string
	head     int
	tail     int
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list recorded expenses" }
func (*listCmd) Usage() string {
	return `xps list [-c <category>] [-from <date>] [-to <date>] [-head <n>] [-tail <n>]

  Lists expenses in the order they were recorded, one record per line, with
  options for filtering and limiting the output.
`
}

func (p *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.category, "c", "", "Only list expenses with this exact category.")
	f.StringVar(&p.from, "from", "", "Only list expenses on or after this date.")
	f.StringVar(&p.to, "to", "", "Only list expenses on or before this date.")
	f.IntVar(&p.head, "head", 0, "Show only the first N expenses.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N expenses.")
}

func (p *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	var from, to expenses.Date
	var err error
	if p.from != "" {
		if from, err = expenses.ParseDate(p.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if p.to != "" {
		if to, err = expenses.ParseDate(p.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	r := expenses.NewRange(from, to)

	tracker := newTracker()
	ledger, err := tracker.List()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Expenses(p.selectExpenses(ledger, r), tracker.Currency()))
	return subcommands.ExitSuccess
}

// selectExpenses applies the category and date filters, then the head or tail
// window, preserving insertion order.
func (p *listCmd) selectExpenses(ledger *expenses.Ledger, r expenses.Range) []expenses.Expense {
	filter := func(e expenses.Expense) bool {
		if p.category != "" && e.Category != p.category {
			return false
		}
		return r.Contains(e.Date)
	}

	var list []expenses.Expense
	for _, e := range ledger.Expenses(filter) {
		list = append(list, e)
	}

	if p.head > 0 && len(list) > p.head {
		list = list[:p.head]
	}
	if p.tail > 0 && len(list) > p.tail {
		list = list[len(list)-p.tail:]
	}
	return list
}
