package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the expenses file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `xps fmt

  Validates and formats the expenses file. This command reads all records,
  validates them, and writes them back in a canonical JSONL format with a
  stable key order. The record order is preserved.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker := newTracker()
	store := tracker.Store()

	ledger, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load expenses: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := store.Save(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted expenses file: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Formatted %d expenses in %s\n", ledger.Len(), store.Path())
	return subcommands.ExitSuccess
}
