package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/google/subcommands"
)

type importCmd struct {
	input   string
	mapping expenses.ImportMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import expenses from a JSON export" }
func (*importCmd) Usage() string {
	return `xps import -i <file> [-records <path>] [-date <path>] [-category <path>] [-description <path>] [-amount <path>]

  Imports expenses from a JSON export of another application. The mapping
  flags are JSONPath expressions locating the record list in the document
  and the expense fields inside one record. Imported records go through the
  same validation as records typed on the command line; the import is
  all-or-nothing.

Usage Examples:
# Native export format (a JSON array of expense objects).
$ xps import -i dump.json

# A banking app export.
$ xps import -i bank.json -records '$.operations' -date '$.when' -category '$.label.group' -description '$.label.text' -amount '$.debit'
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	def := expenses.DefaultImportMapping()
	f.StringVar(&p.input, "i", "", "Path to the JSON document to import.")
	f.StringVar(&p.mapping.Records, "records", def.Records, "JSONPath to the list of records.")
	f.StringVar(&p.mapping.Date, "date", def.Date, "JSONPath to the date inside one record.")
	f.StringVar(&p.mapping.Category, "category", def.Category, "JSONPath to the category inside one record.")
	f.StringVar(&p.mapping.Description, "description", def.Description, "JSONPath to the description inside one record.")
	f.StringVar(&p.mapping.Amount, "amount", def.Amount, "JSONPath to the amount inside one record.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i flag is required.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(p.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file %q: %v\n", p.input, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	imported, err := expenses.ImportExpenses(in, p.mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", p.input, err)
		return subcommands.ExitFailure
	}

	store := newTracker().Store()
	ledger, err := store.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	for _, e := range imported.Expenses() {
		ledger.Append(e)
	}
	if err := store.Save(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d expenses from %s into %s\n", imported.Len(), p.input, store.Path())
	return subcommands.ExitSuccess
}
