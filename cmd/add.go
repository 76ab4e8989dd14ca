package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type addCmd struct {
	amount   string
	category string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new transaction in the book" }
func (*addCmd) Usage() string {
	return `add -a <amount> -c <category>

  Records a transaction with the given amount and category, stamped with
  the current date and time. Negative amounts are expenses, positive
  amounts are income.

Usage Examples:
# Record a grocery expense.
$ ftr add -a -42.90 -c Groceries

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Transaction amount (exact decimal, sign optional)")
	f.StringVar(&c.category, "c", "", "Transaction category")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := fintrack.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	tx, err := OpenService().AddTransaction(amount, c.category)
	if fintrack.IsValidation(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s in %s\n", renderer.Transaction(tx, Currency()), BookFile())
	return subcommands.ExitSuccess
}
