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

type categoryCmd struct {
	category string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "list the transactions of one category" }
func (*categoryCmd) Usage() string {
	return `category -c <category>

  Lists the transactions whose category matches, together with their
  subtotal. The match is case-insensitive and exact, not a substring
  search.

Usage Examples:
# "food", "Food" and "FOOD" all list the same transactions.
$ ftr category -c food

`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category to look up")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := OpenService().GetTransactionsByCategory(c.category)
	if fintrack.IsValidation(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		f.Usage()
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Category(c.category, txs, Currency()))
	return subcommands.ExitSuccess
}
