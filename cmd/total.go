package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack/renderer"
	"github.com/google/subcommands"
)

type totalCmd struct{}

func (*totalCmd) Name() string     { return "total" }
func (*totalCmd) Synopsis() string { return "show the exact sum of all amounts" }
func (*totalCmd) Usage() string {
	return `total

  Sums all transaction amounts using exact decimal arithmetic and displays
  the result in the configured currency.
`
}

func (*totalCmd) SetFlags(f *flag.FlagSet) {}

func (c *totalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc := OpenService()

	txs, err := svc.GetAllTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	total, err := svc.GetTotalSum()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Total(total, len(txs), Currency()))
	return subcommands.ExitSuccess
}
