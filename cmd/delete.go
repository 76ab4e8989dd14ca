package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type deleteCmd struct {
	id int64
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction by its identifier" }
func (*deleteCmd) Usage() string {
	return `delete -id <id>

  Removes the transaction with the given identifier from the book and
  rewrites the file. Identifiers are never reused.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "Identifier of the transaction to delete")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	err := OpenService().DeleteTransaction(c.id)
	if fintrack.IsNotFound(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting transaction %d: %v\n", c.id, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted transaction %d from %s\n", c.id, BookFile())
	return subcommands.ExitSuccess
}
