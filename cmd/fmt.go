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
	return "rewrites the book file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fmt

  Reloads the book and writes it back in canonical form: one record per
  line, header first, timestamps without fractional seconds. Rows that
  could not be parsed are dropped for good (they are reported as warnings
  while loading).
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Formatting book %q...\n", BookFile())

	kept, err := OpenStore().Rewrite()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully formatted %s, kept %d transaction(s).\n", BookFile(), kept)
	return subcommands.ExitSuccess
}
