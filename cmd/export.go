package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fintrack/fintrack"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the book in the import/export format" }
func (*exportCmd) Usage() string {
	return `export [-o <file>]

  Writes the book as a JSONL stream, one transaction per line, to the
  given file or to stdout. The format is human readable and easy to merge
  into another book with the import command.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := OpenService().GetAllTransactions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := fintrack.ExportBook(w, txs); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting book: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Exported %d transaction(s) to %s\n", len(txs), c.output)
	}
	return subcommands.ExitSuccess
}
