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

type importCmd struct {
	input     string
	assignIDs bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions in the import/export format" }
func (*importCmd) Usage() string {
	return `import [-i <file>] [-assign-ids]

  Reads a JSONL stream of transactions from the given file (or stdin) and
  adds them to the book. Transactions keep their identifier when it is
  present and free; otherwise a fresh one is assigned. With -assign-ids
  every imported transaction gets a fresh identifier.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input file. Defaults to stdin.")
	f.BoolVar(&c.assignIDs, "assign-ids", false, "Ignore identifiers in the input and assign fresh ones")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.input != "" {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	imported, err := fintrack.ImportBook(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading import stream: %v\n", err)
		return subcommands.ExitFailure
	}

	store := OpenStore()
	for _, tx := range imported {
		keep := !c.assignIDs && tx.ID > 0
		if keep {
			// An identifier already present in the book cannot be kept.
			if _, exists, err := store.FindByID(tx.ID); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			} else if exists {
				keep = false
			}
		}
		if !keep {
			id, err := store.NextID()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return subcommands.ExitFailure
			}
			tx.ID = id
		}
		if err := store.Add(tx); err != nil {
			fmt.Fprintf(os.Stderr, "Error adding imported transaction: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Imported %d transaction(s) into %s\n", len(imported), BookFile())
	return subcommands.ExitSuccess
}
