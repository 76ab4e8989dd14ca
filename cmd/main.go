// Package cmd implements the CLI application to manage the transaction
// book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fintrack/fintrack"
	"github.com/fintrack/fintrack/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package calls Register() to install them, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "book")
	c.Register(&txCmd{}, "book")
	c.Register(&deleteCmd{}, "book")
	c.Register(&fmtCmd{}, "book")

	c.Register(&totalCmd{}, "reports")
	c.Register(&categoryCmd{}, "reports")

	c.Register(&exportCmd{}, "import/export")
	c.Register(&importCmd{}, "import/export")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("file", "", "Path to the book file. Overrides the config file and FINTRACK_FILE.")
var verbose = flag.Bool("v", false, "Enable debug logging")

var cfg *config.Config

// Setup loads the configuration and wires logging. main calls it after
// flag.Parse and before Execute.
func Setup() error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c

	level := zerolog.WarnLevel
	if *verbose || cfg.Verbose {
		level = zerolog.DebugLevel
	}
	fintrack.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger())
	return nil
}

// BookFile resolves the book file path: the -file flag wins over the
// configuration.
func BookFile() string {
	if *bookFile != "" {
		return *bookFile
	}
	return cfg.File
}

// Currency returns the configured display currency.
func Currency() string {
	return cfg.Currency
}

// OpenStore opens the record store over the configured book file.
func OpenStore() *fintrack.Store {
	return fintrack.NewStore(BookFile())
}

// OpenService opens the façade over the configured book file.
func OpenService() *fintrack.Service {
	return fintrack.NewService(OpenStore())
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails (e.g. no usable terminal).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
