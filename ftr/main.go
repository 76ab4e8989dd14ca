package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/fintrack/fintrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell for completion this
	// call prints candidates and exits.
	completion().Complete("ftr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	amountFlags := map[string]complete.Predictor{"a": predict.Something, "c": predict.Something}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"file": predict.Files("*"),
			"v":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add":      {Flags: amountFlags},
			"tx":       {Flags: map[string]complete.Predictor{"head": predict.Something, "tail": predict.Something}},
			"total":    {},
			"category": {Flags: map[string]complete.Predictor{"c": predict.Something}},
			"delete":   {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"fmt":      {},
			"export":   {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
			"import": {Flags: map[string]complete.Predictor{
				"i":          predict.Files("*"),
				"assign-ids": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "quickstart", "format", "*"}},
		},
	}
}
