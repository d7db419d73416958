package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/modelfolio/renderer"
	"github.com/google/subcommands"
)

// modelCmd holds the flags for the 'model' subcommand.
type modelCmd struct{}

func (*modelCmd) Name() string     { return "model" }
func (*modelCmd) Synopsis() string { return "display and validate the active model portfolio" }
func (*modelCmd) Usage() string {
	return `mfl model

  Validates the active model portfolio (percentages summing to 100, aliases
  mapping to target symbols) and displays its targets and aliases.
`
}

func (c *modelCmd) SetFlags(f *flag.FlagSet) {}

func (c *modelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	model, err := LoadModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ModelMarkdown(renderer.NewModel(model)))

	return subcommands.ExitSuccess
}
