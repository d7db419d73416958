package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/modelfolio"
	"github.com/etnz/modelfolio/renderer"
	"github.com/google/subcommands"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the actual holdings of an export" }
func (*holdingsCmd) Usage() string {
	return `mfl holdings <export-file>

  Parses a tab-delimited "Portfolio Value" export and displays every open
  position with its value, its share of the portfolio, and the model symbol
  it counts against.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one export file")
		return subcommands.ExitUsageError
	}

	model, err := LoadModel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading model: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := ParseReportFile(f.Arg(0), model.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing report: %v\n", err)
		return subcommands.ExitFailure
	}

	review, err := modelfolio.NewReview(report, model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reviewing holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingsMarkdown(renderer.NewHoldings(review)))

	return subcommands.ExitSuccess
}
