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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the holdings and model-comparison reports" }
func (*reportCmd) Usage() string {
	return `mfl report <export-file>

  Parses a tab-delimited "Portfolio Value" export and displays the actual
  holdings followed by the desired-versus-actual model comparison.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.ComparisonMarkdown(renderer.NewComparison(review)))
	printWarnings(review)

	return subcommands.ExitSuccess
}
