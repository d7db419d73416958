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

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct{}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare an export against the model portfolio" }
func (*compareCmd) Usage() string {
	return `mfl compare <export-file>

  Parses a tab-delimited "Portfolio Value" export and displays the
  desired-versus-actual comparison for each model target.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.ComparisonMarkdown(renderer.NewComparison(review)))
	printWarnings(review)

	return subcommands.ExitSuccess
}
