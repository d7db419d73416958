// Package cmd implements the CLI application to compare a "Portfolio Value"
// export against a model portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/modelfolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&holdingsCmd{}, "reports")
	c.Register(&compareCmd{}, "reports")

	c.Register(&modelCmd{}, "model")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var modelFile = flag.String("model-file", "", "Path to the model portfolio file (TOML). Empty uses the built-in Model Portfolio III.")

// LoadModel is the central function to load the active model portfolio.
func LoadModel() (*modelfolio.Model, error) {
	if *modelFile == "" {
		return modelfolio.DefaultModel(), nil
	}
	return modelfolio.LoadModel(*modelFile)
}

// ParseReportFile parses the "Portfolio Value" export at 'path', with
// monetary values in 'currency'.
func ParseReportFile(path, currency string) (*modelfolio.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open report file %q: %w", path, err)
	}
	defer f.Close()
	return modelfolio.ParseReport(f, currency)
}

// printMarkdown renders 'md' for the terminal, falling back to the raw
// markdown when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.RenderWithEnvironmentConfig(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// printWarnings emits the trailing diagnostics of a review: the
// reconciliation check and the aliases that never matched a holding.
func printWarnings(r *modelfolio.Review) {
	if !r.Reconciles() {
		fmt.Fprintf(os.Stderr, "Warning: totals do not add up: desired %s, actual %s\n", r.TotalDesired, r.TotalActual)
	}
	for _, alias := range r.UnusedAliases {
		fmt.Fprintf(os.Stderr, "Warning: alias %q was not used by any holding\n", alias)
	}
}
