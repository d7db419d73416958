package renderer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/etnz/modelfolio"
)

// Comparison is the view of the model-comparison report: one row per model
// target with desired and actual positions, plus cash and totals.
type Comparison struct {
	// Date of the underlying report, verbatim.
	Date string
	// Rows lists the targets in model order.
	Rows []ComparisonRow
	// Cash is the investment cash balance, on both sides of the comparison.
	Cash modelfolio.Money

	TotalDesiredPercent int
	TotalActualPercent  modelfolio.Percent
	TotalDesired        modelfolio.Money
	TotalActual         modelfolio.Money
}

// ComparisonRow is a single model target of the comparison report.
type ComparisonRow struct {
	Symbol         string
	Name           string
	DesiredPercent int
	ActualPercent  modelfolio.Percent
	Desired        modelfolio.Money
	Actual         modelfolio.Money
	Difference     modelfolio.Money
}

// NewComparison creates the comparison view from a review.
func NewComparison(r *modelfolio.Review) *Comparison {
	c := &Comparison{
		Date:                r.Date,
		Cash:                r.Cash,
		TotalDesiredPercent: r.TotalDesiredPercent,
		TotalActualPercent:  r.TotalActualPercent,
		TotalDesired:        r.TotalDesired,
		TotalActual:         r.TotalActual,
	}
	for _, t := range r.Targets {
		c.Rows = append(c.Rows, ComparisonRow{
			Symbol:         t.Symbol,
			Name:           t.Name,
			DesiredPercent: t.Percent,
			ActualPercent:  t.ActualPercent,
			Desired:        t.Desired,
			Actual:         t.Actual,
			Difference:     t.Difference,
		})
	}
	return c
}

// comparisonMarkdownTemplate is the template for rendering the
// model-comparison report in Markdown.
const comparisonMarkdownTemplate = `# Model Portfolio as of {{ .Date }}

| Symbol | Security Name | Desired % | Actual % | Desired $ | Actual $ | Difference $ |
|:---|:---|---:|---:|---:|---:|---:|
{{- range .Rows }}
| {{ .Symbol }} | {{ .Name }} | {{ .DesiredPercent }}% | {{ .ActualPercent }} | {{ .Desired }} | {{ .Actual }} | {{ .Difference.SignedString }} |
{{- end }}
| Cash | | | | {{ .Cash }} | {{ .Cash }} | |
| **Total** | | **{{ .TotalDesiredPercent }}%** | **{{ .TotalActualPercent }}** | **{{ .TotalDesired }}** | **{{ .TotalActual }}** | |
`

// ComparisonMarkdown renders the Comparison view to a markdown string.
func ComparisonMarkdown(c *Comparison) string {
	var buf bytes.Buffer
	tmpl := template.Must(template.New("comparison").Parse(comparisonMarkdownTemplate))
	if err := tmpl.Execute(&buf, c); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return buf.String()
}
