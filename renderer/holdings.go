// Package renderer converts review data into markdown reports.
package renderer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/etnz/modelfolio"
)

// Holdings is the view of the actual-holdings report: every parsed position
// with its value, its share of the portfolio and the model symbol it counts
// against.
type Holdings struct {
	// Date of the underlying report, verbatim.
	Date string
	// Rows lists the positions in symbol order.
	Rows []HoldingRow
	// Cash is the investment cash balance.
	Cash modelfolio.Money
	// Total is net worth plus cash.
	Total modelfolio.Money
	// TotalPercent is the sum of the row percentages, 100% up to rounding.
	TotalPercent modelfolio.Percent
}

// HoldingRow is a single position of the holdings report.
type HoldingRow struct {
	Symbol  string
	Name    string
	Value   modelfolio.Money
	Percent modelfolio.Percent
	// Target is the model symbol the position counts against.
	Target string
}

// NewHoldings creates the holdings view from a review.
func NewHoldings(r *modelfolio.Review) *Holdings {
	h := &Holdings{
		Date:  r.Date,
		Cash:  r.Cash,
		Total: r.NetWorth.Add(r.Cash),
	}
	for _, hr := range r.Holdings {
		h.Rows = append(h.Rows, HoldingRow{
			Symbol:  hr.Symbol,
			Name:    hr.Name,
			Value:   hr.Balance,
			Percent: hr.PortfolioPercent,
			Target:  hr.Target,
		})
		h.TotalPercent += hr.PortfolioPercent
	}
	return h
}

// holdingsMarkdownTemplate is the template for rendering the actual-holdings
// report in Markdown.
const holdingsMarkdownTemplate = `# Actual Holdings as of {{ .Date }}

| Symbol | Security Name | Value | % | Counts As |
|:---|:---|---:|---:|:---|
{{- range .Rows }}
| {{ .Symbol }} | {{ .Name }} | {{ .Value }} | {{ .Percent }} | {{ .Target }} |
{{- end }}
| Cash | | {{ .Cash }} | | |
| **Total** | | **{{ .Total }}** | **{{ .TotalPercent }}** | |
`

// HoldingsMarkdown renders the Holdings view to a markdown string.
func HoldingsMarkdown(h *Holdings) string {
	var buf bytes.Buffer
	tmpl := template.Must(template.New("holdings").Parse(holdingsMarkdownTemplate))
	if err := tmpl.Execute(&buf, h); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return buf.String()
}
