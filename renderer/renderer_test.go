package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/modelfolio"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// newTestReview builds a small review: two targets A (5%) and B (95%), the
// alias X counting against A, holdings X and B, and some cash.
func newTestReview(t *testing.T) *modelfolio.Review {
	t.Helper()

	model, err := modelfolio.NewModel("USD",
		[]modelfolio.Target{
			{Symbol: "A", Name: "Alpha Fund", Percent: 5},
			{Symbol: "B", Name: "Beta Fund", Percent: 95},
		},
		map[string]string{"X": "A"})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}

	export := "Portfolio Value - As of 7/10/2020\n" +
		"\t-Cash-\t50.00\n" +
		"\tXeno Fund\tX\t10.000\t10.000\t\t100.00\t0.00\t100.00\n" +
		"\tBeta Fund\tB\t19.000\t100.000\t\t1,800.00\t100.00\t1,900.00\n"
	report, err := modelfolio.ParseReport(strings.NewReader(export), "USD")
	if err != nil {
		t.Fatalf("ParseReport() error: %v", err)
	}

	review, err := modelfolio.NewReview(report, model)
	if err != nil {
		t.Fatalf("NewReview() error: %v", err)
	}
	return review
}

// tableRows parses 'md' and counts the body rows of its markdown tables,
// to check the reports stay structurally valid markdown.
func tableRows(t *testing.T, md string) int {
	t.Helper()

	source := []byte(md)
	parser := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser()
	root := parser.Parse(text.NewReader(source))

	rows := 0
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == east.KindTableRow {
			rows++
		}
		return ast.WalkContinue, nil
	})
	return rows
}

func TestHoldingsMarkdown(t *testing.T) {
	review := newTestReview(t)
	md := HoldingsMarkdown(NewHoldings(review))

	// 2 holdings + cash + total.
	if got := tableRows(t, md); got != 4 {
		t.Errorf("holdings table has %d rows, want 4\n%s", got, md)
	}
	for _, want := range []string{
		"# Actual Holdings as of 7/10/2020",
		"| B | Beta Fund | $1,900.00 | 95.00% | B |",
		"| X | Xeno Fund | $100.00 | 5.00% | A |",
		"| Cash | | $50.00 | | |",
		"**$2,050.00**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("holdings markdown is missing %q\n%s", want, md)
		}
	}
}

func TestComparisonMarkdown(t *testing.T) {
	review := newTestReview(t)
	md := ComparisonMarkdown(NewComparison(review))

	// 2 targets + cash + total.
	if got := tableRows(t, md); got != 4 {
		t.Errorf("comparison table has %d rows, want 4\n%s", got, md)
	}
	for _, want := range []string{
		"# Model Portfolio as of 7/10/2020",
		"| A | Alpha Fund | 5% | 5.00% | $100.00 | $100.00 | - |",
		"| B | Beta Fund | 95% | 95.00% | $1,900.00 | $1,900.00 | - |",
		"| Cash | | | | $50.00 | $50.00 | |",
		"**100%**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("comparison markdown is missing %q\n%s", want, md)
		}
	}
}

func TestModelMarkdown(t *testing.T) {
	model := modelfolio.DefaultModel()
	md := ModelMarkdown(NewModel(model))

	// 7 targets + total in the first table, 7 aliases in the second.
	if got := tableRows(t, md); got != 15 {
		t.Errorf("model tables have %d rows, want 15\n%s", got, md)
	}
	for _, want := range []string{
		"| VTSAX | Vanguard Total Stock Market | 30% |",
		"| FXAIX | VTSAX |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("model markdown is missing %q\n%s", want, md)
		}
	}
}
