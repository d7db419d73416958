package renderer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/etnz/modelfolio"
)

// Model is the view of the model portfolio itself: its targets and aliases.
type Model struct {
	Currency string
	Rows     []ModelRow
	Aliases  []AliasRow
}

// ModelRow is a single target of the model view.
type ModelRow struct {
	Symbol  string
	Name    string
	Percent int
}

// AliasRow is a single alias of the model view.
type AliasRow struct {
	Alias  string
	Target string
}

// NewModel creates the model view from a validated model.
func NewModel(m *modelfolio.Model) *Model {
	v := &Model{Currency: m.Currency()}
	for t := range m.Targets() {
		v.Rows = append(v.Rows, ModelRow{Symbol: t.Symbol, Name: t.Name, Percent: t.Percent})
	}
	for _, alias := range m.Aliases() {
		v.Aliases = append(v.Aliases, AliasRow{Alias: alias, Target: m.Alias(alias)})
	}
	return v
}

// modelMarkdownTemplate is the template for rendering the model portfolio in
// Markdown.
const modelMarkdownTemplate = `# Model Portfolio ({{ .Currency }})

| Symbol | Security Name | Desired % |
|:---|:---|---:|
{{- range .Rows }}
| {{ .Symbol }} | {{ .Name }} | {{ .Percent }}% |
{{- end }}
| **Total** | | **100%** |
{{- if .Aliases }}

## Aliases

| Symbol | Counts As |
|:---|:---|
{{- range .Aliases }}
| {{ .Alias }} | {{ .Target }} |
{{- end }}
{{- end }}
`

// ModelMarkdown renders the Model view to a markdown string.
func ModelMarkdown(m *Model) string {
	var buf bytes.Buffer
	tmpl := template.Must(template.New("model").Parse(modelMarkdownTemplate))
	if err := tmpl.Execute(&buf, m); err != nil {
		return fmt.Sprintf("Error executing template: %v", err)
	}
	return buf.String()
}
