// Package renderer turns a computed portfolio into a markdown report.
// It is a presentation collaborator: it only reads the engine's output
// fields and never feeds anything back.
package renderer

import (
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/dmoraru/networth"
)

// Render renders the full net worth report to a markdown string.
func Render(s *networth.ComputedPortfolio, in *networth.PortfolioInput) string {
	partials := map[string]string{
		"report_title":      "report_title.md",
		"report_summary":    "report_summary.md",
		"report_breakdown":  "report_breakdown.md",
		"report_holdings":   "report_holdings.md",
		"report_allocation": "report_allocation.md",
		"report_exposure":   "report_exposure.md",
	}
	return renderTemplate("report", "report.md", partials, NewReport(s, in))
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
