// Package renderer renders the ledger as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderSummary renders the users table and the total balance.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_title": "summary_title.md",
		"summary_users": "summary_users.md",
	}
	if len(s.Users) == 0 {
		partials["summary_users"] = "summary_empty.md"
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// RenderHistory renders the transaction history of one user.
func RenderHistory(h *History) string {
	partials := map[string]string{
		"history_title":        "history_title.md",
		"history_transactions": "history_transactions.md",
	}
	if len(h.Lines) == 0 {
		partials["history_transactions"] = "history_empty.md"
	}
	return renderTemplate("history", "history.md", partials, h)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
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

// cell escapes s for use inside a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
