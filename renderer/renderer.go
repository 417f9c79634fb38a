// Package renderer turns valuation results and loan schedules into markdown reports.
package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed *.md
var templates embed.FS

// RenderResult renders the Result struct to a markdown string.
func RenderResult(r *Result) string {
	partials := map[string]string{
		"result_title": "result_title.md",
		"result_flows": "result_flows.md",
	}
	return renderTemplate("result", "result.md", partials, r)
}

// RenderSchedule renders the Schedule struct to a markdown string.
func RenderSchedule(s *Schedule, summaryOnly bool) string {
	partials := map[string]string{
		"schedule_summary":      "schedule_summary.md",
		"schedule_installments": "schedule_installments.md",
	}
	// An empty file name results in an empty template.
	if summaryOnly {
		partials["schedule_installments"] = ""
	}
	return renderTemplate("schedule", "schedule.md", partials, s)
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
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
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

// markdown converts GitHub flavored markdown, tables included.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// ToHTML converts a markdown report to HTML.
func ToHTML(md string) (string, error) {
	var b bytes.Buffer
	if err := markdown.Convert([]byte(md), &b); err != nil {
		return "", fmt.Errorf("cannot convert markdown to html: %w", err)
	}
	return b.String(), nil
}
