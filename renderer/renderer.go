package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"
	"time"
)

//go:embed *.md
var templates embed.FS

// Now is the current time used in reports.
// CASHLOG_TESTING_NOW overrides it so that reports can be compared in tests.
func Now() time.Time {
	if now := os.Getenv("CASHLOG_TESTING_NOW"); now != "" {
		t, err := time.Parse("2006-01-02 15:04:05", now)
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// RenderReport renders the Report struct to a markdown string.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"report_title":   "report_title.md",
		"report_summary": "report_summary.md",
		"report_periods": "report_periods.md",
		"table":          "table.md",
	}

	// An empty file name results in an empty section.
	partials["report_amounts"] = ""
	if r.Amounts != nil {
		partials["report_amounts"] = "report_amounts.md"
	}
	partials["report_totals"] = ""
	if r.Totals != nil {
		partials["report_totals"] = "report_totals.md"
	}

	return renderTemplate("report", "report.md", partials, r)
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
