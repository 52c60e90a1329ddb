package twcanon

import (
	"fmt"
	"io"
	"time"
)

// WriteMarkdown writes the lint result as a shareable Markdown report.
func WriteMarkdown(w io.Writer, result *LintResult) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, format, args...)
	}

	p("# Canonical Class Report\n\n")
	p("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04"))

	p("## Summary\n\n")
	p("| Metric | Value |\n")
	p("|--------|-------|\n")
	p("| Class tokens checked | %d |\n", result.TotalClasses)
	p("| Non-canonical | %d |\n", result.NonCanonical)
	p("| Dynamic (skipped) | %d |\n", result.DynamicSkipped)
	p("| Files scanned | %d |\n", result.FilesScanned)
	p("| Canonical coverage | %.1f%% |\n", result.CanonicalPercentage)

	if len(result.QuickWins) > 0 {
		p("\n## Quick Wins\n\n")
		p("| Spelling | Canonical | Occurrences |\n")
		p("|----------|-----------|-------------|\n")
		for _, win := range result.QuickWins {
			p("| `%s` | `%s` | %d |\n", win.Spelling, win.Canonical, win.Occurrences)
		}
	}

	if len(result.Issues) > 0 {
		p("\n## Issues\n\n")
		for _, issue := range result.Issues {
			p("- `%s:%d:%d` %s\n", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column, issue.Text)
		}
	}

	if len(result.Warnings) > 0 {
		p("\n## Warnings\n\n")
		for _, warning := range result.Warnings {
			p("- %s\n", warning)
		}
	}

	return err
}
