package twcanon

import (
	"io"
	"os"
)

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and Quick Wins only (weekly reports)
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + Quick Wins (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the appropriate output format based on flags and environment
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues // Issues only, suppressed by the caller
	}

	// Explicit format flag wins
	if formatFlag != "" {
		switch formatFlag {
		case "issues":
			return OutputIssues
		case "summary":
			return OutputSummary
		case "full":
			return OutputFull
		case "json":
			return OutputJSON
		case "markdown", "md":
			return OutputMarkdown
		default:
			// Invalid format, fall through to the default
		}
	}

	// golangci-lint's UX: issues only by default (clean, fast, consistent everywhere)
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		useColors := shouldUseColors(config)
		verboseReporter := NewVerboseReporter(w, useColors)
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintCanonicalProgress(*result)
		verboseReporter.PrintQuickWins(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verboseReporter := NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintCanonicalProgress(*result)
		verboseReporter.PrintQuickWins(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	case OutputMarkdown:
		if err := WriteMarkdown(w, result); err != nil {
			os.Stderr.WriteString("Error writing Markdown: " + err.Error() + "\n")
		}
	}
}
