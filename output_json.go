package twcanon

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
	Summary   JSONSummary    `json:"summary"`
	Stats     JSONStats      `json:"stats"`
	Issues    []JSONIssue    `json:"issues"`
	QuickWins []JSONQuickWin `json:"quick_wins"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains canonical-coverage statistics
type JSONStats struct {
	ClassTokensChecked  int     `json:"class_tokens_checked"`
	NonCanonical        int     `json:"non_canonical"`
	DynamicSkipped      int     `json:"dynamic_skipped"`
	ClassAttributes     int     `json:"class_attributes"`
	CanonicalPercentage float64 `json:"canonical_percentage"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`      // Optional source line
	Replacement string `json:"replacement,omitempty"` // Canonical spelling
}

// JSONQuickWin represents a high-impact rewrite opportunity
type JSONQuickWin struct {
	Spelling    string `json:"spelling"`
	Canonical   string `json:"canonical"`
	Occurrences int    `json:"occurrences"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		replacement := ""
		if issue.Replacement != nil {
			replacement = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Message:     issue.Text,
			Linter:      issue.FromLinter,
			Source:      source,
			Replacement: replacement,
		}
	}

	quickWins := make([]JSONQuickWin, len(result.QuickWins))
	for i, win := range result.QuickWins {
		quickWins[i] = JSONQuickWin{
			Spelling:    win.Spelling,
			Canonical:   win.Canonical,
			Occurrences: win.Occurrences,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			ClassTokensChecked:  result.TotalClasses,
			NonCanonical:        result.NonCanonical,
			DynamicSkipped:      result.DynamicSkipped,
			ClassAttributes:     result.ReferencesFound,
			CanonicalPercentage: result.CanonicalPercentage,
		},
		Issues:    jsonIssues,
		QuickWins: quickWins,
	}
}
