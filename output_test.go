package twcanon

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{name: "default is issues", formatFlag: "", expected: OutputIssues},
		{name: "quiet wins over format", formatFlag: "full", quiet: true, expected: OutputIssues},
		{name: "explicit issues", formatFlag: "issues", expected: OutputIssues},
		{name: "explicit summary", formatFlag: "summary", expected: OutputSummary},
		{name: "explicit full", formatFlag: "full", expected: OutputFull},
		{name: "explicit json", formatFlag: "json", expected: OutputJSON},
		{name: "explicit markdown", formatFlag: "markdown", expected: OutputMarkdown},
		{name: "md alias", formatFlag: "md", expected: OutputMarkdown},
		{name: "invalid falls back to issues", formatFlag: "xml", expected: OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineOutputFormat(tt.formatFlag, tt.quiet)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func sampleLintResult() *LintResult {
	return &LintResult{
		TotalClasses:        10,
		NonCanonical:        2,
		DynamicSkipped:      1,
		CanonicalPercentage: 77.8,
		FilesScanned:        3,
		ReferencesFound:     5,
		Issues: []Issue{
			{
				FromLinter:  "twcanon",
				Text:        `non-canonical class "p-[4px]": use "p-1"`,
				Severity:    SeverityWarning,
				SourceLines: []string{`<div class="p-[4px]">`},
				Pos:         IssuePos{Filename: "web/index.html", Line: 4, Column: 13},
				Replacement: &Replacement{NewText: "p-1", InlineLength: 7},
			},
		},
		QuickWins: []QuickWin{
			{Spelling: "p-[4px]", Canonical: "p-1", Occurrences: 2},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleLintResult()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, 1, output.Summary.TotalIssues)
	assert.Equal(t, 3, output.Summary.FilesScanned)
	assert.Equal(t, 10, output.Stats.ClassTokensChecked)
	assert.Equal(t, 2, output.Stats.NonCanonical)
	assert.Equal(t, 1, output.Stats.DynamicSkipped)
	assert.Equal(t, 5, output.Stats.ClassAttributes)
	assert.InDelta(t, 77.8, output.Stats.CanonicalPercentage, 0.001)

	require.Len(t, output.Issues, 1)
	issue := output.Issues[0]
	assert.Equal(t, "web/index.html", issue.File)
	assert.Equal(t, 4, issue.Line)
	assert.Equal(t, 13, issue.Column)
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Equal(t, "twcanon", issue.Linter)
	assert.Equal(t, "p-1", issue.Replacement)

	require.Len(t, output.QuickWins, 1)
	assert.Equal(t, "p-[4px]", output.QuickWins[0].Spelling)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleLintResult()))

	md := buf.String()
	assert.Contains(t, md, "# Canonical Class Report")
	assert.Contains(t, md, "| Class tokens checked | 10 |")
	assert.Contains(t, md, "| Canonical coverage | 77.8% |")
	assert.Contains(t, md, "## Quick Wins")
	assert.Contains(t, md, "| `p-[4px]` | `p-1` | 2 |")
	assert.Contains(t, md, "## Issues")
	assert.Contains(t, md, "`web/index.html:4:13`")
}

func TestWriteMarkdownEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, &LintResult{CanonicalPercentage: 100}))

	md := buf.String()
	assert.Contains(t, md, "## Summary")
	assert.NotContains(t, md, "## Quick Wins")
	assert.NotContains(t, md, "## Issues")
	assert.NotContains(t, md, "## Warnings")
}
