package twcanon

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTheme = `@theme {
  --spacing: 0.25rem;
  --color-red-500: #ef4444;
  --radius-sm: 0.25rem;
}
`

// writeTestProject lays out a stylesheet and source files in a temp dir and
// returns the dir and a ready-to-use config.
func writeTestProject(t *testing.T, files map[string]string) (string, LintConfig) {
	t.Helper()
	dir := t.TempDir()

	cssPath := filepath.Join(dir, "theme.css")
	require.NoError(t, os.WriteFile(cssPath, []byte(testTheme), 0644))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	return dir, LintConfig{
		CSSPath:   cssPath,
		ScanPaths: []string{filepath.Join(dir, "*.html"), filepath.Join(dir, "*.jsx")},
	}
}

func TestLintMissingCSSPath(t *testing.T) {
	_, err := Lint(LintConfig{ScanPaths: []string{"*.html"}})
	require.ErrorIs(t, err, ErrMissingCSSPath)
}

func TestLintUnloadableStylesheet(t *testing.T) {
	dir := t.TempDir()

	result, err := Lint(LintConfig{
		CSSPath:   filepath.Join(dir, "does-not-exist.css"),
		ScanPaths: []string{filepath.Join(dir, "*.html")},
	})
	require.NoError(t, err)

	// The failure is a warning, not an error, and no checks run.
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "design system unavailable")
	assert.Empty(t, result.Issues)
	assert.Zero(t, result.TotalClasses)
}

func TestLintFlagsNonCanonicalTokens(t *testing.T) {
	_, config := writeTestProject(t, map[string]string{
		"index.html": `<div class="p-[16px] flex">` + "\n" + `<span class="m-[8px]">` + "\n",
	})

	result, err := Lint(config)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 2, result.ReferencesFound)
	assert.Equal(t, 3, result.TotalClasses)
	assert.Equal(t, 2, result.NonCanonical)
	require.Len(t, result.Issues, 2)

	first := result.Issues[0]
	assert.Equal(t, "twcanon", first.FromLinter)
	assert.Equal(t, `non-canonical class "p-[16px]": use "p-4"`, first.Text)
	assert.Equal(t, SeverityWarning, first.Severity)
	assert.Equal(t, 1, first.Pos.Line)
	assert.Equal(t, 13, first.Pos.Column)
	require.NotNil(t, first.Replacement)
	assert.Equal(t, "p-4", first.Replacement.NewText)
	assert.Equal(t, len("p-[16px]"), first.Replacement.InlineLength)

	second := result.Issues[1]
	assert.Equal(t, `non-canonical class "m-[8px]": use "m-2"`, second.Text)
	assert.Equal(t, 2, second.Pos.Line)
}

func TestLintRewritesPreserveSurroundings(t *testing.T) {
	_, config := writeTestProject(t, map[string]string{
		"index.html": `<div class="p-[16px]  flex">` + "\n",
	})

	result, err := Lint(config)
	require.NoError(t, err)

	require.Len(t, result.Rewrites, 1)
	rw := result.Rewrites[0]
	assert.Equal(t, 12, rw.Offset)
	assert.Equal(t, "p-[16px]  flex", rw.OldText)
	// The double space between the tokens survives.
	assert.Equal(t, "p-4  flex", rw.NewText)
}

func TestLintSkipsDynamicTokens(t *testing.T) {
	_, config := writeTestProject(t, map[string]string{
		"app.jsx": "<div className={`p-[16px] ${extra}`}>\n",
	})

	result, err := Lint(config)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalClasses)
	assert.Equal(t, 1, result.DynamicSkipped)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, "p-[16px]")

	// The interpolated expression stays verbatim in the rewrite.
	require.Len(t, result.Rewrites, 1)
	assert.Equal(t, "p-4 ${extra}", result.Rewrites[0].NewText)
}

func TestLintCanonicalPercentage(t *testing.T) {
	_, config := writeTestProject(t, map[string]string{
		"index.html": `<div class="p-[16px] flex gap-2 m-4">` + "\n",
	})

	result, err := Lint(config)
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalClasses)
	assert.Equal(t, 1, result.NonCanonical)
	assert.InDelta(t, 75.0, result.CanonicalPercentage, 0.001)
}

func TestLintCanonicalPercentageNoTokens(t *testing.T) {
	_, config := writeTestProject(t, map[string]string{
		"index.html": `<div id="main">` + "\n",
	})

	result, err := Lint(config)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.CanonicalPercentage)
}

func TestLintQuickWins(t *testing.T) {
	_, config := writeTestProject(t, map[string]string{
		"index.html": `<div class="p-[4px]">` + "\n" +
			`<div class="p-[4px]">` + "\n" +
			`<div class="p-[4px]">` + "\n" +
			`<div class="m-[8px]">` + "\n",
	})

	result, err := Lint(config)
	require.NoError(t, err)

	require.Len(t, result.QuickWins, 2)
	assert.Equal(t, QuickWin{Spelling: "p-[4px]", Canonical: "p-1", Occurrences: 3}, result.QuickWins[0])
	assert.Equal(t, QuickWin{Spelling: "m-[8px]", Canonical: "m-2", Occurrences: 1}, result.QuickWins[1])
}

func TestLintRootFontSize(t *testing.T) {
	_, config := writeTestProject(t, map[string]string{
		"index.html": `<div class="p-[10px]">` + "\n",
	})
	config.RootFontSize = 10

	result, err := Lint(config)
	require.NoError(t, err)

	// 10px at 10px/rem is 1rem, four spacing steps.
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0].Text, `use "p-4"`)
}

func TestLimitIssues(t *testing.T) {
	issues := make([]Issue, 0, 6)
	for i := 0; i < 4; i++ {
		issues = append(issues, Issue{Text: `non-canonical class "p-[4px]": use "p-1"`})
	}
	issues = append(issues,
		Issue{Text: `non-canonical class "m-[8px]": use "m-2"`},
		Issue{Text: `non-canonical class "gap-[4px]": use "gap-1"`},
	)

	t.Run("max issues per linter", func(t *testing.T) {
		limited, truncated := limitIssues(issues, LintConfig{MaxIssuesPerLinter: 3})
		assert.Len(t, limited, 3)
		assert.Equal(t, 3, truncated)
	})

	t.Run("max same issues", func(t *testing.T) {
		limited, truncated := limitIssues(issues, LintConfig{MaxSameIssues: 2})
		assert.Len(t, limited, 4)
		assert.Equal(t, 2, truncated)
	})

	t.Run("unlimited", func(t *testing.T) {
		limited, truncated := limitIssues(issues, LintConfig{})
		assert.Len(t, limited, 6)
		assert.Zero(t, truncated)
	})
}

func TestBuildQuickWinsCapsAtTen(t *testing.T) {
	freq := make(map[string]int)
	canonicalOf := make(map[string]string)
	for i := 0; i < 15; i++ {
		spelling := fmt.Sprintf("p-[%dpx]", (i+1)*4)
		freq[spelling] = i + 1
		canonicalOf[spelling] = fmt.Sprintf("p-%d", i+1)
	}

	wins := buildQuickWins(freq, canonicalOf)
	require.Len(t, wins, 10)
	assert.Equal(t, 15, wins[0].Occurrences)
	assert.Equal(t, 6, wins[9].Occurrences)
}
