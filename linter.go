package twcanon

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MaisonnatM/twcanon/internal/design"
)

// LintConfig holds linting configuration
type LintConfig struct {
	// CSSPath points at the stylesheet that defines the design system.
	// Required; absolute or relative to the working directory.
	CSSPath string

	// RootFontSize is the pixels-per-rem ratio for relative-unit
	// conversion. Zero means 16.
	RootFontSize float64

	// ScanPaths are glob patterns for the files to check
	// (e.g. "internal/web/**/*.{templ,html}").
	ScanPaths []string

	Verbose bool
	Strict  bool // Exit with code 1 on any issue (CI mode)

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited
	MaxSameIssues      int  // 0 = unlimited
	PrintIssuedLines   bool // Show source lines with issues
	PrintLinterName    bool // Show (twcanon) suffix
	UseColors          bool // Enable color output (default: auto-detect)
}

// ErrMissingCSSPath is returned when LintConfig.CSSPath is empty. It is a
// configuration error: no checks run.
var ErrMissingCSSPath = errors.New("css-path is required: set it to the stylesheet that defines your design system")

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	TotalClasses        int     // Class tokens checked
	NonCanonical        int     // Tokens with a different canonical spelling
	DynamicSkipped      int     // Tokens inside interpolated expressions
	CanonicalPercentage float64 // Share of checked tokens already canonical
	FilesScanned        int
	ReferencesFound     int // Class attributes/calls inspected

	// Issues in golangci-lint format
	Issues         []Issue
	TruncatedCount int // Issues removed due to limits

	// Rewrites are the file substitutions a fix run would apply, one per
	// reference with at least one non-canonical token.
	Rewrites []Rewrite

	// Summary
	Warnings  []string
	QuickWins []QuickWin // Most frequent non-canonical spellings
}

// QuickWin represents a high-impact rewrite opportunity
type QuickWin struct {
	Spelling    string // "p-[4px]"
	Canonical   string // "p-1"
	Occurrences int    // 45
}

// Lint loads the design system and checks every literal class token found in
// the scan paths against its canonical spelling.
//
// When analyzing class="p-[4px] m-2", the linter splits the literal into
// whitespace-separated tokens, forwards the token list to the design
// system's canonicalization function (p-[4px] -> p-1, m-2 -> m-2), and flags
// every token whose canonical spelling differs, with the rewrite attached.
// Unrecognized tokens come back unchanged and are never flagged; tokens
// overlapping a template-literal interpolation are never considered.
//
// A stylesheet that cannot be loaded is a terminal condition for its path:
// the failure is recorded once as a result warning and no issues are
// produced. A missing CSSPath is a configuration error instead.
func Lint(config LintConfig) (*LintResult, error) {
	if config.CSSPath == "" {
		return nil, ErrMissingCSSPath
	}

	sys, err := design.Get(config.CSSPath)
	if err != nil {
		// Checks are skipped silently from here on; the cache keeps the
		// failure terminal so the error is not raised repeatedly.
		return &LintResult{
			Warnings: []string{fmt.Sprintf("design system unavailable, checks skipped: %v", err)},
		}, nil
	}

	refs, stats, err := ScanFiles(config.ScanPaths, config.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	result := analyzeReferences(sys, refs, config)
	result.FilesScanned = stats.FilesScanned

	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// analyzeReferences canonicalizes every reference and collects issues and
// rewrites.
func analyzeReferences(sys *design.System, refs []ClassReference, config LintConfig) *LintResult {
	result := &LintResult{ReferencesFound: len(refs)}
	opts := design.Options{RootFontSize: config.RootFontSize}

	freq := make(map[string]int)
	canonicalOf := make(map[string]string)

	for _, ref := range refs {
		tokens := splitClassTokens(ref.Value)
		if len(tokens) == 0 {
			continue
		}

		texts := make([]string, len(tokens))
		for i, tok := range tokens {
			texts[i] = tok.Text
		}
		canonical := sys.CanonicalizeClasses(texts, opts)

		replacements := make([]string, len(tokens))
		changed := false

		for i, tok := range tokens {
			result.TotalClasses++
			replacements[i] = tok.Text

			if tok.Dynamic {
				result.DynamicSkipped++
				continue
			}
			if canonical[i] == tok.Text {
				continue
			}

			replacements[i] = canonical[i]
			changed = true
			result.NonCanonical++
			freq[tok.Text]++
			canonicalOf[tok.Text] = canonical[i]

			result.Issues = append(result.Issues, Issue{
				FromLinter:  "twcanon",
				Text:        fmt.Sprintf(IssueNonCanonical, tok.Text, canonical[i]),
				Severity:    SeverityWarning,
				SourceLines: []string{ref.Location.Text},
				Pos: IssuePos{
					Filename: ref.Location.File,
					Line:     ref.Location.Line,
					Column:   ref.Location.Column + tok.Start,
				},
				Replacement: &Replacement{
					NewText:      canonical[i],
					InlineLength: len(tok.Text),
				},
			})
		}

		if changed {
			// The rewrite splices canonical tokens back between the original
			// quotes: order, count, whitespace and quoting all survive.
			result.Rewrites = append(result.Rewrites, Rewrite{
				File:    ref.Location.File,
				Offset:  ref.Offset,
				OldText: ref.Value,
				NewText: rejoinClassTokens(ref.Value, tokens, replacements),
			})
		}
	}

	checked := result.TotalClasses - result.DynamicSkipped
	if checked > 0 {
		result.CanonicalPercentage = float64(checked-result.NonCanonical) / float64(checked) * 100
	} else {
		result.CanonicalPercentage = 100
	}

	result.QuickWins = buildQuickWins(freq, canonicalOf)

	return result
}

// buildQuickWins ranks non-canonical spellings by frequency, top 10.
func buildQuickWins(freq map[string]int, canonicalOf map[string]string) []QuickWin {
	wins := make([]QuickWin, 0, len(freq))
	for spelling, count := range freq {
		wins = append(wins, QuickWin{
			Spelling:    spelling,
			Canonical:   canonicalOf[spelling],
			Occurrences: count,
		})
	}

	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		return wins[i].Spelling < wins[j].Spelling
	})

	if len(wins) > 10 {
		wins = wins[:10]
	}
	return wins
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
