package twcanon

import (
	"fmt"
	"io"
)

// VerboseReporter handles detailed statistics and rewrite suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Canonical Class Statistics", r.useColors))
	fmt.Fprintln(r.w, "--------------------------")

	fmt.Fprintf(r.w, "Class Tokens Checked:   %d\n", result.TotalClasses)
	fmt.Fprintf(r.w, "Non-Canonical:          %d\n", result.NonCanonical)
	fmt.Fprintf(r.w, "Dynamic (skipped):      %d\n", result.DynamicSkipped)
	fmt.Fprintf(r.w, "Files Scanned:          %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Class Attributes:       %d\n", result.ReferencesFound)
}

// PrintCanonicalProgress shows a visual progress bar for canonical adoption
func (r *VerboseReporter) PrintCanonicalProgress(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Canonical Coverage", r.useColors))
	fmt.Fprintln(r.w, "------------------")
	printProgressBar(r.w, result.CanonicalPercentage)
}

// PrintQuickWins shows the most frequent non-canonical spellings
func (r *VerboseReporter) PrintQuickWins(result LintResult) {
	if len(result.QuickWins) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "----------")

	for i, win := range result.QuickWins {
		fmt.Fprintf(r.w, "%d. %q - %d occurrence%s -> use %q\n",
			i+1, win.Spelling, win.Occurrences, pluralize(win.Occurrences), win.Canonical)
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}

// pluralize returns "s" if count != 1
func pluralize(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
