package main

import (
	"fmt"
	"os"

	"github.com/MaisonnatM/twcanon"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check class spellings against the design system",
	Long: `Scan templates for literal class strings and flag every token whose
canonical spelling differs: p-[4px] instead of p-1, bg-[#ef4444] instead
of bg-red-500. Tokens the design system does not recognize are left alone.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		applyFixes, _ := cmd.Flags().GetBool("fix")
		watch, _ := cmd.Flags().GetBool("watch")
		if watch {
			return runWatch(applyFixes)
		}
		return runLint(applyFixes)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for class references")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (twcanon) suffix on issues")
	f.Bool("fix", false, "Apply the canonical rewrites after linting")
	f.Bool("watch", false, "Re-run on file changes")
}

// runLint is shared between `twcanon lint` and the bare `twcanon`
// invocation.
func runLint(applyFixes bool) error {
	issueCount, err := lintOnce(applyFixes)
	if err != nil {
		return err
	}

	// Exit code logic - "Soft Gate" approach. Every finding has a known
	// rewrite, so only strict mode fails the build.
	strict := getBoolWithFallback("strict", "lint.strict", false)
	if strict && !applyFixes && issueCount > 0 {
		os.Exit(1)
	}

	return nil
}

// lintOnce runs a single lint pass and returns the issue count. Watch mode
// calls it directly so a strict failure does not kill the process.
func lintOnce(applyFixes bool) (int, error) {
	lintConfig := buildLintConfig()

	lintResult, err := twcanon.Lint(lintConfig)
	if err != nil {
		return 0, fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := twcanon.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		twcanon.WriteOutput(os.Stdout, lintResult, format, lintConfig)
	}

	if applyFixes {
		fixed, err := twcanon.Fix(lintResult, twcanon.FixOptions{})
		if err != nil {
			return len(lintResult.Issues), fmt.Errorf("fix failed: %w", err)
		}
		if !quiet {
			printFixSummary(fixed, false)
		}
	}

	return len(lintResult.Issues), nil
}
