package main

import (
	"fmt"

	"github.com/MaisonnatM/twcanon"
	"github.com/spf13/cobra"
)

var fixCmd = &cobra.Command{
	Use:   "fix",
	Short: "Rewrite class spellings to their canonical form",
	Long: `Apply the rewrites a lint run would report: each non-canonical token is
replaced in place, quote style and token order untouched.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		lintConfig := buildLintConfig()
		lintResult, err := twcanon.Lint(lintConfig)
		if err != nil {
			return fmt.Errorf("lint failed: %w", err)
		}

		for _, warning := range lintResult.Warnings {
			fmt.Println("Warning:", warning)
		}

		fixed, err := twcanon.Fix(lintResult, twcanon.FixOptions{DryRun: dryRun})
		if err != nil {
			return fmt.Errorf("fix failed: %w", err)
		}

		printFixSummary(fixed, dryRun)
		return nil
	},
}

func init() {
	f := fixCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for class references")
	f.Bool("dry-run", false, "Report what would change without writing files")
}

func printFixSummary(fixed *twcanon.FixResult, dryRun bool) {
	verb := "Rewrote"
	if dryRun {
		verb = "Would rewrite"
	}

	if fixed.RewritesApplied == 0 {
		fmt.Println("Nothing to fix")
	} else {
		fmt.Printf("%s %d class %s in %d %s\n",
			verb,
			fixed.RewritesApplied, pluralWord(fixed.RewritesApplied, "attribute", "attributes"),
			fixed.FilesChanged, pluralWord(fixed.FilesChanged, "file", "files"))
	}

	if fixed.RewritesRejected > 0 {
		fmt.Printf("Skipped %d stale %s (files changed since the scan)\n",
			fixed.RewritesRejected, pluralWord(fixed.RewritesRejected, "rewrite", "rewrites"))
	}
}

func pluralWord(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
