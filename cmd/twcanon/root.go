package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twcanon",
	Short: "Canonical utility class linter for Tailwind-style design systems",
	Long: `Find and fix class spellings that bypass the design system scale.
p-[4px] becomes p-1, bg-[#ef4444] becomes bg-red-500.
The scale is read from your own stylesheet, never hardcoded.`,
	// Default behavior: run lint when no subcommand is given.
	// We must call loadConfig here because PreRunE of lintCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runLint(false)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".twcanon.yaml", "Config file path")
	rootCmd.PersistentFlags().String("css-path", "", "Stylesheet that defines the design system")
	rootCmd.PersistentFlags().Float64("root-font-size", 0, "Pixels per rem for unit conversion (default 16)")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
