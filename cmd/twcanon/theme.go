package main

import (
	"fmt"

	"github.com/MaisonnatM/twcanon"
	"github.com/MaisonnatM/twcanon/internal/design"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show the design system resolved from the stylesheet",
	Long: `Load the stylesheet and print the spacing scale, color palette and radius
names the linter canonicalizes against. Useful for checking what a
stylesheet actually defines before wondering why a class is not flagged.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		cssPath := getStringWithFallback("css-path", "css-path", "")
		if cssPath == "" {
			return twcanon.ErrMissingCSSPath
		}

		sys, err := design.Get(cssPath)
		if err != nil {
			return fmt.Errorf("loading design system: %w", err)
		}

		desc := sys.Describe()
		cyan := color.New(color.FgCyan, color.Bold)

		cyan.Println("Spacing")
		fmt.Printf("  base step: %s\n", desc.Spacing.String())

		cyan.Printf("\nColors (%d)\n", len(desc.Colors))
		for _, entry := range desc.Colors {
			fmt.Printf("  %-24s %s\n", entry.Name, entry.Value)
		}

		cyan.Printf("\nRadii (%d)\n", len(desc.Radii))
		for _, entry := range desc.Radii {
			fmt.Printf("  %-24s %s\n", entry.Name, entry.Value)
		}

		return nil
	},
}
