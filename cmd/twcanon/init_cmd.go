package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twcanon.yaml config file",
	Long:  `Create a .twcanon.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".twcanon.yaml"); err == nil && !force {
			return fmt.Errorf(".twcanon.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".twcanon.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .twcanon.yaml")
		return nil
	},
}

const defaultConfig = `# twcanon configuration
# Docs: https://github.com/MaisonnatM/twcanon

# Shared settings
css-path: web/styles/theme.css
root-font-size: 16
verbose: false

# Linting settings
lint:
  paths:
    - "**/*.html"
    - "**/*.templ"
    - "**/*.jsx"
    - "**/*.tsx"
    - "**/*.vue"
    - "**/*.svelte"
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
