// Package twcanon lints CSS utility class names against a design system and
// rewrites non-canonical spellings to their canonical scale-based
// equivalents.
//
// Arbitrary-value spellings like p-[4px] (or the bare form p-4px) carry the
// same visual effect as the scale spelling p-1 once the design system's base
// spacing step is known. twcanon loads the design system from the project
// stylesheet, extracts literal class strings from source files, and flags
// every token whose canonical spelling differs:
//
//	config := twcanon.LintConfig{
//		CSSPath:   "web/styles/app.css",
//		ScanPaths: []string{"internal/**/*.{templ,html,tsx}"},
//	}
//	result, err := twcanon.Lint(config)
//
// Rewrites suggested by a lint run can be applied in place:
//
//	applied, err := twcanon.Fix(result, twcanon.FixOptions{})
//
// # CLI Tool
//
// twcanon also provides a CLI tool. Install with:
//
//	go install github.com/MaisonnatM/twcanon/cmd/twcanon@latest
package twcanon
