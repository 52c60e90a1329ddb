package design

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// loaderState accumulates theme variables across a stylesheet and its imports.
type loaderState struct {
	baseDir string
	visited map[string]bool // import cycle protection

	themeVars    map[string]string // variables found inside @theme blocks
	fallbackVars map[string]string // variables found anywhere else (:root et al.)
	sawTheme     bool
}

// Load parses raw stylesheet text and returns the design system it defines.
// @import statements are resolved relative to baseDir.
func Load(content string, baseDir string) (*System, error) {
	state := &loaderState{
		baseDir:      baseDir,
		visited:      make(map[string]bool),
		themeVars:    make(map[string]string),
		fallbackVars: make(map[string]string),
	}

	if err := state.consume(content, baseDir); err != nil {
		return nil, err
	}

	return state.build()
}

// LoadFile reads a stylesheet from disk and uses its directory as the base
// for @import resolution.
func LoadFile(path string) (*System, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	state := &loaderState{
		baseDir:      filepath.Dir(path),
		visited:      map[string]bool{filepath.Clean(path): true},
		themeVars:    make(map[string]string),
		fallbackVars: make(map[string]string),
	}

	if err := state.consume(string(content), state.baseDir); err != nil {
		return nil, err
	}

	return state.build()
}

// consume lexes one stylesheet, collecting custom properties and following
// imports depth-first.
func (s *loaderState) consume(content string, baseDir string) error {
	lexer := css.NewLexer(parse.NewInputString(content))

	inTheme := false
	pendingTheme := false
	depth := 0

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		switch tt {
		case css.AtKeywordToken:
			switch string(text) {
			case "@theme":
				pendingTheme = true
			case "@import":
				if err := s.handleImport(lexer, baseDir); err != nil {
					return err
				}
			}

		case css.LeftBraceToken:
			depth++
			if pendingTheme {
				inTheme = true
				s.sawTheme = true
				pendingTheme = false
			}

		case css.RightBraceToken:
			depth--
			if depth <= 0 {
				inTheme = false
				depth = 0
			}

		case css.IdentToken, css.CustomPropertyNameToken:
			name := string(text)
			if !strings.HasPrefix(name, "--") || depth == 0 {
				continue
			}
			value, ok, closedBlock := readDeclarationValue(lexer)
			if ok {
				if inTheme {
					s.themeVars[name] = value
				} else if _, exists := s.fallbackVars[name]; !exists {
					s.fallbackVars[name] = value
				}
			}
			// A block's last declaration may omit the semicolon, in which
			// case the value reader consumed the closing brace.
			if closedBlock {
				depth--
				if depth <= 0 {
					inTheme = false
					depth = 0
				}
			}
		}
	}

	return nil
}

// handleImport resolves @import "file.css"; relative to baseDir.
func (s *loaderState) handleImport(lexer *css.Lexer, baseDir string) error {
	var target string

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken || tt == css.SemicolonToken {
			break
		}

		switch tt {
		case css.StringToken:
			target = strings.Trim(string(text), `"'`)
		case css.URLToken:
			// url(foo.css) form
			inner := strings.TrimSuffix(strings.TrimPrefix(string(text), "url("), ")")
			target = strings.Trim(inner, `"'`)
		}
	}

	if target == "" {
		return nil
	}
	// Package imports like "tailwindcss" resolve through a bundler, not the
	// filesystem. Only follow relative stylesheet paths.
	if !strings.HasSuffix(target, ".css") {
		return nil
	}

	path := filepath.Clean(filepath.Join(baseDir, target))
	if s.visited[path] {
		return nil
	}
	s.visited[path] = true

	// #nosec G304 - path comes from the stylesheet under lint
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("resolve @import %q: %w", target, err)
	}

	return s.consume(string(content), filepath.Dir(path))
}

// readDeclarationValue joins tokens after a ':' until ';' or '}'. The third
// return reports that the terminator was a closing brace, which the caller
// must account for in its depth tracking.
func readDeclarationValue(lexer *css.Lexer) (string, bool, bool) {
	sawColon := false
	var parts []string

	for {
		tt, text := lexer.Next()

		switch tt {
		case css.ErrorToken, css.SemicolonToken, css.RightBraceToken:
			value := strings.TrimSpace(strings.Join(parts, ""))
			return value, sawColon && value != "", tt == css.RightBraceToken
		case css.ColonToken:
			if sawColon {
				parts = append(parts, string(text))
			}
			sawColon = true
		case css.CommentToken:
			// ignore
		default:
			if sawColon {
				parts = append(parts, string(text))
			}
		}
	}
}

// build converts the collected variables into a System.
func (s *loaderState) build() (*System, error) {
	vars := s.themeVars
	if !s.sawTheme {
		vars = s.fallbackVars
	}

	sys := &System{
		Spacing:       DefaultSpacing,
		Colors:        make(map[string]string),
		Radii:         make(map[string]Length),
		colorsByValue: make(map[string]string),
	}

	// Deterministic palette resolution: shorter (or lexicographically
	// smaller) names claim a shared value first.
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := vars[name]

		switch {
		case name == "--spacing":
			l, err := parseLength(value)
			if err != nil {
				return nil, fmt.Errorf("--spacing: %w", err)
			}
			if l.Value <= 0 {
				return nil, fmt.Errorf("--spacing must be positive, got %q", value)
			}
			sys.Spacing = l

		case strings.HasPrefix(name, "--color-"):
			colorName := strings.TrimPrefix(name, "--color-")
			normalized := NormalizeColor(value)
			sys.Colors[colorName] = normalized
			if _, taken := sys.colorsByValue[normalized]; !taken {
				sys.colorsByValue[normalized] = colorName
			}

		case strings.HasPrefix(name, "--radius-"):
			radiusName := strings.TrimPrefix(name, "--radius-")
			l, err := parseLength(value)
			if err != nil {
				// Non-length radius values (percentages, calc) are not
				// canonicalization targets.
				continue
			}
			sys.Radii[radiusName] = l
		}
	}

	return sys, nil
}
