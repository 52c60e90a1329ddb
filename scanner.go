package twcanon

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ClassReference is a literal class string found in source code
type ClassReference struct {
	Value    string       // Raw literal text between the quotes
	Quote    byte         // Quote character used in the source: ", ' or `
	Location FileLocation // Where it was found
	Offset   int          // Byte offset of Value within the file
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the value start
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern is a regex for one class-attribute context. The first capture
// group is the literal value.
type scanPattern struct {
	name  string
	regex *regexp.Regexp
	quote byte
}

var (
	// Patterns for literal class strings, most specific first. JSX brace
	// forms must come before the helper calls so a line is claimed by the
	// narrowest context that fits.
	patterns = []scanPattern{
		{
			name:  "JSX expression with string",
			regex: regexp.MustCompile(`\b(?:class|className)\s*=\s*\{\s*"([^"]*)"\s*\}`),
			quote: '"',
		},
		{
			name:  "JSX expression with single-quoted string",
			regex: regexp.MustCompile(`\b(?:class|className)\s*=\s*\{\s*'([^']*)'\s*\}`),
			quote: '\'',
		},
		{
			name:  "JSX expression with template literal",
			regex: regexp.MustCompile("\\b(?:class|className)\\s*=\\s*\\{\\s*`([^`]*)`\\s*\\}"),
			quote: '`',
		},
		{
			name:  "class attribute with double quotes",
			regex: regexp.MustCompile(`\b(?:class|className)\s*=\s*"([^"]*)"`),
			quote: '"',
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`\b(?:class|className)\s*=\s*'([^']*)'`),
			quote: '\'',
		},
		{
			name:  "class helper with string",
			regex: regexp.MustCompile(`\b(?:clsx|cn|classnames|classNames)\(\s*"([^"]*)"`),
			quote: '"',
		},
		{
			name:  "class helper with template literal",
			regex: regexp.MustCompile("\\b(?:clsx|cn|classnames|classNames)\\(\\s*`([^`]*)`"),
			quote: '`',
		},
	}

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*(//|/\*|\*|\{/\*)`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGeneratedFile checks for build artifacts that should never be linted:
// templ output and minified bundles.
func isGeneratedFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.Contains(base, ".min.")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// Gracefully degrade - no .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning.
//
// Three-layer filtering:
// 1. Pattern check (fast): generated and minified files
// 2. node_modules is never lintable regardless of gitignore state
// 3. Gitignore check (only for relative paths within the project)
func shouldSkipFile(path string) bool {
	if isGeneratedFile(path) {
		return true
	}

	normalized := strings.ReplaceAll(path, "\\", "/")
	if strings.Contains(normalized, "node_modules/") {
		return true
	}

	// Absolute paths (like /tmp/...) should not be affected by the project
	// gitignore.
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for literal class strings
func ScanFiles(scanPatterns []string, verbose bool) ([]ClassReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	if verbose && stats.FilesSkipped > 0 {
		println("Scanned", stats.FilesScanned, "files (skipped", stats.FilesSkipped, "generated/ignored files)")
	}

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			// Unreadable file: skip and continue
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands glob patterns to actual file paths and tracks
// statistics
func expandGlobPatterns(globs []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range globs {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for literal class strings. Byte offsets are
// tracked so the fixer can substitute values in place.
func scanFile(filePath string) ([]ClassReference, error) {
	// #nosec G304 - path comes from the configured scan globs
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var refs []ClassReference
	offset := 0

	for lineNum, rawLine := range strings.Split(string(content), "\n") {
		line := strings.TrimSuffix(rawLine, "\r")
		refs = append(refs, extractClassesFromLine(line, lineNum+1, offset, filePath)...)
		offset += len(rawLine) + 1
	}

	return refs, nil
}

// extractClassesFromLine extracts all literal class strings from a line
func extractClassesFromLine(line string, lineNum int, lineOffset int, file string) []ClassReference {
	// Skip comments
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference
	claimed := make([][2]int, 0, 2)

	for _, pattern := range patterns {
		matches := pattern.regex.FindAllStringSubmatchIndex(line, -1)
		for _, match := range matches {
			if len(match) < 4 {
				continue
			}

			// Vue-style dynamic bindings (:class="expr") hold expressions,
			// not literals.
			if match[0] > 0 && (line[match[0]-1] == ':' || line[match[0]-1] == '@') {
				continue
			}

			// An earlier (more specific) pattern already claimed this span.
			if overlapsAny(claimed, match[0], match[1]) {
				continue
			}
			claimed = append(claimed, [2]int{match[0], match[1]})

			refs = append(refs, ClassReference{
				Value: line[match[2]:match[3]],
				Quote: pattern.quote,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: match[2] + 1, // 1-based
					Text:   line,
				},
				Offset: lineOffset + match[2],
			})
		}
	}

	return refs
}

func overlapsAny(spans [][2]int, start, end int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}

// classToken is one whitespace-separated token within a class value.
type classToken struct {
	Text    string
	Start   int // offset within the value
	End     int
	Dynamic bool // overlaps an interpolated expression
}

// splitClassTokens splits a class value into tokens while keeping their exact
// positions, so rejoining preserves the original whitespace between tokens.
// Tokens overlapping a template-literal interpolation are marked dynamic and
// are never rewritten.
func splitClassTokens(value string) []classToken {
	spans := interpolationSpans(value)

	var tokens []classToken
	start := -1
	for i := 0; i <= len(value); i++ {
		boundary := i == len(value) || value[i] == ' ' || value[i] == '\t' || value[i] == '\n'
		if !boundary && start < 0 {
			start = i
		}
		if boundary && start >= 0 {
			tokens = append(tokens, classToken{
				Text:    value[start:i],
				Start:   start,
				End:     i,
				Dynamic: overlapsAny(spans, start, i),
			})
			start = -1
		}
	}
	return tokens
}

// interpolationSpans finds ${...} expression spans in a template literal.
// Everything from an unclosed ${ to the end of the value counts as dynamic.
func interpolationSpans(value string) [][2]int {
	var spans [][2]int
	for i := 0; i+1 < len(value); i++ {
		if value[i] != '$' || value[i+1] != '{' {
			continue
		}
		end := strings.IndexByte(value[i+2:], '}')
		if end < 0 {
			spans = append(spans, [2]int{i, len(value)})
			break
		}
		spans = append(spans, [2]int{i, i + 2 + end + 1})
		i += 2 + end
	}
	return spans
}

// rejoinClassTokens splices replacement token texts back into the original
// value. Token order, count and inter-token whitespace are preserved.
func rejoinClassTokens(value string, tokens []classToken, replacements []string) string {
	var b strings.Builder
	b.Grow(len(value))

	prev := 0
	for i, tok := range tokens {
		b.WriteString(value[prev:tok.Start])
		b.WriteString(replacements[i])
		prev = tok.End
	}
	b.WriteString(value[prev:])

	return b.String()
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
