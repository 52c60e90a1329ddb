package twcanon

import (
	"fmt"
	"os"
	"sort"
)

// FixOptions configures how rewrites are applied.
type FixOptions struct {
	// DryRun reports what would change without writing any file.
	DryRun bool
}

// FixResult summarizes an applied fix run.
type FixResult struct {
	FilesChanged     int
	RewritesApplied  int
	RewritesRejected int // Rewrites whose target text no longer matched
}

// Fix applies the rewrites from a lint run to the files on disk. Rewrites
// within a file are applied highest offset first so earlier offsets stay
// valid. A rewrite whose original text no longer matches the file content is
// rejected rather than applied blindly.
func Fix(result *LintResult, opts FixOptions) (*FixResult, error) {
	byFile := make(map[string][]Rewrite)
	for _, rw := range result.Rewrites {
		byFile[rw.File] = append(byFile[rw.File], rw)
	}

	// Deterministic file order
	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)

	fixed := &FixResult{}

	for _, file := range files {
		rewrites := byFile[file]
		sort.Slice(rewrites, func(i, j int) bool {
			return rewrites[i].Offset > rewrites[j].Offset
		})

		// #nosec G304 - paths come from the lint run itself
		content, err := os.ReadFile(file)
		if err != nil {
			return fixed, fmt.Errorf("read %s: %w", file, err)
		}

		text := string(content)
		applied := 0

		for _, rw := range rewrites {
			end := rw.Offset + len(rw.OldText)
			if rw.Offset < 0 || end > len(text) || text[rw.Offset:end] != rw.OldText {
				fixed.RewritesRejected++
				continue
			}
			text = text[:rw.Offset] + rw.NewText + text[end:]
			applied++
		}

		if applied == 0 {
			continue
		}
		fixed.RewritesApplied += applied
		fixed.FilesChanged++

		if opts.DryRun {
			continue
		}

		info, err := os.Stat(file)
		mode := os.FileMode(0644)
		if err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(file, []byte(text), mode); err != nil {
			return fixed, fmt.Errorf("write %s: %w", file, err)
		}
	}

	return fixed, nil
}
