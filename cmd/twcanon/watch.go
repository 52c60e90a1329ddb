package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MaisonnatM/twcanon/internal/design"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// runWatch re-runs the linter whenever a scanned file or the stylesheet
// changes. Events are debounced so editor save bursts trigger one run.
func runWatch(applyFixes bool) error {
	lintConfig := buildLintConfig()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	dirs := watchDirs(lintConfig.ScanPaths, lintConfig.CSSPath)
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", dir, err)
		}
	}

	cssPath, err := filepath.Abs(lintConfig.CSSPath)
	if err != nil {
		cssPath = lintConfig.CSSPath
	}

	fmt.Printf("Watching %d directories, press Ctrl+C to stop\n", len(dirs))
	if _, err := lintOnce(applyFixes); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	// Debounce timer, armed on the first relevant event of a burst.
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			abs, err := filepath.Abs(event.Name)
			if err == nil && abs == cssPath {
				design.Invalidate(cssPath)
			} else if !matchesAnyPattern(event.Name, lintConfig.ScanPaths) {
				continue
			}

			if timer == nil {
				timer = time.AfterFunc(200*time.Millisecond, func() {
					pending <- struct{}{}
				})
			} else {
				timer.Reset(200 * time.Millisecond)
			}

		case <-pending:
			timer = nil
			fmt.Println()
			if _, err := lintOnce(applyFixes); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Warning: watch error: %v\n", err)
		}
	}
}

// watchDirs resolves the directories to watch: every directory under the
// fixed base of each scan pattern, plus the stylesheet's directory.
func watchDirs(scanPaths []string, cssPath string) []string {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) {
		if dir == "" || seen[dir] {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}

	for _, pattern := range scanPaths {
		base, _ := doublestar.SplitPattern(pattern)
		if base == "." || base == "" {
			base = "."
		}

		_ = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return nil
			}
			name := d.Name()
			if name == "node_modules" || (strings.HasPrefix(name, ".") && path != base) {
				return filepath.SkipDir
			}
			add(path)
			return nil
		})
	}

	if cssPath != "" {
		add(filepath.Dir(cssPath))
	}

	return dirs
}

// matchesAnyPattern reports whether path matches one of the scan globs.
func matchesAnyPattern(path string, patterns []string) bool {
	normalized := filepath.ToSlash(path)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(filepath.ToSlash(pattern), normalized); err == nil && ok {
			return true
		}
	}
	return false
}
