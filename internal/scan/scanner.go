package scan

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/zhscan/zhscan/internal/session"
)

// hanRun matches a maximal run of CJK Unified Ideographs. Each run in a
// line becomes one occurrence.
var hanRun = regexp.MustCompile(`[\x{4e00}-\x{9fa5}]+`)

// defaultExtensions are the source file types scanned when the config
// adds nothing.
var defaultExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// Stats summarizes one walk for diagnostics.
type Stats struct {
	Files   int // files scanned
	Matched int // files with at least one occurrence
	Skipped int // unreadable or binary files skipped
}

func (s Stats) String() string {
	return fmt.Sprintf("%d files scanned, %d with matches, %d skipped", s.Files, s.Matched, s.Skipped)
}

// Scanner walks a directory tree and locates Chinese text in source
// files. It implements session.Scanner. Exclusion patterns come in as a
// raw comma-separated list on each request; every trimmed pattern is a
// glob matched against the slash-separated path relative to the scan
// root and against each path's base name, so a bare "node_modules"
// prunes that directory anywhere in the tree.
type Scanner struct {
	extensions map[string]bool
}

// New builds a scanner for the default extensions plus any extras
// (given with or without the leading dot).
func New(extra ...string) *Scanner {
	exts := make(map[string]bool, len(defaultExtensions)+len(extra))
	for _, e := range defaultExtensions {
		exts[e] = true
	}
	for _, e := range extra {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts[strings.ToLower(e)] = true
	}
	return &Scanner{extensions: exts}
}

// Scan walks req.Path and returns every located occurrence, in walk
// order. Unreadable and binary files are skipped, not fatal.
func (s *Scanner) Scan(ctx context.Context, req session.Request) ([]session.Occurrence, error) {
	info, err := os.Stat(req.Path)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", req.Path)
	}

	patterns := splitPatterns(req.Exclude)

	var occs []session.Occurrence
	var stats Stats

	err = filepath.Walk(req.Path, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, relErr := filepath.Rel(req.Path, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if path == req.Path {
				return nil
			}
			base := filepath.Base(path)
			if base == ".git" || excluded(rel, base, patterns) {
				log.Debug("skipping directory", "path", rel)
				return filepath.SkipDir
			}
			return nil
		}

		if !s.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		if excluded(rel, filepath.Base(path), patterns) {
			log.Debug("skipping file", "path", rel)
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			stats.Skipped++
			return nil
		}
		if bytes.IndexByte(data, 0) >= 0 {
			stats.Skipped++
			return nil
		}

		stats.Files++
		found := scanSource(path, string(data))
		if len(found) > 0 {
			stats.Matched++
			occs = append(occs, found...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", req.Path, err)
	}

	log.Debug("scan complete", "path", req.Path, "stats", stats)
	return occs, nil
}

// scanSource locates Han runs in source text. Lines and columns are
// 1-based; columns count characters, not bytes.
func scanSource(path, source string) []session.Occurrence {
	var occs []session.Occurrence
	for i, line := range strings.Split(source, "\n") {
		for _, m := range hanRun.FindAllStringIndex(line, -1) {
			occs = append(occs, session.Occurrence{
				FilePath: path,
				Line:     i + 1,
				Column:   utf8.RuneCountInString(line[:m[0]]) + 1,
				Text:     line[m[0]:m[1]],
			})
		}
	}
	return occs
}

// splitPatterns parses the raw comma-separated exclude list, dropping
// empty entries.
func splitPatterns(raw string) []string {
	var patterns []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// excluded reports whether a relative path or its base name matches any
// exclusion glob.
func excluded(rel, base string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}
