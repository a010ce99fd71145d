// Package audit scans UI source files for hardcoded literals that bypass the
// localization lookup. It is a lexical line scan driven by configurable
// regular-expression tables, not a parse of the source language; false
// positives and negatives are expected.
package audit

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"stringskit/internal/config"
	"stringskit/internal/textutil"
	"stringskit/internal/worker"

	"github.com/rs/zerolog/log"
)

// Finding is one hardcoded literal detected in a source file.
type Finding struct {
	// File is the path of the scanned source file.
	File string
	// Line is the 1-based line number.
	Line int
	// Kind is the UI element label from the matching rule.
	Kind string
	// Literal is the captured string text.
	Literal string
	// Context is the trimmed source line, truncated for display.
	Context string
}

type rule struct {
	re   *regexp.Regexp
	kind string
}

// Auditor holds the compiled rule and skip tables.
type Auditor struct {
	cfg   *config.Config
	rules []rule
	skips []*regexp.Regexp
	allow map[string]struct{}
}

// New compiles the audit tables from the configuration.
func New(cfg *config.Config) (*Auditor, error) {
	a := &Auditor{
		cfg:   cfg,
		allow: make(map[string]struct{}, len(cfg.Audit.AllowShort)),
	}

	for _, r := range cfg.Audit.Rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("compile audit rule %q: %w", r.Pattern, err)
		}
		a.rules = append(a.rules, rule{re: re, kind: r.Kind})
	}
	for _, p := range cfg.Audit.SkipPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile skip pattern %q: %w", p, err)
		}
		a.skips = append(a.skips, re)
	}
	for _, s := range cfg.Audit.AllowShort {
		a.allow[s] = struct{}{}
	}
	return a, nil
}

// Scan walks the source tree and returns findings in file-walk order. The
// per-file scans run through the worker pool; nothing is mutated.
func (a *Auditor) Scan(ctx context.Context, root string) ([]Finding, error) {
	files, err := a.discover(root)
	if err != nil {
		return nil, err
	}
	log.Info().Int("files", len(files)).Str("root", root).Msg("Scanning source files")

	pool := worker.NewPool[string, []Finding](a.cfg.WorkerCount,
		func(ctx context.Context, path string) ([]Finding, error) {
			return a.scanFile(path)
		},
	)
	tasks := pool.Execute(ctx, files)

	var findings []Finding
	for _, t := range tasks {
		if t.Err != nil {
			continue
		}
		findings = append(findings, t.Result...)
	}
	return findings, nil
}

// discover lists source files with an audited extension, skipping paths
// containing any excluded substring.
func (a *Auditor) discover(root string) ([]string, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root path: %w", err)
	}

	var files []string
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		supported := false
		for _, e := range a.cfg.Audit.SourceExts {
			if ext == e {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		for _, sub := range a.cfg.Audit.ExcludePathSubstrings {
			if strings.Contains(path, sub) {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk source tree: %w", err)
	}
	return files, nil
}

func (a *Auditor) scanFile(path string) ([]Finding, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer fh.Close()

	var findings []Finding

	scanner := bufio.NewScanner(fh)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if a.shouldSkipLine(line) {
			continue
		}
		if strings.Contains(line, a.cfg.Audit.LocalizedCall) {
			continue
		}

		// Rule patterns overlap (plain Text vs Text with modifiers); the
		// first rule to capture a literal on a line wins.
		seen := make(map[string]struct{})

		for _, r := range a.rules {
			for _, m := range r.re.FindAllStringSubmatch(line, -1) {
				if len(m) < 2 {
					continue
				}
				literal := m[1]
				if _, dup := seen[literal]; dup {
					continue
				}
				if !a.isCandidate(literal) {
					continue
				}
				seen[literal] = struct{}{}
				findings = append(findings, Finding{
					File:    path,
					Line:    lineNum,
					Kind:    r.kind,
					Literal: literal,
					Context: textutil.Truncate(strings.TrimSpace(line), 80),
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan source file: %w", err)
	}
	return findings, nil
}

func (a *Auditor) shouldSkipLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, re := range a.skips {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// isCandidate filters out matches that are clearly not localizable UI text:
// interpolated or concatenated values, bare numbers, bare format specifiers,
// and one- or two-character strings outside the allow-list.
func (a *Auditor) isCandidate(literal string) bool {
	if strings.Contains(literal, `\(`) || strings.Contains(literal, "+") {
		return false
	}
	if textutil.IsNumeric(literal) {
		return false
	}
	if textutil.IsFormatSpecifier(literal) {
		return false
	}
	if len(literal) <= 2 {
		_, allowed := a.allow[literal]
		return allowed
	}
	return true
}
