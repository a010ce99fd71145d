// Package report turns audit findings into a structured document and writes
// it as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"sort"

	"stringskit/internal/audit"
	"stringskit/internal/config"
	"stringskit/internal/stringsfile"
	"stringskit/internal/textutil"

	"github.com/rs/zerolog/log"
)

// Finding is one reportable hardcoded-string occurrence.
type Finding struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Kind    string `json:"kind"`
	Literal string `json:"literal"`
	Context string `json:"context,omitempty"`
}

// Suggestion proposes a localization key for a unique literal.
type Suggestion struct {
	Literal string `json:"literal"`
	// SuggestedKey is a slug derived from the literal text.
	SuggestedKey string `json:"suggested_key"`
	// AlreadyLocalized is true when the literal appears verbatim as some
	// value in the master locale.
	AlreadyLocalized bool `json:"already_localized"`
}

// Report is the full findings document.
type Report struct {
	TotalFindings  int          `json:"total_findings"`
	UniqueLiterals int          `json:"unique_literals"`
	FilesAffected  int          `json:"files_affected"`
	Findings       []Finding    `json:"findings"`
	Suggestions    []Suggestion `json:"suggestions"`
}

// Build assembles the report, deriving key suggestions for each unique
// literal and marking those already present as master values.
func Build(cfg *config.Config, findings []audit.Finding, master *stringsfile.File) *Report {
	r := &Report{
		TotalFindings: len(findings),
	}

	masterValues := make(map[string]struct{}, len(master.Entries))
	for _, e := range master.Entries {
		masterValues[e.Value] = struct{}{}
	}

	files := make(map[string]struct{})
	literals := make(map[string]struct{})

	for _, f := range findings {
		r.Findings = append(r.Findings, Finding{
			File:    f.File,
			Line:    f.Line,
			Kind:    f.Kind,
			Literal: f.Literal,
			Context: f.Context,
		})
		files[f.File] = struct{}{}
		literals[f.Literal] = struct{}{}
	}

	uniques := make([]string, 0, len(literals))
	for lit := range literals {
		uniques = append(uniques, lit)
	}
	sort.Strings(uniques)

	for _, lit := range uniques {
		_, localized := masterValues[lit]
		r.Suggestions = append(r.Suggestions, Suggestion{
			Literal:          lit,
			SuggestedKey:     cfg.Audit.SlugPrefix + textutil.Slug(lit, cfg.Audit.SlugMaxLen),
			AlreadyLocalized: localized,
		})
	}

	r.UniqueLiterals = len(uniques)
	r.FilesAffected = len(files)
	return r
}

// WriteJSON writes the report to path, atomically.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := stringsfile.WriteAtomic(path, []string{string(data)}); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	log.Info().Str("path", path).Int("findings", r.TotalFindings).Msg("Report written")
	return nil
}
