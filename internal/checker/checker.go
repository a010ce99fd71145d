// Package checker compares locale resource files against the master and
// reports every inconsistency without mutating anything.
package checker

import (
	"strings"

	"stringskit/internal/config"
	"stringskit/internal/locales"
	"stringskit/internal/stringsfile"
	"stringskit/internal/textutil"

	"github.com/rs/zerolog/log"
)

// Untranslated flags an entry whose value looks like English master content
// left in a non-master locale.
type Untranslated struct {
	Key   string
	Value string
	Line  int
}

// Report is the consistency result for one locale.
type Report struct {
	Locale   string
	Path     string
	NotFound bool
	KeyCount int
	// Missing keys are present in master, absent here.
	Missing []string
	// Extra keys are present here, absent in master.
	Extra []string
	// Duplicates maps a repeated key to every line offset it appeared on.
	Duplicates map[string][]int
	// Malformed lists assignment-shaped lines failing the entry grammar.
	Malformed []stringsfile.MalformedLine
	// Untranslated lists heuristic possibly-untranslated values.
	Untranslated []Untranslated
}

// Consistent reports whether the locale passes: no missing, extra, or
// duplicate keys. Malformed lines and the untranslated heuristic are
// advisory and do not fail the locale.
func (r *Report) Consistent() bool {
	return !r.NotFound && len(r.Missing) == 0 && len(r.Extra) == 0 && len(r.Duplicates) == 0
}

// Check compares a parsed target locale against the master key set.
func Check(cfg *config.Config, master *stringsfile.File, target *stringsfile.File, locale string) *Report {
	r := &Report{
		Locale:     locale,
		Path:       target.Path,
		KeyCount:   len(target.Entries),
		Duplicates: target.Duplicates,
		Malformed:  target.Malformed,
	}

	for _, key := range master.Keys() {
		if !target.HasKey(key) {
			r.Missing = append(r.Missing, key)
		}
	}
	for _, key := range target.Keys() {
		if !master.HasKey(key) {
			r.Extra = append(r.Extra, key)
		}
	}

	if locale != cfg.MasterLocale {
		r.Untranslated = findUntranslated(cfg, target)
	}
	return r
}

// findUntranslated applies the English-indicator phrase list. A value
// containing a format placeholder is exempt; the coincidence may be the
// placeholder's doing. Best effort, false positives expected.
func findUntranslated(cfg *config.Config, f *stringsfile.File) []Untranslated {
	var out []Untranslated
	for _, e := range f.Entries {
		if textutil.ContainsPlaceholder(e.Value) {
			continue
		}
		for _, phrase := range cfg.EnglishIndicators {
			if strings.Contains(e.Value, phrase) {
				out = append(out, Untranslated{Key: e.Key, Value: e.Value, Line: e.Line})
				break
			}
		}
	}
	return out
}

// Result aggregates a full run of check across every configured locale.
type Result struct {
	Master  *Report
	Locales []*Report
	// UnlistedLocales exist on disk but not in the configuration.
	UnlistedLocales []string
	// UniformKeyCount is true when every found locale has the same number
	// of keys as the master.
	UniformKeyCount bool
}

// OK reports whether every locale, master included, is consistent.
func (res *Result) OK() bool {
	if !res.Master.Consistent() {
		return false
	}
	for _, r := range res.Locales {
		if !r.Consistent() {
			return false
		}
	}
	return true
}

// CheckAll parses the master and every target locale and checks each one.
// A missing locale file yields a NotFound report and processing continues.
func CheckAll(cfg *config.Config) (*Result, error) {
	master := locales.Master(cfg)
	masterFile, err := stringsfile.ParseFile(master.Path)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Master:          Check(cfg, masterFile, masterFile, cfg.MasterLocale),
		UniformKeyCount: true,
	}

	for _, target := range locales.Targets(cfg) {
		if !target.Exists {
			log.Warn().Str("locale", target.Code).Str("path", target.Path).Msg("Resource file not found")
			res.Locales = append(res.Locales, &Report{Locale: target.Code, Path: target.Path, NotFound: true})
			res.UniformKeyCount = false
			continue
		}

		targetFile, err := stringsfile.ParseFile(target.Path)
		if err != nil {
			log.Error().Err(err).Str("locale", target.Code).Msg("Parse failed")
			res.Locales = append(res.Locales, &Report{Locale: target.Code, Path: target.Path, NotFound: true})
			res.UniformKeyCount = false
			continue
		}

		r := Check(cfg, masterFile, targetFile, target.Code)
		if r.KeyCount != len(masterFile.Entries) {
			res.UniformKeyCount = false
		}
		res.Locales = append(res.Locales, r)
	}

	if unlisted, err := locales.Unlisted(cfg); err == nil {
		res.UnlistedLocales = unlisted
	}

	return res, nil
}
