// Package syncer brings every target locale's key set up to the master's.
// It only ever appends: existing entries are never reordered or rewritten.
package syncer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stringskit/internal/config"
	"stringskit/internal/locales"
	"stringskit/internal/stringsfile"

	"github.com/rs/zerolog/log"
)

// LocaleResult is the outcome of syncing one locale.
type LocaleResult struct {
	Locale  string
	Added   int
	Created bool
	Skipped bool // file missing and creation not requested
}

// Sync appends every master key missing from each target locale, in master
// key order, reproducing the master's section grouping for the appended
// block. When create is true a missing locale file is seeded from scratch
// with the master's full content. Running Sync twice adds nothing the
// second time.
func Sync(cfg *config.Config, create bool) ([]LocaleResult, error) {
	master := locales.Master(cfg)
	masterFile, err := stringsfile.ParseFile(master.Path)
	if err != nil {
		return nil, fmt.Errorf("parse master locale: %w", err)
	}

	var results []LocaleResult
	for _, target := range locales.Targets(cfg) {
		res, err := syncLocale(cfg, masterFile, target, create)
		if err != nil {
			log.Error().Err(err).Str("locale", target.Code).Msg("Sync failed")
			continue
		}
		results = append(results, res)
	}
	return results, nil
}

func syncLocale(cfg *config.Config, master *stringsfile.File, target locales.Locale, create bool) (LocaleResult, error) {
	if !target.Exists {
		if !create {
			log.Warn().Str("locale", target.Code).Str("path", target.Path).Msg("Resource file not found, skipping")
			return LocaleResult{Locale: target.Code, Skipped: true}, nil
		}
		if err := seedLocale(cfg, master, target); err != nil {
			return LocaleResult{}, err
		}
		return LocaleResult{Locale: target.Code, Added: len(master.Entries), Created: true}, nil
	}

	targetFile, err := stringsfile.ParseFile(target.Path)
	if err != nil {
		return LocaleResult{}, err
	}

	additions := appendixFor(cfg, master, targetFile, target.Code)
	if len(additions) == 0 {
		log.Info().Str("locale", target.Code).Int("keys", len(targetFile.Entries)).Msg("All keys present")
		return LocaleResult{Locale: target.Code}, nil
	}

	added := 0
	for _, line := range additions {
		if _, ok := stringsfile.IsEntryLine(line); ok {
			added++
		}
	}

	// Trim trailing blank lines before appending so the new block starts
	// one blank line after the last entry.
	lines := targetFile.RawLines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	lines = append(lines, additions...)

	if err := stringsfile.WriteAtomic(target.Path, lines); err != nil {
		return LocaleResult{}, err
	}

	log.Info().Str("locale", target.Code).Int("added", added).Msg("Added missing keys")
	return LocaleResult{Locale: target.Code, Added: added}, nil
}

// appendixFor builds the trailing lines for the keys the target lacks, in
// master order, inserting a blank line plus the master's section marker
// whenever the section changes from the previous appended key.
func appendixFor(cfg *config.Config, master, target *stringsfile.File, locale string) []string {
	var out []string
	currentSection := ""
	first := true

	for _, e := range master.Entries {
		if target.HasKey(e.Key) {
			continue
		}

		if first || e.Section != currentSection {
			if e.Section != "" {
				out = append(out, "", e.Section)
			} else if first {
				out = append(out, "")
			}
			currentSection = e.Section
		}
		first = false

		out = append(out, stringsfile.RenderEntry(e.Key, valueFor(cfg, e, locale)))
	}
	return out
}

// valueFor picks the hand-authored translation for the key and locale when
// the lookup table has one, otherwise falls back to the master's value.
func valueFor(cfg *config.Config, e stringsfile.Entry, locale string) string {
	if v, ok := cfg.TranslationFor(e.Key, locale); ok {
		return v
	}
	return e.Value
}

// seedLocale writes a brand-new resource file carrying the master's entire
// key set and section layout.
func seedLocale(cfg *config.Config, master *stringsfile.File, target locales.Locale) error {
	if err := os.MkdirAll(filepath.Dir(target.Path), 0755); err != nil {
		return fmt.Errorf("create locale directory: %w", err)
	}

	lines := []string{
		"/*",
		fmt.Sprintf("  %s (%s)", cfg.ResourceFile, target.Code),
		"*/",
	}

	currentSection := ""
	for _, e := range master.Entries {
		if e.Section != currentSection {
			if e.Section != "" {
				lines = append(lines, "", e.Section)
			}
			currentSection = e.Section
		}
		lines = append(lines, stringsfile.RenderEntry(e.Key, valueFor(cfg, e, target.Code)))
	}

	if err := stringsfile.WriteAtomic(target.Path, lines); err != nil {
		return err
	}

	log.Info().Str("locale", target.Code).Int("keys", len(master.Entries)).Msg("Created resource file")
	return nil
}
