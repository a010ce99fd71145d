// Package cleaner removes duplicate and explicitly-deprecated keys from
// locale resource files.
package cleaner

import (
	"stringskit/internal/config"
	"stringskit/internal/locales"
	"stringskit/internal/stringsfile"

	"github.com/rs/zerolog/log"
)

// LocaleResult is the outcome of cleaning one locale.
type LocaleResult struct {
	Locale  string
	Removed int
	Skipped bool
}

// RemoveDuplicates drops, in every locale (master included), each entry line
// whose key appeared earlier in the same file. First occurrence wins. A
// second run removes nothing.
func RemoveDuplicates(cfg *config.Config) ([]LocaleResult, error) {
	return eachLocale(cfg, func(f *stringsfile.File) ([]string, int) {
		return stringsfile.RemoveDuplicateLines(f.RawLines)
	})
}

// RemoveUnused drops every line mentioning one of the given keys from every
// locale, suppressing the single blank line left behind by a removed entry.
func RemoveUnused(cfg *config.Config, keys []string) ([]LocaleResult, error) {
	return eachLocale(cfg, func(f *stringsfile.File) ([]string, int) {
		return stringsfile.RemoveKeyLines(f.RawLines, keys)
	})
}

func eachLocale(cfg *config.Config, rewrite func(*stringsfile.File) ([]string, int)) ([]LocaleResult, error) {
	var results []LocaleResult

	for _, code := range cfg.AllLocales() {
		path := locales.Path(cfg, code)

		f, err := stringsfile.ParseFile(path)
		if err != nil {
			log.Warn().Err(err).Str("locale", code).Msg("Skipping locale")
			results = append(results, LocaleResult{Locale: code, Skipped: true})
			continue
		}

		kept, removed := rewrite(f)
		if removed == 0 {
			results = append(results, LocaleResult{Locale: code})
			continue
		}

		if err := stringsfile.WriteAtomic(path, kept); err != nil {
			log.Error().Err(err).Str("locale", code).Msg("Write failed")
			results = append(results, LocaleResult{Locale: code, Skipped: true})
			continue
		}

		log.Info().Str("locale", code).Int("removed", removed).Msg("Removed lines")
		results = append(results, LocaleResult{Locale: code, Removed: removed})
	}

	return results, nil
}
