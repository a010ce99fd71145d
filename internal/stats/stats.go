// Package stats computes per-locale key and word counts.
package stats

import (
	"fmt"

	"stringskit/internal/config"
	"stringskit/internal/locales"
	"stringskit/internal/stringsfile"
	"stringskit/internal/textutil"

	"github.com/rs/zerolog/log"
)

// LocaleStats summarizes one locale's resource file.
type LocaleStats struct {
	Locale   string
	NotFound bool
	// Keys is the number of distinct keys.
	Keys int
	// Words is the total word count across values.
	Words int
	// Fallbacks counts values byte-identical to the master's value for the
	// same key, i.e. keys still carrying the English fallback. Zero for
	// the master itself.
	Fallbacks int
}

// Collect gathers stats for the master followed by every target locale.
// Missing locales are reported, not fatal.
func Collect(cfg *config.Config) ([]LocaleStats, error) {
	master := locales.Master(cfg)
	masterFile, err := stringsfile.ParseFile(master.Path)
	if err != nil {
		return nil, fmt.Errorf("parse master locale: %w", err)
	}

	out := []LocaleStats{summarize(cfg.MasterLocale, masterFile, nil)}

	for _, target := range locales.Targets(cfg) {
		if !target.Exists {
			log.Warn().Str("locale", target.Code).Msg("Resource file not found")
			out = append(out, LocaleStats{Locale: target.Code, NotFound: true})
			continue
		}
		f, err := stringsfile.ParseFile(target.Path)
		if err != nil {
			log.Error().Err(err).Str("locale", target.Code).Msg("Parse failed")
			out = append(out, LocaleStats{Locale: target.Code, NotFound: true})
			continue
		}
		out = append(out, summarize(target.Code, f, masterFile))
	}
	return out, nil
}

func summarize(code string, f *stringsfile.File, master *stringsfile.File) LocaleStats {
	s := LocaleStats{Locale: code, Keys: len(f.Entries)}
	for _, e := range f.Entries {
		s.Words += textutil.WordCount(e.Value)
		if master != nil {
			if m, ok := master.Lookup(e.Key); ok && m.Value == e.Value {
				s.Fallbacks++
			}
		}
	}
	return s
}
