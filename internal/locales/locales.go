package locales

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stringskit/internal/config"

	"github.com/rs/zerolog/log"
)

// Locale is one translation target resolved to its resource file path.
type Locale struct {
	Code string
	Path string
	// Exists is false when the resource file is missing on disk; the
	// locale is then skipped by mutating operations and reported as
	// "not found" by check.
	Exists bool
}

// Path returns the resource file path for a locale code.
func Path(cfg *config.Config, code string) string {
	return filepath.Join(cfg.BaseDir, code+cfg.LocaleDirSuffix, cfg.ResourceFile)
}

// Master resolves the master locale.
func Master(cfg *config.Config) Locale {
	return resolve(cfg, cfg.MasterLocale)
}

// Targets resolves every configured non-master locale, in config order.
func Targets(cfg *config.Config) []Locale {
	targets := make([]Locale, 0, len(cfg.Locales))
	for _, code := range cfg.Locales {
		targets = append(targets, resolve(cfg, code))
	}
	return targets
}

// Unlisted scans the base directory for locale directories present on disk
// but absent from the configuration, so check can surface them.
func Unlisted(cfg *config.Config) ([]string, error) {
	dirEntries, err := os.ReadDir(cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("read base directory: %w", err)
	}

	known := make(map[string]struct{}, len(cfg.Locales)+1)
	for _, code := range cfg.AllLocales() {
		known[code] = struct{}{}
	}

	var extra []string
	for _, de := range dirEntries {
		if !de.IsDir() || !strings.HasSuffix(de.Name(), cfg.LocaleDirSuffix) {
			continue
		}
		code := strings.TrimSuffix(de.Name(), cfg.LocaleDirSuffix)
		if _, ok := known[code]; !ok {
			extra = append(extra, code)
		}
	}
	return extra, nil
}

func resolve(cfg *config.Config, code string) Locale {
	path := Path(cfg, code)
	_, err := os.Stat(path)
	if err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("locale", code).Msg("Cannot stat resource file")
	}
	return Locale{Code: code, Path: path, Exists: err == nil}
}
