package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// AuditRule pairs a regular expression with the UI element kind it detects.
// The expression's first capture group must be the literal string argument.
type AuditRule struct {
	Pattern string `yaml:"pattern"`
	Kind    string `yaml:"kind"`
}

// AuditConfig holds the swappable tables driving the hardcoded-string scan.
// The defaults target SwiftUI call syntax; projects on another UI framework
// replace them wholesale via the config file.
type AuditConfig struct {
	// SourceExts are the file extensions scanned.
	SourceExts []string `yaml:"source_exts"`
	// ExcludePathSubstrings skips files whose path contains any of these.
	ExcludePathSubstrings []string `yaml:"exclude_path_substrings"`
	// LocalizedCall marks a line as already localized when present.
	LocalizedCall string `yaml:"localized_call"`
	// Rules is the (pattern, kind) match table.
	Rules []AuditRule `yaml:"rules"`
	// SkipPatterns are regular expressions that disqualify a whole line.
	SkipPatterns []string `yaml:"skip_patterns"`
	// AllowShort lists literals exempt from the minimum-length filter.
	AllowShort []string `yaml:"allow_short"`
	// SlugPrefix is prepended to suggested keys in the findings report.
	SlugPrefix string `yaml:"slug_prefix"`
	// SlugMaxLen bounds the suggested key slug length.
	SlugMaxLen int `yaml:"slug_max_len"`
}

// Config carries everything the operations need; nothing reads process-wide
// state beyond Load.
type Config struct {
	// BaseDir contains one <code><suffix> directory per locale.
	BaseDir string `yaml:"base_dir"`
	// ResourceFile is the per-locale file name.
	ResourceFile string `yaml:"resource_file"`
	// LocaleDirSuffix is appended to the locale code to form the directory
	// name, ".lproj" by convention.
	LocaleDirSuffix string `yaml:"locale_dir_suffix"`
	// MasterLocale defines the authoritative key set and ordering.
	MasterLocale string `yaml:"master_locale"`
	// Locales are the translation targets, master excluded.
	Locales []string `yaml:"locales"`
	// Translations maps key → locale → hand-authored value, consulted by
	// sync before falling back to the master value.
	Translations map[string]map[string]string `yaml:"translations"`
	// EnglishIndicators are phrases whose presence in a non-master value
	// flags it as possibly untranslated.
	EnglishIndicators []string `yaml:"english_indicators"`
	// WorkerCount bounds concurrency for read-only scans.
	WorkerCount int `yaml:"-"`

	Audit AuditConfig `yaml:"audit"`
}

// Load builds the configuration from defaults, the environment, and an
// optional YAML file (STRINGSKIT_CONFIG or the --config flag value).
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := Defaults()
	cfg.BaseDir = getEnv("STRINGSKIT_BASE_DIR", cfg.BaseDir)
	cfg.WorkerCount = getEnvInt("STRINGSKIT_WORKER_COUNT", 8)

	if configPath == "" {
		configPath = os.Getenv("STRINGSKIT_CONFIG")
	}
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.validateLocales()
	return cfg, nil
}

// validateLocales warns about locale codes that are not well-formed BCP 47
// tags. A bad tag is kept; the directory may still exist.
func (c *Config) validateLocales() {
	for _, code := range append([]string{c.MasterLocale}, c.Locales...) {
		if _, err := language.Parse(code); err != nil {
			log.Warn().Str("locale", code).Msg("Locale code is not a valid language tag")
		}
	}
}

// AllLocales returns the master locale followed by the targets.
func (c *Config) AllLocales() []string {
	return append([]string{c.MasterLocale}, c.Locales...)
}

// TranslationFor returns the hand-authored translation for a key and locale,
// if the lookup table has one.
func (c *Config) TranslationFor(key, locale string) (string, bool) {
	byLocale, ok := c.Translations[key]
	if !ok {
		return "", false
	}
	v, ok := byLocale[locale]
	return v, ok
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
