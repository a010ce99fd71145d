package stats

import (
	"os"
	"path/filepath"
	"testing"

	"stringskit/internal/config"
	"stringskit/internal/locales"
	"stringskit/internal/stringsfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.BaseDir = t.TempDir()
	cfg.Locales = []string{"fr", "de"}
	return cfg
}

func writeLocale(t *testing.T, cfg *config.Config, code string, lines []string) {
	t.Helper()
	path := locales.Path(cfg, code)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, stringsfile.WriteAtomic(path, lines))
}

func TestCollect(t *testing.T) {
	cfg := testConfig(t)
	writeLocale(t, cfg, "en", []string{
		`"a" = "Hello World";`,
		`"b" = "Cancel";`,
	})
	writeLocale(t, cfg, "fr", []string{
		`"a" = "Bonjour le monde";`,
		`"b" = "Cancel";`, // fallback still in English
	})
	// de missing on disk.

	all, err := Collect(cfg)
	require.NoError(t, err)
	require.Len(t, all, 3)

	en := all[0]
	assert.Equal(t, "en", en.Locale)
	assert.Equal(t, 2, en.Keys)
	assert.Equal(t, 3, en.Words)
	assert.Equal(t, 0, en.Fallbacks)

	fr := all[1]
	assert.Equal(t, "fr", fr.Locale)
	assert.Equal(t, 2, fr.Keys)
	assert.Equal(t, 4, fr.Words)
	assert.Equal(t, 1, fr.Fallbacks)

	de := all[2]
	assert.Equal(t, "de", de.Locale)
	assert.True(t, de.NotFound)
}

func TestCollectMissingMasterFails(t *testing.T) {
	cfg := testConfig(t)

	_, err := Collect(cfg)
	assert.Error(t, err)
}
