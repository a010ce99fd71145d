package cleaner

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
	cfg.Locales = []string{"fr"}
	return cfg
}

func writeLocale(t *testing.T, cfg *config.Config, code string, lines []string) {
	t.Helper()
	path := locales.Path(cfg, code)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, stringsfile.WriteAtomic(path, lines))
}

func rawLines(t *testing.T, cfg *config.Config, code string) []string {
	t.Helper()
	f, err := stringsfile.ParseFile(locales.Path(cfg, code))
	require.NoError(t, err)
	return f.RawLines
}

func TestRemoveDuplicatesAcrossLocales(t *testing.T) {
	cfg := testConfig(t)
	writeLocale(t, cfg, "en", []string{
		`"x.y" = "1";`,
		`"x.y" = "2";`,
	})
	writeLocale(t, cfg, "fr", []string{
		`"x.y" = "un";`,
	})

	results, err := RemoveDuplicates(cfg)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "en", results[0].Locale)
	assert.Equal(t, 1, results[0].Removed)
	assert.Equal(t, "fr", results[1].Locale)
	assert.Equal(t, 0, results[1].Removed)

	assert.Equal(t, []string{`"x.y" = "1";`}, rawLines(t, cfg, "en"))
}

func TestRemoveDuplicatesIdempotent(t *testing.T) {
	cfg := testConfig(t)
	writeLocale(t, cfg, "en", []string{
		`"a" = "1";`,
		`"a" = "2";`,
	})
	writeLocale(t, cfg, "fr", []string{`"a" = "un";`})

	results, err := RemoveDuplicates(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, results[0].Removed)

	results, err = RemoveDuplicates(cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, results[0].Removed)
	assert.Equal(t, 0, results[1].Removed)
}

func TestRemoveDuplicatesSkipsMissingLocale(t *testing.T) {
	cfg := testConfig(t)
	writeLocale(t, cfg, "en", []string{`"a" = "1";`})
	// fr does not exist on disk.

	results, err := RemoveDuplicates(cfg)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Skipped)
	assert.True(t, results[1].Skipped)
}

func TestRemoveUnused(t *testing.T) {
	cfg := testConfig(t)
	lines := []string{
		`"tag.now" = "Now";`,
		"",
		`"tag.keep" = "Keep";`,
	}
	writeLocale(t, cfg, "en", lines)
	writeLocale(t, cfg, "fr", lines)

	results, err := RemoveUnused(cfg, []string{"tag.now"})
	require.NoError(t, err)

	for _, r := range results {
		assert.Equal(t, 1, r.Removed)
	}
	assert.Equal(t, []string{`"tag.keep" = "Keep";`}, rawLines(t, cfg, "en"))
	assert.Equal(t, []string{`"tag.keep" = "Keep";`}, rawLines(t, cfg, "fr"))
}
