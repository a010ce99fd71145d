package stringsfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveDuplicateLines(t *testing.T) {
	lines := []string{
		"// MARK: - Section",
		`"x.y" = "1";`,
		`"other" = "o";`,
		"",
		`"x.y" = "2";`,
	}

	kept, removed := RemoveDuplicateLines(lines)

	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{
		"// MARK: - Section",
		`"x.y" = "1";`,
		`"other" = "o";`,
		"",
	}, kept)

	// Every key appears exactly once afterwards.
	f := Parse(kept)
	assert.Empty(t, f.Duplicates)
}

func TestRemoveDuplicateLinesIdempotent(t *testing.T) {
	lines := []string{
		`"a" = "1";`,
		`"a" = "2";`,
		`"b" = "3";`,
		`"a" = "4";`,
	}

	kept, removed := RemoveDuplicateLines(lines)
	assert.Equal(t, 2, removed)

	again, removed := RemoveDuplicateLines(kept)
	assert.Equal(t, 0, removed)
	assert.Equal(t, kept, again)
}

func TestRemoveDuplicateLinesPassThrough(t *testing.T) {
	lines := []string{
		`"a" = "1"`, // malformed: no semicolon, passes through even twice
		`"a" = "1"`,
		"// comment",
	}

	kept, removed := RemoveDuplicateLines(lines)
	assert.Equal(t, 0, removed)
	assert.Equal(t, lines, kept)
}

func TestRemoveKeyLines(t *testing.T) {
	lines := []string{
		`"tag.now" = "Now";`,
		"",
		`"tag.keep" = "Keep";`,
		`"tag.max_now_cards" = "Max";`,
		"",
		"// MARK: - End",
	}

	kept, removed := RemoveKeyLines(lines, []string{"tag.now", "tag.max_now_cards"})

	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{
		`"tag.keep" = "Keep";`,
		"// MARK: - End",
	}, kept)
}

func TestRemoveKeyLinesSuppressesSingleBlank(t *testing.T) {
	lines := []string{
		`"gone" = "x";`,
		"",
		"",
		`"stay" = "y";`,
	}

	kept, removed := RemoveKeyLines(lines, []string{"gone"})

	assert.Equal(t, 1, removed)
	// Only the one blank line directly after the removed entry goes.
	assert.Equal(t, []string{"", `"stay" = "y";`}, kept)
}

func TestRemoveKeyLinesIdempotent(t *testing.T) {
	lines := []string{
		`"gone" = "x";`,
		"",
		`"stay" = "y";`,
	}

	kept, removed := RemoveKeyLines(lines, []string{"gone"})
	assert.Equal(t, 1, removed)

	again, removed := RemoveKeyLines(kept, []string{"gone"})
	assert.Equal(t, 0, removed)
	assert.Equal(t, kept, again)
}

func TestRemoveKeyLinesSubstringIsQuoted(t *testing.T) {
	// Removal matches the quoted key, so "tag.no" must not take out
	// "tag.now" or values merely mentioning the bare text.
	lines := []string{
		`"tag.now" = "Now";`,
		`"other" = "tag.no is mentioned here";`,
	}

	kept, removed := RemoveKeyLines(lines, []string{"tag.no"})
	assert.Equal(t, 0, removed)
	assert.Equal(t, lines, kept)
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Localizable.strings")

	require.NoError(t, os.WriteFile(path, []byte("old content\n"), 0644))

	lines := []string{`"a" = "1";`, "", `"b" = "2";`}
	require.NoError(t, WriteAtomic(path, lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\"a\" = \"1\";\n\n\"b\" = \"2\";\n", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteAtomicThenParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Localizable.strings")
	lines := []string{
		"// MARK: - General",
		`"greeting" = "Hello";`,
	}
	require.NoError(t, WriteAtomic(path, lines))

	f, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Equal(t, lines, f.RawLines)
	require.Len(t, f.Entries, 1)
	assert.Equal(t, "Hello", f.Entries[0].Value)
}
