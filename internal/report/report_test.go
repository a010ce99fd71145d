package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"stringskit/internal/audit"
	"stringskit/internal/config"
	"stringskit/internal/stringsfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	cfg := config.Defaults()
	master := stringsfile.Parse([]string{
		`"action.cancel" = "Cancel";`,
	})

	findings := []audit.Finding{
		{File: "Views/A.swift", Line: 10, Kind: "Text", Literal: "Hello World"},
		{File: "Views/A.swift", Line: 22, Kind: "Button label", Literal: "Cancel"},
		{File: "Views/B.swift", Line: 3, Kind: "Text", Literal: "Hello World"},
	}

	r := Build(cfg, findings, master)

	assert.Equal(t, 3, r.TotalFindings)
	assert.Equal(t, 2, r.UniqueLiterals)
	assert.Equal(t, 2, r.FilesAffected)
	require.Len(t, r.Findings, 3)
	require.Len(t, r.Suggestions, 2)

	// Suggestions are sorted by literal.
	assert.Equal(t, "Cancel", r.Suggestions[0].Literal)
	assert.Equal(t, "ui.cancel", r.Suggestions[0].SuggestedKey)
	assert.True(t, r.Suggestions[0].AlreadyLocalized)

	assert.Equal(t, "Hello World", r.Suggestions[1].Literal)
	assert.Equal(t, "ui.hello_world", r.Suggestions[1].SuggestedKey)
	assert.False(t, r.Suggestions[1].AlreadyLocalized)
}

func TestBuildEmpty(t *testing.T) {
	cfg := config.Defaults()
	master := stringsfile.Parse(nil)

	r := Build(cfg, nil, master)

	assert.Equal(t, 0, r.TotalFindings)
	assert.Equal(t, 0, r.UniqueLiterals)
	assert.Equal(t, 0, r.FilesAffected)
}

func TestWriteJSON(t *testing.T) {
	cfg := config.Defaults()
	master := stringsfile.Parse(nil)
	r := Build(cfg, []audit.Finding{
		{File: "V.swift", Line: 1, Kind: "Text", Literal: "Hello World"},
	}, master)

	path := filepath.Join(t.TempDir(), "audit.json")
	require.NoError(t, r.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.TotalFindings)
	require.Len(t, decoded.Suggestions, 1)
	assert.Equal(t, "ui.hello_world", decoded.Suggestions[0].SuggestedKey)
}
