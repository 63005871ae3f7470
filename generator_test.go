package verse

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verse-ds/verse/preset"
	"github.com/verse-ds/verse/tokens"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "styles")

	config := Config{
		OutputDir: dir,
		Formats:   []preset.Format{preset.FormatJSON, preset.FormatCSS},
		Content:   []string{"./web/**/*.templ"},
	}

	result, err := Generate(config)
	require.NoError(t, err)

	jsonPath := filepath.Join(dir, "verse-preset.json")
	cssPath := filepath.Join(dir, "verse-preset.css")
	assert.Equal(t, []string{jsonPath, cssPath}, result.FilesWritten)
	assert.Empty(t, result.FilesUnchanged)
	assert.Greater(t, result.TokensExported, len(tokens.Colors()))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var doc struct {
		Content []string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, []string{"./web/**/*.templ"}, doc.Content)

	css, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	want, err := preset.New().Marshal(preset.FormatCSS)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(css))

	// A second run leaves identical files alone.
	result, err = Generate(config)
	require.NoError(t, err)
	assert.Empty(t, result.FilesWritten)
	assert.Equal(t, []string{jsonPath, cssPath}, result.FilesUnchanged)
}

func TestGenerateDefaults(t *testing.T) {
	dir := t.TempDir()

	result, err := Generate(Config{OutputDir: dir})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, DefaultBasename+".json")}, result.FilesWritten)
	assert.Equal(t, countTokens(preset.New()), result.TokensExported)
}

func TestGenerateCheck(t *testing.T) {
	dir := t.TempDir()
	config := Config{
		OutputDir: dir,
		Basename:  "theme",
		Formats:   []preset.Format{preset.FormatYAML, preset.FormatTOML},
		Check:     true,
	}

	// Nothing generated yet: every file is stale and nothing is written.
	result, err := Generate(config)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStale))
	assert.Len(t, result.FilesStale, 2)
	assert.NoFileExists(t, filepath.Join(dir, "theme.yaml"))

	config.Check = false
	_, err = Generate(config)
	require.NoError(t, err)

	config.Check = true
	result, err = Generate(config)
	require.NoError(t, err)
	assert.Empty(t, result.FilesStale)
	assert.Len(t, result.FilesUnchanged, 2)

	// A hand edit makes the file stale again.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.toml"), []byte("edited = true\n"), 0o644))
	result, err = Generate(config)
	require.ErrorIs(t, err, ErrStale)
	assert.Equal(t, []string{filepath.Join(dir, "theme.toml")}, result.FilesStale)
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, err := Generate(Config{OutputDir: t.TempDir(), Formats: []preset.Format{"xml"}})
	require.Error(t, err)
}
