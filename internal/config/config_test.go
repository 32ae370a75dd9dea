package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codinganovel/linediff/difflib"
	"github.com/codinganovel/linediff/render"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatUnified, cfg.Format)
	assert.Equal(t, 3, cfg.Context)
	assert.True(t, cfg.TrimEqual)

	ro, err := cfg.RenderOptions(false)
	require.NoError(t, err)
	assert.Equal(t, render.DefaultOptions(), ro)
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
format = "side-by-side"
context = 1
ignore_case = true
ignore_lines = "blank"
inline = "word"
width = 40
delete_markers = ["[-", "-]"]
`))
	require.NoError(t, err)
	assert.Equal(t, FormatSideBySide, cfg.Format)
	assert.Equal(t, 1, cfg.Context)
	assert.True(t, cfg.IgnoreCase)
	assert.Equal(t, [2]string{"[-", "-]"}, cfg.DeleteMarkers)
	// Keys not in the file keep their defaults.
	assert.True(t, cfg.TrimEqual)
	assert.Equal(t, 4, cfg.TabSize)

	ro, err := cfg.RenderOptions(true)
	require.NoError(t, err)
	assert.Equal(t, difflib.InlineWord, ro.Inline)
	assert.Equal(t, 40, ro.Width)
	assert.True(t, ro.Color)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown key", `colour = "never"`},
		{"bad format", `format = "xml"`},
		{"bad color", `color = "sometimes"`},
		{"negative context", `context = -1`},
		{"negative tab size", `tab_size = -2`},
		{"zero width", `width = 0`},
		{"bad ignore lines", `ignore_lines = "spaces"`},
		{"bad inline", `inline = "sentence"`},
		{"bad similarity", `similarity = "slow"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, difflib.ErrInvalidArgument)
		})
	}

	_, err := Decode(strings.NewReader(`context = "three"`))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.toml")

	cfg, err := Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(missing, true)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "linediff.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"html\"\n"), 0o644))
	cfg, err = Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, cfg.Format)

	require.NoError(t, os.WriteFile(path, []byte("width = -1\n"), 0o644))
	_, err = Load(path, true)
	assert.ErrorIs(t, err, difflib.ErrInvalidArgument)
	assert.Contains(t, err.Error(), path)
}

func TestDiffOptions(t *testing.T) {
	cfg := Default()
	cfg.IgnoreLines = "empty"
	cfg.Context = 0
	opts, err := cfg.DiffOptions()
	require.NoError(t, err)

	d, err := difflib.NewDiff([]string{"a", "b"}, []string{"a", "", "b"}, opts...)
	require.NoError(t, err)
	assert.True(t, d.IsIdentical())
	assert.Equal(t, 0, d.Context())
}

func TestSimilarityMethod(t *testing.T) {
	cfg := Default()
	cfg.Similarity = "fastest"
	m, err := cfg.SimilarityMethod()
	require.NoError(t, err)
	assert.Equal(t, difflib.SimilarityFastest, m)
}

func TestUseColor(t *testing.T) {
	tty := func() bool { return true }
	pipe := func() bool { return false }

	cfg := Default()
	assert.True(t, cfg.UseColor(tty))
	assert.False(t, cfg.UseColor(pipe))
	assert.False(t, cfg.UseColor(nil))

	cfg.Color = ColorAlways
	assert.True(t, cfg.UseColor(pipe))
	cfg.Color = ColorNever
	assert.False(t, cfg.UseColor(tty))
}
