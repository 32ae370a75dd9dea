// Package config reads the linediff configuration file.
//
// The file is TOML. Every key is optional; missing keys keep the values of
// Default. Unknown keys are rejected so that typos do not pass silently.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/codinganovel/linediff/difflib"
	"github.com/codinganovel/linediff/render"
)

// Output formats.
const (
	FormatUnified    = "unified"
	FormatContext    = "context"
	FormatUnifiedCLI = "unified-cli"
	FormatInlineCLI  = "inline-cli"
	FormatSideBySide = "side-by-side"
	FormatHTML       = "html"
	FormatNDiff      = "ndiff"
)

// Formats lists the accepted values of Config.Format.
var Formats = []string{
	FormatUnified, FormatContext, FormatUnifiedCLI, FormatInlineCLI,
	FormatSideBySide, FormatHTML, FormatNDiff,
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the content of a configuration file.
type Config struct {
	Format           string `toml:"format"`
	Context          int    `toml:"context"`
	TrimEqual        bool   `toml:"trim_equal"`
	IgnoreWhitespace bool   `toml:"ignore_whitespace"`
	IgnoreCase       bool   `toml:"ignore_case"`
	IgnoreLines      string `toml:"ignore_lines"`
	Inline           string `toml:"inline"`
	Similarity       string `toml:"similarity"`
	TabSize          int    `toml:"tab_size"`
	Width            int    `toml:"width"`
	TitleA           string `toml:"title_a"`
	TitleB           string `toml:"title_b"`
	Color            string `toml:"color"`

	DeleteMarkers   [2]string `toml:"delete_markers"`
	InsertMarkers   [2]string `toml:"insert_markers"`
	EqualityMarkers [2]string `toml:"equality_markers"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	ro := render.DefaultOptions()
	return Config{
		Format:      FormatUnified,
		Context:     difflib.DefaultContext,
		TrimEqual:   true,
		IgnoreLines: difflib.IgnoreLinesNone.String(),
		Inline:      ro.Inline.String(),
		Similarity:  difflib.SimilarityDefault.String(),
		TabSize:     ro.TabSize,
		Width:       ro.Width,
		TitleA:      ro.TitleA,
		TitleB:      ro.TitleB,
		Color:       ColorAuto,
	}
}

// Load reads the file at path on top of Default. A missing file is not an
// error unless required is set.
func Load(path string, required bool) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return Default(), nil
		}
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		var missing *toml.StrictMissingError
		if errors.As(err, &missing) {
			return Config{}, fmt.Errorf("%w: %s", difflib.ErrInvalidArgument, missing.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every enumerated and numeric key.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return invalid("format", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return invalid("color", c.Color)
	}
	if c.Context < 0 {
		return invalid("context", c.Context)
	}
	if c.TabSize < 0 {
		return invalid("tab_size", c.TabSize)
	}
	if c.Width < 1 {
		return invalid("width", c.Width)
	}
	if _, err := difflib.ParseIgnoreLines(c.IgnoreLines); err != nil {
		return fmt.Errorf("ignore_lines: %w", err)
	}
	if _, err := difflib.ParseInlineLevel(c.Inline); err != nil {
		return fmt.Errorf("inline: %w", err)
	}
	if _, err := difflib.ParseSimilarityMethod(c.Similarity); err != nil {
		return fmt.Errorf("similarity: %w", err)
	}
	return nil
}

func invalid(key string, value any) error {
	return fmt.Errorf("%w: %s = %v", difflib.ErrInvalidArgument, key, value)
}

// DiffOptions returns the comparison options.
func (c Config) DiffOptions() ([]difflib.Option, error) {
	mode, err := difflib.ParseIgnoreLines(c.IgnoreLines)
	if err != nil {
		return nil, err
	}
	return []difflib.Option{
		difflib.WithContext(c.Context),
		difflib.WithTrimEqual(c.TrimEqual),
		difflib.WithIgnoreWhitespace(c.IgnoreWhitespace),
		difflib.WithIgnoreCase(c.IgnoreCase),
		difflib.WithIgnoreLines(mode),
	}, nil
}

// RenderOptions returns the renderer options. color is the resolved color
// mode; see UseColor.
func (c Config) RenderOptions(color bool) (render.Options, error) {
	level, err := difflib.ParseInlineLevel(c.Inline)
	if err != nil {
		return render.Options{}, err
	}
	return render.Options{
		Inline:          level,
		TabSize:         c.TabSize,
		TitleA:          c.TitleA,
		TitleB:          c.TitleB,
		DeleteMarkers:   c.DeleteMarkers,
		InsertMarkers:   c.InsertMarkers,
		EqualityMarkers: c.EqualityMarkers,
		Color:           color,
		Width:           c.Width,
	}, nil
}

// SimilarityMethod returns the parsed similarity method.
func (c Config) SimilarityMethod() (difflib.SimilarityMethod, error) {
	return difflib.ParseSimilarityMethod(c.Similarity)
}

// UseColor resolves the color mode. isTerminal is consulted for
// ColorAuto only.
func (c Config) UseColor(isTerminal func() bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isTerminal != nil && isTerminal()
}
