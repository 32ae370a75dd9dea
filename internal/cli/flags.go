package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/codinganovel/linediff/internal/config"
)

// similarityConfigured is the value of a bare --similarity.
const similarityConfigured = "configured"

// flags holds the command line options of the root command. Only flags set
// on the command line override the configuration file.
type flags struct {
	configPath       string
	format           string
	context          int
	noTrim           bool
	ignoreWhitespace bool
	ignoreCase       bool
	ignoreLines      string
	inline           string
	tabSize          int
	width            int
	color            string
	similarity       string
	labels           []string
	stats            bool
	brief            bool
	verbose          bool
}

func (f *flags) register(fs *pflag.FlagSet) {
	def := config.Default()
	fs.StringVar(&f.configPath, "config", "", "configuration `file` (default: linediff/config.toml in the user config directory)")
	fs.StringVarP(&f.format, "format", "f", def.Format, "output format: unified, context, unified-cli, inline-cli, side-by-side, html or ndiff")
	fs.IntVarP(&f.context, "context", "U", def.Context, "number of unchanged `lines` around each change")
	fs.BoolVar(&f.noTrim, "no-trim", false, "keep unchanged lines at both ends beyond the context")
	fs.BoolVarP(&f.ignoreWhitespace, "ignore-whitespace", "w", false, "ignore spaces and tabs when comparing lines")
	fs.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "ignore case differences")
	fs.StringVar(&f.ignoreLines, "ignore-lines", def.IgnoreLines, "ignore added or removed lines that are empty or blank: none, empty or blank")
	fs.StringVar(&f.inline, "inline", def.Inline, "marking of changes inside replaced lines: char, word, line or none")
	fs.IntVar(&f.tabSize, "tab-size", def.TabSize, "spaces per tab; 0 keeps tabs")
	fs.IntVar(&f.width, "width", def.Width, "column width of side-by-side output")
	fs.StringVar(&f.color, "color", def.Color, "colorize output: auto, always or never")
	fs.StringVar(&f.similarity, "similarity", "", "print the similarity ratio instead of the diff: default, fast or fastest; without a value the configured method is used")
	fs.Lookup("similarity").NoOptDefVal = similarityConfigured
	fs.StringArrayVarP(&f.labels, "label", "L", nil, "use `label` instead of the file name (repeat for the second file)")
	fs.BoolVar(&f.stats, "stats", false, "print change statistics instead of the diff")
	fs.BoolVarP(&f.brief, "brief", "q", false, "report only whether the files differ")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug output to stderr")
}

// load reads the configuration file. An explicit --config must exist; the
// default location may be missing.
func (f *flags) load() (config.Config, error) {
	if f.configPath != "" {
		return config.Load(f.configPath, true)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return config.Default(), nil
	}
	return config.Load(filepath.Join(dir, "linediff", "config.toml"), false)
}

// apply overrides cfg with the flags set on the command line.
func (f *flags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("format") {
		cfg.Format = f.format
	}
	if fs.Changed("context") {
		cfg.Context = f.context
	}
	if fs.Changed("no-trim") {
		cfg.TrimEqual = !f.noTrim
	}
	if fs.Changed("ignore-whitespace") {
		cfg.IgnoreWhitespace = f.ignoreWhitespace
	}
	if fs.Changed("ignore-case") {
		cfg.IgnoreCase = f.ignoreCase
	}
	if fs.Changed("ignore-lines") {
		cfg.IgnoreLines = f.ignoreLines
	}
	if fs.Changed("inline") {
		cfg.Inline = f.inline
	}
	if fs.Changed("tab-size") {
		cfg.TabSize = f.tabSize
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("color") {
		cfg.Color = f.color
	}
	if fs.Changed("similarity") && f.similarity != similarityConfigured {
		cfg.Similarity = f.similarity
	}
}
