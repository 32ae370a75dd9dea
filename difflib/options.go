package difflib

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultContext is the number of equal elements kept around each change.
const DefaultContext = 3

// IgnoreLines selects which gaps are reported as TagIgnore instead of an
// insert or delete.
type IgnoreLines int

const (
	// IgnoreLinesNone reports every gap.
	IgnoreLinesNone IgnoreLines = iota
	// IgnoreLinesEmpty ignores gaps made only of empty elements.
	IgnoreLinesEmpty
	// IgnoreLinesBlank ignores gaps made only of whitespace elements.
	IgnoreLinesBlank
)

// String returns a string representation of the IgnoreLines mode.
func (l IgnoreLines) String() string {
	switch l {
	case IgnoreLinesNone:
		return "none"
	case IgnoreLinesEmpty:
		return "empty"
	case IgnoreLinesBlank:
		return "blank"
	default:
		return fmt.Sprintf("IgnoreLines(%d)", int(l))
	}
}

// ParseIgnoreLines parses the names returned by IgnoreLines.String.
func ParseIgnoreLines(s string) (IgnoreLines, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return IgnoreLinesNone, nil
	case "empty":
		return IgnoreLinesEmpty, nil
	case "blank":
		return IgnoreLinesBlank, nil
	}
	return IgnoreLinesNone, fmt.Errorf("%w: unknown ignore-lines mode %q", ErrInvalidArgument, s)
}

// options holds the resolved comparison configuration. It is built once per
// matcher and never merged again.
type options struct {
	context          int
	trimEqual        bool
	ignoreWhitespace bool
	ignoreCase       bool
	ignoreLines      IgnoreLines
	isJunk           func(string) bool
	logger           *slog.Logger
}

func defaultOptions() options {
	return options{
		context:   DefaultContext,
		trimEqual: true,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// Option configures a SequenceMatcher or a Diff.
type Option func(*options)

// WithContext sets how many equal elements surround each change.
// Default: 3. Negative values are rejected by the constructors.
func WithContext(n int) Option {
	return func(o *options) {
		o.context = n
	}
}

// WithTrimEqual controls whether leading and trailing runs of equal elements
// are cut down to the context size. Default: true.
func WithTrimEqual(enabled bool) Option {
	return func(o *options) {
		o.trimEqual = enabled
	}
}

// WithIgnoreWhitespace makes comparisons ignore spaces and tabs.
func WithIgnoreWhitespace(enabled bool) Option {
	return func(o *options) {
		o.ignoreWhitespace = enabled
	}
}

// WithIgnoreCase makes comparisons case-insensitive (Unicode case folding).
func WithIgnoreCase(enabled bool) Option {
	return func(o *options) {
		o.ignoreCase = enabled
	}
}

// WithIgnoreLines reports gaps of empty or blank elements as TagIgnore.
func WithIgnoreLines(mode IgnoreLines) Option {
	return func(o *options) {
		o.ignoreLines = mode
	}
}

// WithJunk sets a predicate deciding which elements of the second sequence
// are junk. Junk never seeds a match but may extend one. The predicate sees
// the comparison form of an element and is called once per unique value.
func WithJunk(isJunk func(string) bool) Option {
	return func(o *options) {
		o.isJunk = isJunk
	}
}

// WithLogger sets the logger used for debug output. Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func resolveOptions(opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := o.validate(); err != nil {
		return options{}, err
	}
	return o, nil
}

func (o options) validate() error {
	if o.context < 0 {
		return fmt.Errorf("%w: context cannot be negative, got %d", ErrInvalidArgument, o.context)
	}
	switch o.ignoreLines {
	case IgnoreLinesNone, IgnoreLinesEmpty, IgnoreLinesBlank:
	default:
		return fmt.Errorf("%w: unknown ignore-lines mode %d", ErrInvalidArgument, int(o.ignoreLines))
	}
	return nil
}

// normalizes reports whether comparison keys differ from the raw elements.
func (o options) normalizes() bool {
	return o.ignoreWhitespace || o.ignoreCase
}

// keys returns the comparison form of seq. When no normalization applies the
// input slice itself is returned.
func (o options) keys(seq []string) []string {
	if !o.normalizes() {
		return seq
	}
	var fold cases.Caser
	if o.ignoreCase {
		fold = cases.Fold()
	}
	out := make([]string, len(seq))
	for i, s := range seq {
		if o.ignoreWhitespace {
			s = stripSpaceTab(s)
		}
		if o.ignoreCase {
			s = fold.String(s)
		}
		out[i] = s
	}
	return out
}

func stripSpaceTab(s string) string {
	if !strings.ContainsAny(s, " \t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != ' ' && c != '\t' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// isIgnorable reports whether every element of seq is empty (or blank, for
// IgnoreLinesBlank). A trailing line terminator does not count as content.
func (o options) isIgnorable(seq []string) bool {
	for _, s := range seq {
		switch o.ignoreLines {
		case IgnoreLinesEmpty:
			if strings.TrimRight(s, "\r\n") != "" {
				return false
			}
		case IgnoreLinesBlank:
			if strings.TrimSpace(s) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}
