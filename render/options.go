package render

import "github.com/codinganovel/linediff/difflib"

// Options configures the renderers. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// Inline selects how equal-length replacements are marked inside lines.
	Inline difflib.InlineLevel
	// TabSize is the number of spaces a tab expands to. 0 keeps tabs.
	TabSize int
	// TitleA and TitleB head the two columns of side-by-side output.
	TitleA string
	TitleB string
	// DeleteMarkers, InsertMarkers and EqualityMarkers are the opening and
	// closing markers of the CLI renderers.
	DeleteMarkers   [2]string
	InsertMarkers   [2]string
	EqualityMarkers [2]string
	// Color enables ANSI colors in the CLI renderers.
	Color bool
	// Width is the width of one side-by-side column, in terminal cells.
	Width int
}

// DefaultOptions returns the renderer defaults.
func DefaultOptions() Options {
	return Options{
		Inline:  difflib.InlineChar,
		TabSize: 4,
		TitleA:  "Old Version",
		TitleB:  "New Version",
		Width:   60,
	}
}

// markerWidth is the width of the widest line marker, used to align the
// CLI gutters.
func (o Options) markerWidth() int {
	return max(len(o.InsertMarkers[0]), len(o.DeleteMarkers[0]),
		len(o.EqualityMarkers[0]), len(o.EqualityMarkers[1]))
}
