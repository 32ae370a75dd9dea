package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/codinganovel/linediff/difflib"
)

// ANSI colors of the terminal renderers.
const (
	colorHeader = "5"  // purple
	colorEqual  = "8"  // grey
	colorDelete = "9"  // light red
	colorInsert = "10" // light green
	colorBlack  = "0"
	colorRed    = "1"
	colorGreen  = "2"
)

// palette colors strings for a terminal, or leaves them as they are.
type palette struct {
	profile termenv.Profile
}

func newPalette(color bool) palette {
	if color {
		return palette{profile: termenv.ANSI}
	}
	return palette{profile: termenv.Ascii}
}

func (p palette) fg(s, color string) string {
	if p.profile == termenv.Ascii || s == "" {
		return s
	}
	return p.profile.String(s).Foreground(p.profile.Color(color)).String()
}

func (p palette) fgBg(s, fg, bg string) string {
	if p.profile == termenv.Ascii || s == "" {
		return s
	}
	return p.profile.String(s).
		Foreground(p.profile.Color(fg)).
		Background(p.profile.Color(bg)).
		String()
}

// UnifiedCLI renders a unified diff with colored hunk headers and lines.
// Without Color it prints plain unified hunks and no file header.
type UnifiedCLI struct {
	Options Options
}

// Render implements Renderer.
func (u UnifiedCLI) Render(w io.Writer, d *difflib.Diff) error {
	return Write(w, d, u, difflib.InlineNone)
}

func (u UnifiedCLI) colors() palette { return newPalette(u.Options.Color) }

func (u UnifiedCLI) lines(prefix string, lines []Line, color string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(u.colors().fg(prefix+expandTabs(l.Text, u.Options.TabSize), color))
		b.WriteByte('\n')
	}
	return b.String()
}

func (u UnifiedCLI) DiffHeader() string { return "" }

func (u UnifiedCLI) BlockHeader(g Group) string {
	first, last := g.Blocks[0], g.Blocks[len(g.Blocks)-1]
	header := fmt.Sprintf("@@ -%s +%s @@",
		formatRangeUnified(first.Base.Offset, last.Base.Offset+len(last.Base.Lines)),
		formatRangeUnified(first.Changed.Offset, last.Changed.Offset+len(last.Changed.Lines)))
	return u.colors().fg(header, colorHeader) + "\n"
}

func (u UnifiedCLI) Skipped(difflib.OpCode) string { return "" }

func (u UnifiedCLI) Equal(b Block) string { return u.lines(" ", b.Base.Lines, colorEqual) }

func (u UnifiedCLI) Insert(b Block) string { return u.lines("+", b.Changed.Lines, colorInsert) }

func (u UnifiedCLI) Delete(b Block) string { return u.lines("-", b.Base.Lines, colorDelete) }

func (u UnifiedCLI) Replace(b Block) string { return u.Delete(b) + u.Insert(b) }

func (u UnifiedCLI) BlockFooter(Group) string { return "" }

func (u UnifiedCLI) DiffFooter() string { return "" }

// InlineCLI renders each line once with a marker gutter. Replaced lines
// that pair up are merged into one line holding both the deleted and the
// inserted text, wrapped in the configured markers.
type InlineCLI struct {
	Options Options
}

// Render implements Renderer.
func (r InlineCLI) Render(w io.Writer, d *difflib.Diff) error {
	return Write(w, d, r, r.Options.Inline)
}

func (r InlineCLI) gutter(marker string) string {
	return marker + strings.Repeat(" ", r.Options.markerWidth()-len(marker)) + "|"
}

func (r InlineCLI) DiffHeader() string { return "" }

func (r InlineCLI) BlockHeader(Group) string { return "" }

func (r InlineCLI) Skipped(difflib.OpCode) string { return "...\n" }

func (r InlineCLI) Equal(b Block) string {
	var out strings.Builder
	for _, l := range b.Base.Lines {
		out.WriteString(r.gutter(r.Options.EqualityMarkers[0]))
		out.WriteString(expandTabs(l.Text, r.Options.TabSize))
		out.WriteByte('\n')
	}
	return out.String()
}

func (r InlineCLI) Insert(b Block) string {
	c := newPalette(r.Options.Color)
	var out strings.Builder
	for _, l := range b.Changed.Lines {
		out.WriteString(r.gutter(r.Options.InsertMarkers[0]))
		out.WriteString(c.fgBg(expandTabs(l.Text, r.Options.TabSize), colorBlack, colorGreen))
		out.WriteByte('\n')
	}
	return out.String()
}

func (r InlineCLI) Delete(b Block) string {
	c := newPalette(r.Options.Color)
	var out strings.Builder
	for _, l := range b.Base.Lines {
		out.WriteString(r.gutter(r.Options.DeleteMarkers[0]))
		out.WriteString(c.fgBg(expandTabs(l.Text, r.Options.TabSize), colorBlack, colorRed))
		out.WriteByte('\n')
	}
	return out.String()
}

func (r InlineCLI) Replace(b Block) string {
	if len(b.Base.Lines) != len(b.Changed.Lines) || r.Options.Inline == difflib.InlineNone {
		return r.Delete(b) + r.Insert(b)
	}
	var out strings.Builder
	for i, oldLine := range b.Base.Lines {
		out.WriteString(r.gutter(r.Options.EqualityMarkers[1]))
		out.WriteString(expandTabs(r.merge(oldLine, b.Changed.Lines[i]), r.Options.TabSize))
		out.WriteByte('\n')
	}
	return out.String()
}

// merge writes the unchanged text of oldLine once and every changed run as
// its deleted part followed by its inserted part.
func (r InlineCLI) merge(oldLine, newLine Line) string {
	c := newPalette(r.Options.Color)
	var out strings.Builder
	pos := 0
	for k, sp := range oldLine.Spans {
		if k >= len(newLine.Spans) {
			break
		}
		nsp := newLine.Spans[k]
		out.WriteString(oldLine.Text[pos:sp.Start])
		del := r.Options.DeleteMarkers[0] + oldLine.Text[sp.Start:sp.End] + r.Options.DeleteMarkers[1]
		ins := r.Options.InsertMarkers[0] + newLine.Text[nsp.Start:nsp.End] + r.Options.InsertMarkers[1]
		out.WriteString(c.fgBg(del, colorBlack, colorRed))
		out.WriteString(c.fgBg(ins, colorBlack, colorGreen))
		pos = sp.End
	}
	out.WriteString(oldLine.Text[pos:])
	return out.String()
}

func (r InlineCLI) BlockFooter(Group) string { return "" }

func (r InlineCLI) DiffFooter() string { return "" }
