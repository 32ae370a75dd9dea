package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/codinganovel/linediff/difflib"
)

// Convert range to the "ed" format
func formatRangeUnified(start, stop int) string {
	// Per the diff spec at http://www.unix.org/single_unix_specification/
	beginning := start + 1 // lines start numbering with one
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning -= 1 // empty ranges begin at line just before the range
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}

// Header names the two versions in patch output. No file header is written
// when both file names are empty.
type Header struct {
	FromFile string
	FromDate string
	ToFile   string
	ToDate   string
	Eol      string // line terminator, defaults to LF
}

func (h Header) eol() string {
	if h.Eol == "" {
		return "\n"
	}
	return h.Eol
}

func (h Header) fileLines(fromMark, toMark string) string {
	if h.FromFile == "" && h.ToFile == "" {
		return ""
	}
	fromDate := ""
	if h.FromDate != "" {
		fromDate = "\t" + h.FromDate
	}
	toDate := ""
	if h.ToDate != "" {
		toDate = "\t" + h.ToDate
	}
	return fmt.Sprintf("%s %s%s%s%s %s%s%s",
		fromMark, h.FromFile, fromDate, h.eol(),
		toMark, h.ToFile, toDate, h.eol())
}

// Unified renders a unified diff: a compact way of showing line changes
// with a few lines of context. The amount of context is the one the Diff
// was built with.
//
// Ignored blocks are written as removals or additions so the output stays a
// valid patch.
type Unified struct {
	Header Header
}

// Render implements Renderer.
func (u Unified) Render(w io.Writer, d *difflib.Diff) error {
	return Write(w, d, u, difflib.InlineNone)
}

func (u Unified) DiffHeader() string { return u.Header.fileLines("---", "+++") }

func (u Unified) BlockHeader(g Group) string {
	first, last := g.Blocks[0], g.Blocks[len(g.Blocks)-1]
	range1 := formatRangeUnified(first.Base.Offset, last.Base.Offset+len(last.Base.Lines))
	range2 := formatRangeUnified(first.Changed.Offset, last.Changed.Offset+len(last.Changed.Lines))
	return fmt.Sprintf("@@ -%s +%s @@%s", range1, range2, u.Header.eol())
}

func (u Unified) Skipped(difflib.OpCode) string { return "" }

func (u Unified) Equal(b Block) string { return prefixLines(" ", b.Base.Lines, u.Header.eol()) }

func (u Unified) Insert(b Block) string { return prefixLines("+", b.Changed.Lines, u.Header.eol()) }

func (u Unified) Delete(b Block) string { return prefixLines("-", b.Base.Lines, u.Header.eol()) }

func (u Unified) Replace(b Block) string {
	return prefixLines("-", b.Base.Lines, u.Header.eol()) +
		prefixLines("+", b.Changed.Lines, u.Header.eol())
}

func (u Unified) BlockFooter(Group) string { return "" }

func (u Unified) DiffFooter() string { return "" }

func prefixLines(prefix string, lines []Line, eol string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(prefix)
		b.WriteString(l.Text)
		b.WriteString(eol)
	}
	return b.String()
}
