package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/codinganovel/linediff/difflib"
)

// Convert range to the "ed" format.
func formatRangeContext(start, stop int) string {
	// Per the diff spec at http://www.unix.org/single_unix_specification/
	beginning := start + 1 // lines start numbering with one
	length := stop - start
	if length == 0 {
		beginning -= 1 // empty ranges begin at line just before the range
	}
	if length <= 1 {
		return fmt.Sprintf("%d", beginning)
	}
	return fmt.Sprintf("%d,%d", beginning, beginning+length-1)
}

// Context renders a context diff. Each hunk lists the old lines, then the
// new lines; a side with no changes is left out.
//
// Ignored blocks are written as removals or additions.
type Context struct {
	Header Header
}

var contextPrefix = map[difflib.Tag]string{
	difflib.TagInsert:  "+ ",
	difflib.TagDelete:  "- ",
	difflib.TagReplace: "! ",
	difflib.TagEqual:   "  ",
}

// Render implements Renderer.
func (c Context) Render(w io.Writer, d *difflib.Diff) error {
	groups := Build(d, difflib.InlineNone)
	if len(groups) == 0 {
		return nil
	}

	buf := bufio.NewWriter(w)
	var diffErr error
	wf := func(format string, args ...any) {
		_, err := fmt.Fprintf(buf, format, args...)
		if diffErr == nil && err != nil {
			diffErr = err
		}
	}
	ws := func(s string) {
		_, err := buf.WriteString(s)
		if diffErr == nil && err != nil {
			diffErr = err
		}
	}

	eol := c.Header.eol()
	ws(c.Header.fileLines("***", "---"))
	for _, g := range groups {
		if g.Skipped != nil {
			continue
		}
		blocks := make([]Block, len(g.Blocks))
		for i, b := range g.Blocks {
			blocks[i] = asPatchBlock(b)
		}
		first, last := blocks[0], blocks[len(blocks)-1]
		ws("***************" + eol)

		range1 := formatRangeContext(first.Base.Offset, last.Base.Offset+len(last.Base.Lines))
		wf("*** %s ****%s", range1, eol)
		if hasTag(blocks, difflib.TagReplace, difflib.TagDelete) {
			for _, b := range blocks {
				if b.Tag == difflib.TagInsert {
					continue
				}
				ws(prefixLines(contextPrefix[b.Tag], b.Base.Lines, eol))
			}
		}

		range2 := formatRangeContext(first.Changed.Offset, last.Changed.Offset+len(last.Changed.Lines))
		wf("--- %s ----%s", range2, eol)
		if hasTag(blocks, difflib.TagReplace, difflib.TagInsert) {
			for _, b := range blocks {
				if b.Tag == difflib.TagDelete {
					continue
				}
				ws(prefixLines(contextPrefix[b.Tag], b.Changed.Lines, eol))
			}
		}
	}
	if diffErr != nil {
		return diffErr
	}
	return buf.Flush()
}

// asPatchBlock turns an ignored block into the deletion or insertion it
// stands for.
func asPatchBlock(b Block) Block {
	if b.Tag != difflib.TagIgnore {
		return b
	}
	if len(b.Base.Lines) > 0 {
		b.Tag = difflib.TagDelete
	} else {
		b.Tag = difflib.TagInsert
	}
	return b
}

func hasTag(blocks []Block, tags ...difflib.Tag) bool {
	for _, b := range blocks {
		for _, t := range tags {
			if b.Tag == t {
				return true
			}
		}
	}
	return false
}
