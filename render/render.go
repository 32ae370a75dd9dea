// Package render turns a difflib.Diff into text: unified and context
// patches, colored terminal output, side-by-side columns, HTML tables and
// ndiff deltas.
package render

import (
	"bufio"
	"bytes"
	"io"

	"github.com/codinganovel/linediff/difflib"
)

// Renderer writes a whole diff.
type Renderer interface {
	Render(w io.Writer, d *difflib.Diff) error
}

// SubRenderer produces the pieces of a block-oriented rendering. Each call
// returns the text to append; Write drives the calls in order.
type SubRenderer interface {
	DiffHeader() string
	BlockHeader(g Group) string
	// Skipped renders the lines left out between two hunks.
	Skipped(op difflib.OpCode) string
	Equal(b Block) string
	Insert(b Block) string
	Delete(b Block) string
	Replace(b Block) string
	BlockFooter(g Group) string
	DiffFooter() string
}

// IgnoreRenderer is implemented by sub-renderers that show ignored blocks
// themselves. Others get them as deletions or insertions.
type IgnoreRenderer interface {
	Ignore(b Block) string
}

// Write renders d through r. Nothing is written when the diff has no hunks.
func Write(w io.Writer, d *difflib.Diff, r SubRenderer, level difflib.InlineLevel) error {
	groups := Build(d, level)
	if len(groups) == 0 {
		return nil
	}

	buf := bufio.NewWriter(w)
	var writeErr error
	ws := func(s string) {
		if writeErr != nil || s == "" {
			return
		}
		_, writeErr = buf.WriteString(s)
	}

	ws(r.DiffHeader())
	for _, g := range groups {
		if g.Skipped != nil {
			ws(r.Skipped(*g.Skipped))
			continue
		}
		ws(r.BlockHeader(g))
		for _, b := range g.Blocks {
			ws(renderBlock(r, b))
		}
		ws(r.BlockFooter(g))
	}
	ws(r.DiffFooter())

	if writeErr != nil {
		return writeErr
	}
	return buf.Flush()
}

func renderBlock(r SubRenderer, b Block) string {
	switch b.Tag {
	case difflib.TagEqual:
		return r.Equal(b)
	case difflib.TagInsert:
		return r.Insert(b)
	case difflib.TagDelete:
		return r.Delete(b)
	case difflib.TagReplace:
		return r.Replace(b)
	case difflib.TagIgnore:
		if ir, ok := r.(IgnoreRenderer); ok {
			return ir.Ignore(b)
		}
		// Ignored runs are pure gaps, so only one side has lines.
		if len(b.Base.Lines) > 0 {
			return r.Delete(b)
		}
		return r.Insert(b)
	}
	return ""
}

// String renders d with r and returns the output.
func String(r Renderer, d *difflib.Diff) (string, error) {
	var w bytes.Buffer
	err := r.Render(&w, d)
	return w.String(), err
}
