package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/codinganovel/linediff/difflib"
)

// SideBySide renders both versions in two columns of Options.Width cells,
// each line prefixed with its number. The gutter between the columns shows
// '|' for changed lines, '<' for removed lines and '>' for added lines.
type SideBySide struct {
	Options Options
}

// Render implements Renderer.
func (s SideBySide) Render(w io.Writer, d *difflib.Diff) error {
	return Write(w, d, s, difflib.InlineNone)
}

func (s SideBySide) cond() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return cond
}

// column fits text into exactly Width cells.
func (s SideBySide) column(text string) string {
	width := max(s.Options.Width, 1)
	cond := s.cond()
	text = expandTabs(text, s.Options.TabSize)
	if cond.StringWidth(text) > width {
		text = cond.Truncate(text, width, "…")
	}
	return cond.FillRight(text, width)
}

// row writes one output line. A zero-based line number below zero leaves the
// side blank.
func (s SideBySide) row(oldNo int, oldText string, gutter byte, newNo int, newText string) string {
	left := "     " + s.column("")
	if oldNo >= 0 {
		left = fmt.Sprintf("%4d ", oldNo+1) + s.column(oldText)
	}
	right := ""
	if newNo >= 0 {
		right = fmt.Sprintf("%4d ", newNo+1) + expandTabs(newText, s.Options.TabSize)
	}
	return strings.TrimRight(fmt.Sprintf("%s %c %s", left, gutter, right), " ") + "\n"
}

func (s SideBySide) DiffHeader() string {
	return strings.TrimRight("     "+s.column(s.Options.TitleA)+"   "+"     "+s.Options.TitleB, " ") + "\n"
}

func (s SideBySide) BlockHeader(Group) string { return "" }

func (s SideBySide) Skipped(difflib.OpCode) string { return "...\n" }

func (s SideBySide) Equal(b Block) string {
	var out strings.Builder
	for i, l := range b.Base.Lines {
		out.WriteString(s.row(b.Base.Offset+i, l.Text, ' ', b.Changed.Offset+i, l.Text))
	}
	return out.String()
}

func (s SideBySide) Insert(b Block) string {
	var out strings.Builder
	for i, l := range b.Changed.Lines {
		out.WriteString(s.row(-1, "", '>', b.Changed.Offset+i, l.Text))
	}
	return out.String()
}

func (s SideBySide) Delete(b Block) string {
	var out strings.Builder
	for i, l := range b.Base.Lines {
		out.WriteString(s.row(b.Base.Offset+i, l.Text, '<', -1, ""))
	}
	return out.String()
}

func (s SideBySide) Replace(b Block) string {
	var out strings.Builder
	for i := range max(len(b.Base.Lines), len(b.Changed.Lines)) {
		oldNo, oldText, newNo, newText := -1, "", -1, ""
		gutter := byte('|')
		if i < len(b.Base.Lines) {
			oldNo, oldText = b.Base.Offset+i, b.Base.Lines[i].Text
		} else {
			gutter = '>'
		}
		if i < len(b.Changed.Lines) {
			newNo, newText = b.Changed.Offset+i, b.Changed.Lines[i].Text
		} else {
			gutter = '<'
		}
		out.WriteString(s.row(oldNo, oldText, gutter, newNo, newText))
	}
	return out.String()
}

func (s SideBySide) BlockFooter(Group) string { return "" }

func (s SideBySide) DiffFooter() string { return "" }
