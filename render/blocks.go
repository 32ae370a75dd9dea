package render

import (
	"strings"

	"github.com/codinganovel/linediff/difflib"
)

// Line is one line of a change block with the spans that differ from its
// counterpart on the other side.
type Line struct {
	Text  string
	Spans []difflib.Span
}

// Side is a run of lines of one version, starting at Offset (0-based).
type Side struct {
	Offset int
	Lines  []Line
}

// Block is a run of consecutive op-codes sharing a tag.
type Block struct {
	Tag     difflib.Tag
	Base    Side
	Changed Side
}

// Group is a hunk of blocks, or a region left out between two hunks.
type Group struct {
	Blocks []Block
	// Skipped is set for an out-of-context region; Blocks is then empty.
	Skipped *difflib.OpCode
}

// Build turns the hunks of d into blocks of lines. Replacements with as many
// old lines as new lines are marked at the given inline level. The versions
// held by d are not modified.
func Build(d *difflib.Diff, level difflib.InlineLevel) []Group {
	v1, v2 := d.Version1(), d.Version2()
	var groups []Group
	for _, h := range d.Hunks() {
		if h.Skipped() {
			skipped := h.OpCodes[0]
			groups = append(groups, Group{Skipped: &skipped})
			continue
		}
		var blocks []Block
		var lastTag difflib.Tag
		for _, c := range h.OpCodes {
			// Two empty versions group into equal [0,1)x[0,1).
			c.I2, c.J2 = min(c.I2, len(v1)), min(c.J2, len(v2))
			if c.I1 >= c.I2 && c.J1 >= c.J2 {
				continue
			}
			oldLines := toLines(v1[c.I1:c.I2])
			newLines := toLines(v2[c.J1:c.J2])
			if c.Tag == difflib.TagReplace && c.I2-c.I1 == c.J2-c.J1 {
				oldMarks, newMarks := difflib.MarkLines(texts(oldLines), texts(newLines), level)
				for i := range oldMarks {
					oldLines[i].Spans = oldMarks[i]
					newLines[i].Spans = newMarks[i]
				}
			}

			if c.Tag != lastTag || len(blocks) == 0 {
				blocks = append(blocks, Block{
					Tag:     c.Tag,
					Base:    Side{Offset: c.I1},
					Changed: Side{Offset: c.J1},
				})
				lastTag = c.Tag
			}
			b := &blocks[len(blocks)-1]
			switch c.Tag {
			case difflib.TagDelete:
				b.Base.Lines = append(b.Base.Lines, oldLines...)
			case difflib.TagInsert:
				b.Changed.Lines = append(b.Changed.Lines, newLines...)
			default:
				b.Base.Lines = append(b.Base.Lines, oldLines...)
				b.Changed.Lines = append(b.Changed.Lines, newLines...)
			}
		}
		if len(blocks) > 0 {
			groups = append(groups, Group{Blocks: blocks})
		}
	}
	return groups
}

func toLines(texts []string) []Line {
	lines := make([]Line, len(texts))
	for i, t := range texts {
		lines[i] = Line{Text: strings.TrimRight(t, "\r\n")}
	}
	return lines
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// segment is a piece of a line, either marked as changed or not.
type segment struct {
	text    string
	changed bool
}

// segments cuts l at its spans. Empty spans are dropped.
func (l Line) segments() []segment {
	var out []segment
	pos := 0
	for _, sp := range l.Spans {
		if sp.Empty() || sp.Start < pos || sp.End > len(l.Text) {
			continue
		}
		if sp.Start > pos {
			out = append(out, segment{text: l.Text[pos:sp.Start]})
		}
		out = append(out, segment{text: l.Text[sp.Start:sp.End], changed: true})
		pos = sp.End
	}
	if pos < len(l.Text) || len(out) == 0 {
		out = append(out, segment{text: l.Text[pos:]})
	}
	return out
}

// expandTabs replaces every tab with size spaces; size 0 keeps tabs.
func expandTabs(s string, size int) string {
	if size <= 0 {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", size))
}
