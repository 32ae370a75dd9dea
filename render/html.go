package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/codinganovel/linediff/difflib"
)

// HTML renders a side-by-side table. Changed runs inside replaced lines are
// wrapped in <del> and <ins>. All text is escaped.
type HTML struct {
	Options Options
}

// Render implements Renderer.
func (h HTML) Render(w io.Writer, d *difflib.Diff) error {
	return Write(w, d, h, h.Options.Inline)
}

// cell escapes a line, wrapping its spans in tag.
func (h HTML) cell(l Line, tag string) string {
	var b strings.Builder
	for _, seg := range l.segments() {
		text := html.EscapeString(expandTabs(seg.text, h.Options.TabSize))
		if seg.changed {
			fmt.Fprintf(&b, "<%s>%s</%s>", tag, text, tag)
			continue
		}
		b.WriteString(text)
	}
	return b.String()
}

func (h HTML) DiffHeader() string {
	return `<table class="Differences DifferencesSideBySide">` +
		`<thead><tr>` +
		`<th colspan="2">` + html.EscapeString(h.Options.TitleA) + `</th>` +
		`<th colspan="2">` + html.EscapeString(h.Options.TitleB) + `</th>` +
		`</tr></thead>`
}

func (h HTML) BlockHeader(Group) string { return "" }

func (h HTML) Skipped(difflib.OpCode) string {
	return `<tbody class="Skipped">` +
		`<th>&hellip;</th><td>&#xA0;</td>` +
		`<th>&hellip;</th><td>&#xA0;</td>` +
		`</tbody>`
}

func tbody(class string, rows string) string {
	return `<tbody class="` + class + `">` + rows + `</tbody>`
}

func (h HTML) Equal(b Block) string {
	var rows strings.Builder
	for i, l := range b.Base.Lines {
		text := h.cell(l, "")
		fmt.Fprintf(&rows, `<tr><th>%d</th><td class="Left"><span>%s</span>&#xA0;</td>`+
			`<th>%d</th><td class="Right"><span>%s</span>&#xA0;</td></tr>`,
			b.Base.Offset+i+1, text, b.Changed.Offset+i+1, text)
	}
	return tbody("ChangeEqual", rows.String())
}

func (h HTML) insertRows(b Block, tag string) string {
	var rows strings.Builder
	for i, l := range b.Changed.Lines {
		fmt.Fprintf(&rows, `<tr><th>&#xA0;</th><td class="Left">&#xA0;</td>`+
			`<th>%d</th><td class="Right">%s&#xA0;</td></tr>`,
			b.Changed.Offset+i+1, wrap(tag, h.cell(l, "")))
	}
	return rows.String()
}

func (h HTML) deleteRows(b Block, tag string) string {
	var rows strings.Builder
	for i, l := range b.Base.Lines {
		fmt.Fprintf(&rows, `<tr><th>%d</th><td class="Left">%s&#xA0;</td>`+
			`<th>&#xA0;</th><td class="Right">&#xA0;</td></tr>`,
			b.Base.Offset+i+1, wrap(tag, h.cell(l, "")))
	}
	return rows.String()
}

func (h HTML) Insert(b Block) string { return tbody("ChangeInsert", h.insertRows(b, "ins")) }

func (h HTML) Delete(b Block) string { return tbody("ChangeDelete", h.deleteRows(b, "del")) }

// Ignore implements IgnoreRenderer. Ignored lines are shown on their side
// without change markup.
func (h HTML) Ignore(b Block) string {
	if len(b.Base.Lines) > 0 {
		return tbody("ChangeIgnore", h.deleteRows(b, "span"))
	}
	return tbody("ChangeIgnore", h.insertRows(b, "span"))
}

func (h HTML) Replace(b Block) string {
	var rows strings.Builder
	for i := range max(len(b.Base.Lines), len(b.Changed.Lines)) {
		fromLine, oldCell := "&#xA0;", "&#xA0;"
		if i < len(b.Base.Lines) {
			fromLine = fmt.Sprint(b.Base.Offset + i + 1)
			oldCell = wrap("span", h.cell(b.Base.Lines[i], "del"))
		}
		toLine, newCell := "&#xA0;", "&#xA0;"
		if i < len(b.Changed.Lines) {
			toLine = fmt.Sprint(b.Changed.Offset + i + 1)
			newCell = wrap("span", h.cell(b.Changed.Lines[i], "ins"))
		}
		fmt.Fprintf(&rows, `<tr><th>%s</th><td class="Left">%s&#xA0;</td>`+
			`<th>%s</th><td class="Right">%s&#xA0;</td></tr>`,
			fromLine, oldCell, toLine, newCell)
	}
	return tbody("ChangeReplace", rows.String())
}

func (h HTML) BlockFooter(Group) string { return "" }

func (h HTML) DiffFooter() string { return "</table>" }

func wrap(tag, s string) string {
	return "<" + tag + ">" + s + "</" + tag + ">"
}
