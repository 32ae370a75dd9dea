package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codinganovel/linediff/difflib"
)

func TestHTMLReplaceMarkup(t *testing.T) {
	d := newDiff(t, "a<b\nsame", "a>b\nsame")
	out := render(t, HTML{Options: DefaultOptions()}, d)

	assert.True(t, strings.HasPrefix(out, `<table class="Differences DifferencesSideBySide">`))
	assert.True(t, strings.HasSuffix(out, "</table>"))
	assert.Contains(t, out, `<th colspan="2">Old Version</th><th colspan="2">New Version</th>`)
	assert.Contains(t, out, `<tbody class="ChangeReplace">`)
	assert.Contains(t, out, `<td class="Left"><span>a<del>&lt;</del>b</span>&#xA0;</td>`)
	assert.Contains(t, out, `<td class="Right"><span>a<ins>&gt;</ins>b</span>&#xA0;</td>`)
	assert.Contains(t, out, `<tr><th>2</th><td class="Left"><span>same</span>&#xA0;</td>`+
		`<th>2</th><td class="Right"><span>same</span>&#xA0;</td></tr>`)
}

func TestHTMLInsertAndDelete(t *testing.T) {
	d := newDiff(t, "x\ny", "y\n<z>")
	out := render(t, HTML{Options: DefaultOptions()}, d)

	assert.Contains(t, out, `<tbody class="ChangeDelete"><tr><th>1</th><td class="Left"><del>x</del>&#xA0;</td>`+
		`<th>&#xA0;</th><td class="Right">&#xA0;</td></tr></tbody>`)
	assert.Contains(t, out, `<tbody class="ChangeInsert"><tr><th>&#xA0;</th><td class="Left">&#xA0;</td>`+
		`<th>2</th><td class="Right"><ins>&lt;z&gt;</ins>&#xA0;</td></tr></tbody>`)
}

func TestHTMLSkipped(t *testing.T) {
	var a, b []string
	for i := range 20 {
		a = append(a, fmt.Sprint(i))
		b = append(b, fmt.Sprint(i))
	}
	b[2], b[17] = "two", "seventeen"
	d, err := difflib.NewDiff(a, b, difflib.WithContext(1))
	require.NoError(t, err)

	out := render(t, HTML{Options: DefaultOptions()}, d)
	assert.Equal(t, 1, strings.Count(out, `<tbody class="Skipped">`))
	assert.Equal(t, 2, strings.Count(out, `<tbody class="ChangeReplace">`))
}

func TestHTMLIgnore(t *testing.T) {
	d := newDiff(t, "a\nb", "a\n\nb", difflib.WithIgnoreLines(difflib.IgnoreLinesEmpty))
	out := render(t, HTML{Options: DefaultOptions()}, d)
	assert.Contains(t, out, `<tbody class="ChangeIgnore"><tr><th>&#xA0;</th><td class="Left">&#xA0;</td>`+
		`<th>2</th><td class="Right"><span></span>&#xA0;</td></tr></tbody>`)
	assert.NotContains(t, out, "ChangeInsert")
}

func TestHTMLIdentical(t *testing.T) {
	d := newDiff(t, "a\nb", "a\nb")
	assert.Equal(t, "", render(t, HTML{Options: DefaultOptions()}, d))
}

func TestHTMLEscapesTitles(t *testing.T) {
	opts := DefaultOptions()
	opts.TitleA = "<old>"
	d := newDiff(t, "a", "b")
	assert.Contains(t, render(t, HTML{Options: opts}, d), `<th colspan="2">&lt;old&gt;</th>`)
}
