package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codinganovel/linediff/difflib"
)

func ExampleNDiff() {
	a := difflib.SplitLines("one\ntwo\nthree")
	b := difflib.SplitLines("zero\none\nthree")
	delta := NDiff(a, b)
	fmt.Print(strings.Join(delta, ""))
	// Output:
	// + zero
	//   one
	// - two
	//   three
}

func ExampleNDiffWith() {
	a := difflib.SplitLines("abc")
	b := difflib.SplitLines("axc")
	delta := NDiffWith(a, b, NDiffOptions{Intraline: true})
	fmt.Print(strings.Join(delta, ""))
	// Output:
	// - abc
	// ?  ^
	// + axc
	// ?  ^
}

func ExampleDiffer_Compare() {
	d := &Differ{}
	delta := d.Compare(difflib.SplitLines("abc"), difflib.SplitLines("axc"))
	fmt.Print(strings.Join(delta, ""))
	// Output:
	// - abc
	// ?  ^
	// + axc
	// ?  ^
}

func TestNDiffWithNoIntralineEqualsNDiff(t *testing.T) {
	a := difflib.SplitLines("one\ntwo\nthree")
	b := difflib.SplitLines("zero\none\nthree")
	assert.Equal(t, NDiff(a, b), NDiffWith(a, b, NDiffOptions{Intraline: false}))
}

func TestNDiffLineJunk(t *testing.T) {
	a := difflib.SplitLines("x\n\ny")
	b := difflib.SplitLines("x\n\nz")
	delta := NDiffWith(a, b, NDiffOptions{LineJunk: difflib.IsLineJunk})
	assert.Equal(t, []string{"  x\n", "  \n", "- y\n", "+ z\n"}, delta)
}

func TestNDiffRestoreRoundTrip(t *testing.T) {
	a := difflib.SplitLines("  1. Beautiful is better than ugly.\n  2. Explicit is better than implicit.\n  3. Simple is better than complex.\n  4. Complex is better than complicated.\n")
	b := difflib.SplitLines("  1. Beautiful is better than ugly.\n  3.   Simple is better than complex.\n  4. Complicated is better than complex.\n  5. Flat is better than nested.\n")

	delta := NDiff(a, b)
	assert.Equal(t, a, Restore(delta, 1))
	assert.Equal(t, b, Restore(delta, 2))
	assert.Nil(t, Restore(delta, 3))

	// The basic delta carries no guide lines.
	for _, line := range delta {
		require.GreaterOrEqual(t, len(line), 2)
		assert.Contains(t, []string{"  ", "+ ", "- "}, line[:2], "line %q", line)
	}
}

func TestDifferRestoreRoundTrip(t *testing.T) {
	a := difflib.SplitLines("one two three\nalpha beta\n")
	b := difflib.SplitLines("one tree three\nalpha bet\n")
	delta := (&Differ{}).Compare(a, b)
	assert.Equal(t, a, Restore(delta, 1))
	assert.Equal(t, b, Restore(delta, 2))
}

func TestDifferIntralineSimple(t *testing.T) {
	a := difflib.SplitLines("abc\n")
	b := difflib.SplitLines("axc\n")
	delta := (&Differ{}).Compare(a, b)
	assert.Equal(t, []string{"- abc\n", "?  ^\n", "+ axc\n", "?  ^\n", "  \n"}, delta)
}

func TestDifferIntralineInsertAndDelete(t *testing.T) {
	delta := (&Differ{}).Compare([]string{"abcd\n"}, []string{"abd\n"})
	assert.Equal(t, []string{"- abcd\n", "?   -\n", "+ abd\n"}, delta)

	delta = (&Differ{}).Compare([]string{"abd\n"}, []string{"abcd\n"})
	assert.Equal(t, []string{"- abd\n", "+ abcd\n", "?   +\n"}, delta)
}

func TestDifferUnevenReplace(t *testing.T) {
	delta := (&Differ{}).Compare([]string{"ab\n", "cd\n"}, []string{"xb\n"})
	assert.Equal(t, []string{"- ab\n", "? ^\n", "+ xb\n", "? ^\n", "- cd\n"}, delta)
}

func TestDeltaRenderer(t *testing.T) {
	d := newDiff(t, "one\ntwo\nthree", "zero\none\nthree")
	assert.Equal(t, "+ zero\n  one\n- two\n  three\n", render(t, Delta{}, d))

	d = newDiff(t, "abc", "axc")
	assert.Equal(t, "- abc\n?  ^\n+ axc\n?  ^\n", render(t, Delta{Intraline: true}, d))
	assert.Equal(t, "- abc\n+ axc\n", render(t, Delta{}, d))

	d = newDiff(t, "same", "same")
	assert.Equal(t, "", render(t, Delta{}, d))
}

func TestDeltaRendererShowsIgnoredLines(t *testing.T) {
	d := newDiff(t, "a\nb", "a\n\nb", difflib.WithIgnoreLines(difflib.IgnoreLinesEmpty))
	// Ignored lines make the versions identical.
	assert.Equal(t, "", render(t, Delta{}, d))

	d = newDiff(t, "a\nb", "a\n\nb\nc", difflib.WithIgnoreLines(difflib.IgnoreLinesEmpty))
	assert.Equal(t, "  a\n+ \n  b\n+ c\n", render(t, Delta{}, d))
}

func TestMustMatcher(t *testing.T) {
	m := junkMatcher([]string{"a"}, []string{"a"}, nil)
	require.NotNil(t, m)
	assert.Equal(t, 1.0, m.Ratio())

	assert.Panics(t, func() {
		mustMatcher(difflib.NewMatcher(nil, nil, difflib.WithContext(-1)))
	})
}
