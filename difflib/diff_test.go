package difflib

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiffInvalidOptions(t *testing.T) {
	_, err := NewDiff(nil, nil, WithContext(-1))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewDiffText("a", "b", WithIgnoreLines(IgnoreLines(-1)))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewDiffText(t *testing.T) {
	d, err := NewDiffText("a\r\nb\nc\rd", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, d.Version1())
	assert.Equal(t, []string{"a"}, d.Version2())
	assert.Equal(t, DefaultContext, d.Context())

	d, err = NewDiffBytes([]byte("x\ny"), []byte("x\ny"), WithContext(5))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, d.Version1())
	assert.Equal(t, 5, d.Context())
	assert.True(t, d.IsIdentical())
}

func TestNewDiffNilVersions(t *testing.T) {
	d, err := NewDiff(nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, d.Version1())
	assert.NotNil(t, d.Version2())
	assert.Empty(t, d.GroupedOpCodes())
	assert.True(t, d.IsIdentical())
	assert.Equal(t, 1.0, d.Similarity(SimilarityDefault))
}

func TestArrayRange(t *testing.T) {
	seq := []string{"a", "b", "c", "d"}

	got, err := ArrayRange(seq, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, got)

	got, err = ArrayRange(seq, 2, 2)
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bounds := range [][2]int{{3, 1}, {-1, 2}, {0, -1}, {0, 5}} {
		_, err := ArrayRange(seq, bounds[0], bounds[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "bounds %v", bounds)
		assert.NotErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestDiffIsIdentical(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		opts []Option
		want bool
	}{
		{"same", []string{"a", "b"}, []string{"a", "b"}, nil, true},
		{"changed", []string{"a", "b"}, []string{"a", "c"}, nil, false},
		{"case differs", []string{"A"}, []string{"a"}, nil, false},
		{"case ignored", []string{"A"}, []string{"a"}, []Option{WithIgnoreCase(true)}, true},
		{"spaces ignored", []string{"a b"}, []string{"a\tb "}, []Option{WithIgnoreWhitespace(true)}, true},
		{"empty line ignored", []string{"a", "b"}, []string{"a", "", "b"}, []Option{WithIgnoreLines(IgnoreLinesEmpty)}, true},
		{"empty line reported", []string{"a", "b"}, []string{"a", "", "b"}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDiff(tt.a, tt.b, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.IsIdentical())
		})
	}
}

func TestDiffStatistics(t *testing.T) {
	d, err := NewDiff(
		[]string{"a", "b", "c", "d", "q"},
		[]string{"a", "x", "c", "d", "e", "f"},
	)
	require.NoError(t, err)
	// e 0 1, r 1 2, e 2 4, r 4 5 4 6
	assert.Equal(t, Statistics{Inserted: 0, Deleted: 0, Replaced: 3, Equal: 3}, d.Statistics())

	d, err = NewDiff([]string{"a", "b", "c", "d"}, []string{"b", "", "c", "d", "e"}, WithIgnoreLines(IgnoreLinesEmpty))
	require.NoError(t, err)
	// d 0 1, e 1 2 0 1, x 2 2 1 2, e 2 4 2 4, i 4 4 4 5
	assert.Equal(t, Statistics{Inserted: 1, Deleted: 1, Equal: 3, Ignored: 1}, d.Statistics())
}

func TestDiffResultsAreCopies(t *testing.T) {
	d, err := NewDiffText("one\ntwo\nthree", "one\n2\nthree")
	require.NoError(t, err)

	grouped := d.GroupedOpCodes()
	require.Len(t, grouped, 1)
	grouped[0][0].Tag = TagDelete
	assert.Equal(t, TagEqual, d.GroupedOpCodes()[0][0].Tag)

	hunks := d.Hunks()
	hunks[0].OpCodes[1].I1 = 99
	assert.Equal(t, 1, d.Hunks()[0].OpCodes[1].I1)

	assert.Equal(t, d.GroupedOpCodes(), d.GroupedOpCodes())
	assert.Equal(t, d.Similarity(SimilarityDefault), d.Similarity(SimilarityDefault))
}

func TestDiffSimilarityPerMethod(t *testing.T) {
	d, err := NewDiff(numbers(1, 11), numbers(1, 6))
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, d.Similarity(SimilarityDefault), 1e-9)
	assert.InDelta(t, 2.0/3.0, d.Similarity(SimilarityFast), 1e-9)
	assert.InDelta(t, 2.0/3.0, d.Similarity(SimilarityFastest), 1e-9)

	d, err = NewDiff([]string{"a", "b"}, []string{"b", "a"})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d.Similarity(SimilarityDefault), 1e-9)
	assert.InDelta(t, 1.0, d.Similarity(SimilarityFast), 1e-9)
}

func TestSplitLines(t *testing.T) {
	allTests := []struct {
		input string
		want  []string
	}{
		{"foo", []string{"foo\n"}},
		{"foo\nbar", []string{"foo\n", "bar\n"}},
		{"foo\nbar\n", []string{"foo\n", "bar\n", "\n"}},
	}
	for _, test := range allTests {
		assert.Equal(t, test.want, SplitLines(test.input))
	}
	assert.Equal(t, [][]byte{[]byte("foo\n"), []byte("bar\n")}, SplitLinesBytes([]byte("foo\nbar")))
}

func TestSplitText(t *testing.T) {
	assert.Equal(t, []string{""}, SplitText(""))
	assert.Equal(t, []string{"a", ""}, SplitText("a\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitText("a\n\rb"))
}

func benchmarkSplitLines(b *testing.B, count int) {
	str := strings.Repeat("foo\n", count)

	b.ResetTimer()

	n := 0
	for i := 0; i < b.N; i++ {
		n += len(SplitLines(str))
	}
}

func BenchmarkSplitLines100(b *testing.B) {
	benchmarkSplitLines(b, 100)
}

func BenchmarkSplitLines10000(b *testing.B) {
	benchmarkSplitLines(b, 10000)
}

func ExampleDiff_GroupedOpCodes() {
	d, err := NewDiff(SplitChars("54321ABXDE12345"), SplitChars("54321ABxDE12345"))
	if err != nil {
		panic(err)
	}
	for _, group := range d.GroupedOpCodes() {
		for _, op := range group {
			fmt.Printf("%s %d %d %d %d\n", op.Tag, op.I1, op.I2, op.J1, op.J2)
		}
	}
	// Output:
	// equal 4 7 4 7
	// replace 7 8 7 8
	// equal 8 11 8 11
}

func ExampleDiff_Similarity() {
	d, err := NewDiffText("one\ntwo\nthree\nfour", "one\nthree\nfour\nfive")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f %.2f %.2f\n",
		d.Similarity(SimilarityDefault), d.Similarity(SimilarityFast), d.Similarity(SimilarityFastest))
	// Output:
	// 0.75 0.75 1.00
}
