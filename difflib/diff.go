package difflib

import (
	"bytes"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var lineBreak = regexp.MustCompile(`\r\n|\n|\r`)

// Diff holds two versions of a text and the options used to compare them.
// Op-codes, similarity and identity are computed on first use and cached.
type Diff struct {
	version1 []string
	version2 []string
	opts     options

	matcher    *SequenceMatcher
	grouped    [][]OpCode
	hunks      []Hunk
	identical  bool
	similarity map[SimilarityMethod]float64
}

// NewDiff compares version1 against version2. Options are validated here,
// so later queries cannot fail on bad configuration.
func NewDiff(version1, version2 []string, opts ...Option) (*Diff, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if version1 == nil {
		version1 = []string{}
	}
	if version2 == nil {
		version2 = []string{}
	}
	return &Diff{version1: version1, version2: version2, opts: o}, nil
}

// NewDiffText splits both texts into lines on "\r\n", "\n" or "\r" (the
// separators are dropped) and compares them.
func NewDiffText(version1, version2 string, opts ...Option) (*Diff, error) {
	return NewDiff(SplitText(version1), SplitText(version2), opts...)
}

// NewDiffBytes is like NewDiffText for raw bytes. The content is not decoded.
func NewDiffBytes(version1, version2 []byte, opts ...Option) (*Diff, error) {
	return NewDiffText(string(version1), string(version2), opts...)
}

// SplitText splits s into lines, dropping "\r\n", "\n" and "\r".
func SplitText(s string) []string {
	return lineBreak.Split(s, -1)
}

// Split a string on "\n" while preserving them. The output can be used
// as input for UnifiedDiff and ContextDiff structures.
func SplitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	lines[len(lines)-1] += "\n"
	return lines
}

// SplitLinesBytes splits on '\n' while preserving them and ensures the last
// element ends with a trailing '\n', mirroring SplitLines semantics.
func SplitLinesBytes(b []byte) [][]byte {
	parts := bytes.SplitAfter(b, []byte{'\n'})
	parts[len(parts)-1] = append(parts[len(parts)-1], '\n')
	return parts
}

// Version1 returns the lines of the first version. Callers must not modify it.
func (d *Diff) Version1() []string { return d.version1 }

// Version2 returns the lines of the second version. Callers must not modify it.
func (d *Diff) Version2() []string { return d.version2 }

// Context returns the configured context size.
func (d *Diff) Context() int { return d.opts.context }

// ArrayRange returns seq[start:end]. Negative bounds, end < start or end past
// the sequence return ErrOutOfRange.
func ArrayRange(seq []string, start, end int) ([]string, error) {
	if start < 0 || end < 0 || end < start {
		return nil, fmt.Errorf("%w: start %d must not exceed end %d and both must be positive",
			ErrOutOfRange, start, end)
	}
	if end > len(seq) {
		return nil, fmt.Errorf("%w: end %d exceeds length %d", ErrOutOfRange, end, len(seq))
	}
	return seq[start:end], nil
}

func (d *Diff) sequenceMatcher() *SequenceMatcher {
	if d.matcher == nil {
		d.matcher = &SequenceMatcher{opts: d.opts}
		d.matcher.SetSeqs(d.version1, d.version2)
	}
	return d.matcher
}

// OpCodes returns the ungrouped op-codes covering both versions.
func (d *Diff) OpCodes() []OpCode {
	return d.sequenceMatcher().GetOpCodes()
}

// GroupedOpCodes returns the op-codes grouped into hunks with context. An
// empty result means there is nothing to show.
func (d *Diff) GroupedOpCodes() [][]OpCode {
	d.compute()
	out := make([][]OpCode, len(d.grouped))
	for i, g := range d.grouped {
		out[i] = slices.Clone(g)
	}
	return out
}

// Hunks returns the grouped op-codes with out-of-context markers between
// groups split from one long equal run.
func (d *Diff) Hunks() []Hunk {
	d.compute()
	out := make([]Hunk, len(d.hunks))
	for i, h := range d.hunks {
		out[i] = Hunk{OpCodes: slices.Clone(h.OpCodes)}
	}
	return out
}

func (d *Diff) compute() {
	if d.hunks != nil {
		return
	}
	m := d.sequenceMatcher()
	d.hunks = m.Hunks()
	d.grouped = m.GetGroupedOpCodes()
	d.identical = true
	for _, c := range m.GetOpCodes() {
		if c.Tag != TagEqual && c.Tag != TagIgnore {
			d.identical = false
			break
		}
	}
}

// IsIdentical reports whether the versions compare equal under the
// configured options. Differences reported as TagIgnore do not count.
func (d *Diff) IsIdentical() bool {
	d.compute()
	return d.identical
}

// Similarity returns the similarity ratio computed with method.
func (d *Diff) Similarity(method SimilarityMethod) float64 {
	if r, ok := d.similarity[method]; ok {
		return r
	}
	if d.similarity == nil {
		d.similarity = map[SimilarityMethod]float64{}
	}
	r := d.sequenceMatcher().Similarity(method)
	d.similarity[method] = r
	return r
}

// Statistics counts elements per tag over the grouped op-codes.
type Statistics struct {
	Inserted int
	Deleted  int
	Replaced int
	Equal    int
	Ignored  int
}

// Statistics counts the elements shown by GroupedOpCodes. Inserts count
// elements of the second version; deletes, equal and ignored runs count
// elements of the first; replacements count the larger side.
func (d *Diff) Statistics() Statistics {
	var s Statistics
	for _, g := range d.GroupedOpCodes() {
		for _, c := range g {
			switch c.Tag {
			case TagInsert:
				s.Inserted += c.J2 - c.J1
			case TagDelete:
				s.Deleted += c.I2 - c.I1
			case TagReplace:
				s.Replaced += max(c.I2-c.I1, c.J2-c.J1)
			case TagEqual:
				s.Equal += c.I2 - c.I1
			case TagIgnore:
				s.Ignored += max(c.I2-c.I1, c.J2-c.J1)
			}
		}
	}
	return s
}
