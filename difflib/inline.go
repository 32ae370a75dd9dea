package difflib

import (
	"fmt"
	"strings"
)

// Span is a half-open byte range [Start, End) of a line.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool { return s.End <= s.Start }

// InlineLevel selects how replaced lines are marked.
type InlineLevel int

const (
	// InlineChar marks every differing run of characters.
	InlineChar InlineLevel = iota
	// InlineWord marks every differing run of words.
	InlineWord
	// InlineLine marks one span from the first to the last difference.
	InlineLine
	// InlineNone disables inline marking.
	InlineNone
)

func (l InlineLevel) String() string {
	switch l {
	case InlineChar:
		return "char"
	case InlineWord:
		return "word"
	case InlineLine:
		return "line"
	case InlineNone:
		return "none"
	default:
		return fmt.Sprintf("InlineLevel(%d)", int(l))
	}
}

// ParseInlineLevel parses the names returned by InlineLevel.String.
func ParseInlineLevel(s string) (InlineLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "char":
		return InlineChar, nil
	case "word":
		return InlineWord, nil
	case "line":
		return InlineLine, nil
	case "none":
		return InlineNone, nil
	}
	return InlineNone, fmt.Errorf("%w: unknown inline level %q", ErrInvalidArgument, s)
}

// MarkOuter returns the span of old and of new between the first and the
// last differing character. Characters are grapheme clusters. Identical
// lines give empty spans.
func MarkOuter(oldLine, newLine string) (Span, Span) {
	oldChars, newChars := SplitChars(oldLine), SplitChars(newLine)
	limit := min(len(oldChars), len(newChars))

	start := 0
	for start < limit && oldChars[start] == newChars[start] {
		start++
	}
	suffix := 0
	for suffix < limit-start &&
		oldChars[len(oldChars)-1-suffix] == newChars[len(newChars)-1-suffix] {
		suffix++
	}

	oldOffsets, newOffsets := offsets(oldChars), offsets(newChars)
	return Span{oldOffsets[start], oldOffsets[len(oldChars)-suffix]},
		Span{newOffsets[start], newOffsets[len(newChars)-suffix]}
}

// MarkInner matches the tokens of both lines and returns one span per
// differing run. The two slices are aligned: oldSpans[k] was turned into
// newSpans[k]. A deletion has an empty span on the new side, an insertion
// an empty span on the old side.
func MarkInner(oldLine, newLine string, split Tokenizer) (oldSpans, newSpans []Span) {
	if split == nil {
		split = SplitChars
	}
	oldTokens, newTokens := split(oldLine), split(newLine)
	m := SequenceMatcher{opts: defaultOptions()}
	m.SetSeqs(oldTokens, newTokens)

	oldOffsets, newOffsets := offsets(oldTokens), offsets(newTokens)
	for _, c := range m.GetOpCodes() {
		if c.Tag == TagEqual {
			continue
		}
		oldSpans = append(oldSpans, Span{oldOffsets[c.I1], oldOffsets[c.I2]})
		newSpans = append(newSpans, Span{newOffsets[c.J1], newOffsets[c.J2]})
	}
	return oldSpans, newSpans
}

// MarkLines marks each pair oldLines[i], newLines[i] at the given level. It
// is meant for replace op-codes with as many old lines as new lines; for
// other shapes, or InlineNone, it returns nil slices. The lines themselves
// are not modified.
func MarkLines(oldLines, newLines []string, level InlineLevel) ([][]Span, [][]Span) {
	if len(oldLines) != len(newLines) || level == InlineNone {
		return nil, nil
	}
	oldMarks := make([][]Span, len(oldLines))
	newMarks := make([][]Span, len(newLines))
	for i := range oldLines {
		switch level {
		case InlineLine:
			o, n := MarkOuter(oldLines[i], newLines[i])
			oldMarks[i], newMarks[i] = []Span{o}, []Span{n}
		case InlineWord:
			oldMarks[i], newMarks[i] = MarkInner(oldLines[i], newLines[i], SplitWords)
		default:
			oldMarks[i], newMarks[i] = MarkInner(oldLines[i], newLines[i], SplitChars)
		}
	}
	return oldMarks, newMarks
}

// offsets returns the byte offset of each token plus the total length.
func offsets(tokens []string) []int {
	out := make([]int, len(tokens)+1)
	for i, t := range tokens {
		out[i+1] = out[i] + len(t)
	}
	return out
}
