package difflib

import "fmt"

// SimilarityMethod selects how Similarity trades accuracy for speed.
type SimilarityMethod int

const (
	// SimilarityDefault counts matching-block elements. Exact, and the
	// slowest unless the blocks are already cached.
	SimilarityDefault SimilarityMethod = iota
	// SimilarityFast treats both sequences as multisets. Upper bound.
	SimilarityFast
	// SimilarityFastest only looks at the lengths. Upper bound.
	SimilarityFastest
)

func (s SimilarityMethod) String() string {
	switch s {
	case SimilarityDefault:
		return "default"
	case SimilarityFast:
		return "fast"
	case SimilarityFastest:
		return "fastest"
	default:
		return fmt.Sprintf("SimilarityMethod(%d)", int(s))
	}
}

// ParseSimilarityMethod parses the names returned by SimilarityMethod.String.
func ParseSimilarityMethod(s string) (SimilarityMethod, error) {
	switch s {
	case "", "default":
		return SimilarityDefault, nil
	case "fast":
		return SimilarityFast, nil
	case "fastest":
		return SimilarityFastest, nil
	}
	return SimilarityDefault, fmt.Errorf("%w: unknown similarity method %q", ErrInvalidArgument, s)
}

// Similarity returns a measure of the sequences' similarity in [0,1], 1
// meaning identical. Unknown methods fall back to SimilarityDefault.
func (m *SequenceMatcher) Similarity(method SimilarityMethod) float64 {
	switch method {
	case SimilarityFast:
		return m.QuickRatio()
	case SimilarityFastest:
		return m.RealQuickRatio()
	default:
		return m.Ratio()
	}
}

// Return a measure of the sequences' similarity (float in [0,1]).
//
// Where T is the total number of elements in both sequences, and
// M is the number of matches, this is 2.0*M / T.
// Note that this is 1 if the sequences are identical, and 0 if
// they have nothing in common.
//
// With WithIgnoreLines set, empty (or blank) elements are left out of both
// sequences first. The matcher itself is not modified by this.
//
// .Ratio() is expensive to compute if you haven't already computed
// .GetMatchingBlocks() or .GetOpCodes(), in which case you may
// want to try .QuickRatio() or .RealQuickRation() first to get an
// upper bound.
func (m *SequenceMatcher) Ratio() float64 {
	if m.opts.ignoreLines != IgnoreLinesNone {
		a, b := m.stripLines(m.a), m.stripLines(m.b)
		if len(a) != len(m.a) || len(b) != len(m.b) {
			scratch := SequenceMatcher{opts: m.opts}
			scratch.opts.ignoreLines = IgnoreLinesNone
			scratch.SetSeqs(a, b)
			return scratch.Ratio()
		}
	}
	matches := 0
	for _, mb := range m.GetMatchingBlocks() {
		matches += mb.Size
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// stripLines returns seq without the elements WithIgnoreLines ignores.
func (m *SequenceMatcher) stripLines(seq []string) []string {
	out := make([]string, 0, len(seq))
	for _, s := range seq {
		if !m.opts.isIgnorable([]string{s}) {
			out = append(out, s)
		}
	}
	return out
}

// Return an upper bound on ratio() relatively quickly.
//
// This isn't defined beyond that it is an upper bound on .Ratio(), and
// is faster to compute.
func (m *SequenceMatcher) QuickRatio() float64 {
	// viewing a and b as multisets, set matches to the cardinality
	// of their intersection; this counts the number of matches
	// without regard to order, so is clearly an upper bound
	if m.fullBCount == nil {
		m.fullBCount = map[string]int{}
		for _, s := range m.bKeys {
			m.fullBCount[s]++
		}
	}

	// avail[x] is the number of times x appears in 'b' less the
	// number of times we've seen it in 'a' so far ... kinda
	avail := map[string]int{}
	matches := 0
	for _, s := range m.aKeys {
		n, ok := avail[s]
		if !ok {
			n = m.fullBCount[s]
		}
		avail[s] = n - 1
		if n > 0 {
			matches++
		}
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// Return an upper bound on ratio() very quickly.
//
// This isn't defined beyond that it is an upper bound on .Ratio(), and
// is faster to compute than either .Ratio() or .QuickRatio().
func (m *SequenceMatcher) RealQuickRatio() float64 {
	la, lb := len(m.a), len(m.b)
	return calculateRatio(min(la, lb), la+lb)
}
