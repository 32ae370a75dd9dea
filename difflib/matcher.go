package difflib

import (
	"fmt"
	"slices"
)

func calculateRatio(matches, length int) float64 {
	if length > 0 {
		return 2.0 * float64(matches) / float64(length)
	}
	return 1.0
}

// Match is a matching block: a[A:A+Size] == b[B:B+Size].
type Match struct {
	A    int
	B    int
	Size int
}

// Tag identifies the kind of an OpCode.
type Tag byte

const (
	TagEqual   Tag = 'e'
	TagReplace Tag = 'r'
	TagDelete  Tag = 'd'
	TagInsert  Tag = 'i'
	// TagIgnore marks an insert or delete of empty/blank elements only.
	TagIgnore Tag = 'x'
	// TagOutOfContext spans equal elements left out between two hunks.
	TagOutOfContext Tag = 'o'
)

func (t Tag) String() string {
	switch t {
	case TagEqual:
		return "equal"
	case TagReplace:
		return "replace"
	case TagDelete:
		return "delete"
	case TagInsert:
		return "insert"
	case TagIgnore:
		return "ignore"
	case TagOutOfContext:
		return "outOfContext"
	default:
		return fmt.Sprintf("Tag(%q)", byte(t))
	}
}

// OpCode describes how to turn a[I1:I2] into b[J1:J2].
type OpCode struct {
	Tag Tag
	I1  int
	I2  int
	J1  int
	J2  int
}

// SequenceMatcher compares sequence of strings. The basic
// algorithm predates, and is a little fancier than, an algorithm
// published in the late 1980's by Ratcliff and Obershelp under the
// hyperbolic name "gestalt pattern matching".  The basic idea is to find
// the longest contiguous matching subsequence that contains no "junk"
// elements (R-O doesn't address junk).  The same idea is then applied
// to the pieces of the sequences to the left and to the right
// of the matching subsequence.  This does not yield minimal edit
// sequences, but does tend to yield matches that "look right" to people.
//
// Elements of b that appear more than 1% of the time in a sequence of at
// least 200 elements are "popular": they are not used to seed matches, which
// bounds the cost of sequences dominated by one repeated value (e.g. blank
// lines).
//
// Timing:  Basic R-O is cubic time worst case and quadratic time expected
// case.  SequenceMatcher is quadratic time for the worst case and has
// expected-case behavior dependent in a complicated way on how many
// elements the sequences have in common; best case time is linear.
//
// A SequenceMatcher is not safe for concurrent use while its sequences are
// being replaced. Queries on an unchanged matcher are idempotent.
type SequenceMatcher struct {
	opts options

	a     []string
	b     []string
	aKeys []string
	bKeys []string

	b2j      map[string][]int
	bJunk    map[string]struct{}
	bPopular map[string]struct{}

	matchingBlocks []Match
	opCodes        []OpCode
	fullBCount     map[string]int
}

// NewMatcher returns a matcher comparing a against b. It fails with
// ErrInvalidArgument when an option is invalid.
func NewMatcher(a, b []string, opts ...Option) (*SequenceMatcher, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	m := SequenceMatcher{opts: o}
	m.SetSeqs(a, b)
	return &m, nil
}

// Set two sequences to be compared.
func (m *SequenceMatcher) SetSeqs(a, b []string) {
	m.SetSeq1(a)
	m.SetSeq2(b)
}

// Set the first sequence to be compared. The second sequence to be compared is
// not changed.
//
// SequenceMatcher computes and caches detailed information about the second
// sequence, so if you want to compare one sequence S against many sequences,
// use .SetSeq2(s) once and call .SetSeq1(x) repeatedly for each of the other
// sequences.
func (m *SequenceMatcher) SetSeq1(a []string) {
	m.a = a
	m.aKeys = m.opts.keys(a)
	m.matchingBlocks = nil
	m.opCodes = nil
}

// Set the second sequence to be compared. The first sequence to be compared is
// not changed.
func (m *SequenceMatcher) SetSeq2(b []string) {
	m.b = b
	m.bKeys = m.opts.keys(b)
	m.matchingBlocks = nil
	m.opCodes = nil
	m.fullBCount = nil
	m.chainB()
}

// FindLongestMatch finds the longest matching block in a[alo:ahi] and
// b[blo:bhi]. See findLongestMatch for the tie-break rules. Bounds outside
// the sequences return ErrOutOfRange.
func (m *SequenceMatcher) FindLongestMatch(alo, ahi, blo, bhi int) (Match, error) {
	if alo < 0 || blo < 0 || ahi < alo || bhi < blo || ahi > len(m.a) || bhi > len(m.b) {
		return Match{}, fmt.Errorf("%w: a[%d:%d] b[%d:%d] with len(a)=%d len(b)=%d",
			ErrOutOfRange, alo, ahi, blo, bhi, len(m.a), len(m.b))
	}
	return m.findLongestMatch(alo, ahi, blo, bhi), nil
}

// Find longest matching block in a[alo:ahi] and b[blo:bhi].
//
// Return (i,j,k) such that a[i:i+k] is equal to b[j:j+k], where
//
//	alo <= i <= i+k <= ahi
//	blo <= j <= j+k <= bhi
//
// and for all (i',j',k') meeting those conditions,
//
//	k >= k'
//	i <= i'
//	and if i == i', j <= j'
//
// In other words, of all maximal matching blocks, return one that
// starts earliest in a, and of all those maximal matching blocks that
// start earliest in a, return the one that starts earliest in b.
//
// The block is first searched without junk or popular elements, then
// extended as far as possible by equal non-junk elements, and finally by
// equal junk elements on both sides. So the resulting block never matches
// on junk except as identical junk happens to be adjacent to an
// "interesting" match.
//
// If no blocks match, return (alo, blo, 0).
func (m *SequenceMatcher) findLongestMatch(alo, ahi, blo, bhi int) Match {
	// CAUTION:  stripping common prefix or suffix would be incorrect.
	// E.g.,
	//    ab
	//    acab
	// Longest matching block is "ab", but if common prefix is
	// stripped, it's "a" (tied with "b").  UNIX(tm) diff does so
	// strip, so ends up claiming that ab is changed to acab by
	// inserting "ca" in the middle.  That's minimal but unintuitive:
	// "it's obvious" that someone inserted "ac" at the front.
	a, b := m.aKeys, m.bKeys
	besti, bestj, bestsize := alo, blo, 0

	// during an iteration of the loop, j2len[j] = length of longest
	// junk-free match ending with a[i-1] and b[j]
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		// b2j has no junk keys, so the loop is skipped if a[i] is junk
		newj2len := map[int]int{}
		for _, j := range m.b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	// Popular non-junk elements aren't in b2j, so extend the best match
	// over equal non-junk neighbours first.
	for besti > alo && bestj > blo && !m.isBJunk(b[bestj-1]) &&
		a[besti-1] == b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		!m.isBJunk(b[bestj+bestsize]) &&
		a[besti+bestsize] == b[bestj+bestsize] {
		bestsize++
	}

	// Then absorb matching junk on each side.
	for besti > alo && bestj > blo && m.isBJunk(b[bestj-1]) &&
		a[besti-1] == b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		m.isBJunk(b[bestj+bestsize]) &&
		a[besti+bestsize] == b[bestj+bestsize] {
		bestsize++
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}

// span is a pending a[alo:ahi] x b[blo:bhi] range of the block search.
type span struct {
	alo, ahi, blo, bhi int
}

// Return list of triples describing matching subsequences.
//
// Each triple is of the form (i, j, n), and means that
// a[i:i+n] == b[j:j+n].  The triples are monotonically increasing in
// i and in j. It's also guaranteed that if (i, j, n) and (i', j', n') are
// adjacent triples in the list, and the second is not the last triple in the
// list, then i+n != i' or j+n != j'. IOW, adjacent triples never describe
// adjacent equal blocks.
//
// The last triple is a dummy, (len(a), len(b), 0), and is the only
// triple with n==0.
func (m *SequenceMatcher) GetMatchingBlocks() []Match {
	if m.matchingBlocks == nil {
		m.matchingBlocks = m.matchingBlocksWith(popLast)
		m.opts.logger.Debug("matched sequences",
			"lenA", len(m.a), "lenB", len(m.b), "blocks", len(m.matchingBlocks)-1)
	}
	return slices.Clone(m.matchingBlocks)
}

func popLast(queue []span) (span, []span) {
	return queue[len(queue)-1], queue[:len(queue)-1]
}

func popFirst(queue []span) (span, []span) {
	return queue[0], queue[1:]
}

// matchingBlocksWith runs the divide-and-conquer block search using an
// explicit work list; pop decides the processing order. Every range's
// longest match depends only on the range, so the order never changes the
// result.
func (m *SequenceMatcher) matchingBlocksWith(pop func([]span) (span, []span)) []Match {
	la, lb := len(m.a), len(m.b)
	queue := []span{{0, la, 0, lb}}
	var matched []Match
	for len(queue) > 0 {
		var s span
		s, queue = pop(queue)
		match := m.findLongestMatch(s.alo, s.ahi, s.blo, s.bhi)
		i, j, k := match.A, match.B, match.Size
		if k == 0 {
			continue
		}
		matched = append(matched, match)
		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+k < s.ahi && j+k < s.bhi {
			queue = append(queue, span{i + k, s.ahi, j + k, s.bhi})
		}
	}
	slices.SortFunc(matched, func(x, y Match) int {
		if x.A != y.A {
			return x.A - y.A
		}
		if x.B != y.B {
			return x.B - y.B
		}
		return x.Size - y.Size
	})

	// It's possible that we have adjacent equal blocks in the
	// matching blocks list now.
	nonAdjacent := []Match{}
	i1, j1, k1 := 0, 0, 0
	for _, b := range matched {
		// Is this block adjacent to i1, j1, k1?
		i2, j2, k2 := b.A, b.B, b.Size
		if i1+k1 == i2 && j1+k1 == j2 {
			// Yes, so collapse them -- this just increases the length of
			// the first block by the length of the second, and the first
			// block so lengthened remains the block to compare against.
			k1 += k2
		} else {
			// Not adjacent.  Remember the first block (k1==0 means it's
			// the dummy we started with), and make the second block the
			// new block to compare against.
			if k1 > 0 {
				nonAdjacent = append(nonAdjacent, Match{i1, j1, k1})
			}
			i1, j1, k1 = i2, j2, k2
		}
	}
	if k1 > 0 {
		nonAdjacent = append(nonAdjacent, Match{i1, j1, k1})
	}

	return append(nonAdjacent, Match{la, lb, 0})
}

// Return list of 5-tuples describing how to turn a into b.
//
// Each tuple is of the form (tag, i1, i2, j1, j2).  The first tuple
// has i1 == j1 == 0, and remaining tuples have i1 == the i2 from the
// tuple preceding it, and likewise for j1 == the previous j2.
//
// The tags have these meanings:
//
// TagReplace:  a[i1:i2] should be replaced by b[j1:j2]
//
// TagDelete:   a[i1:i2] should be deleted, j1==j2 in this case.
//
// TagInsert:   b[j1:j2] should be inserted at a[i1:i1], i1==i2 in this case.
//
// TagIgnore:   a delete or insert of only empty/blank elements, reported
// when WithIgnoreLines is set.
//
// TagEqual:    a[i1:i2] == b[j1:j2]
func (m *SequenceMatcher) GetOpCodes() []OpCode {
	if m.opCodes != nil {
		return slices.Clone(m.opCodes)
	}
	i, j := 0, 0
	matching := m.GetMatchingBlocks()
	opCodes := make([]OpCode, 0, len(matching))
	for _, mb := range matching {
		//  invariant:  we've pumped out correct diffs to change
		//  a[:i] into b[:j], and the next matching block is
		//  a[ai:ai+size] == b[bj:bj+size]. So we need to pump
		//  out a diff to change a[i:ai] into b[j:bj], pump out
		//  the matching block, and move (i,j) beyond the match
		ai, bj, size := mb.A, mb.B, mb.Size
		var tag Tag
		switch {
		case i < ai && j < bj:
			tag = TagReplace
		case i < ai:
			tag = TagDelete
			if m.opts.isIgnorable(m.a[i:ai]) {
				tag = TagIgnore
			}
		case j < bj:
			tag = TagInsert
			if m.opts.isIgnorable(m.b[j:bj]) {
				tag = TagIgnore
			}
		}
		if tag != 0 {
			opCodes = append(opCodes, OpCode{tag, i, ai, j, bj})
		}
		i, j = ai+size, bj+size
		// the list of matching blocks is terminated by a
		// sentinel with size 0
		if size > 0 {
			opCodes = append(opCodes, OpCode{TagEqual, ai, i, bj, j})
		}
	}
	m.opCodes = opCodes
	return slices.Clone(m.opCodes)
}
