package difflib

import "sort"

// GetCloseMatches returns a list (up to n) of the best "good enough" matches
// from possibilities for the given word. Only candidates scoring at least
// cutoff (in [0.0, 1.0]) are returned, ordered by similarity descending and
// then by original order for ties. If n <= 0 or cutoff is outside [0,1],
// it returns an empty slice.
//
// Words are compared grapheme by grapheme. Candidates are filtered with the
// fastest similarity first and only scored exactly when the cheaper upper
// bounds pass the cutoff.
func GetCloseMatches(word string, possibilities []string, n int, cutoff float64) []string {
	if n <= 0 || cutoff < 0.0 || cutoff > 1.0 {
		return nil
	}

	m := SequenceMatcher{opts: defaultOptions()}
	m.SetSeqs(nil, SplitChars(word))

	type cand struct {
		score float64
		idx   int
		val   string
	}
	results := make([]cand, 0, len(possibilities))
	for i, p := range possibilities {
		m.SetSeq1(SplitChars(p))
		if m.Similarity(SimilarityFastest) < cutoff || m.Similarity(SimilarityFast) < cutoff {
			continue
		}
		if s := m.Similarity(SimilarityDefault); s >= cutoff {
			results = append(results, cand{score: s, idx: i, val: p})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].idx < results[j].idx // preserve original order on ties
		}
		return results[i].score > results[j].score
	})

	if len(results) > n {
		results = results[:n]
	}
	out := make([]string, len(results))
	for i, c := range results {
		out[i] = c.val
	}
	return out
}
