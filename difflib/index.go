package difflib

import "strings"

// Sequences at least this long get popular elements purged from the index.
const (
	popularMinLength = 200
	popularPercent   = 100
)

// chainB builds the b2j index for the second sequence and classifies popular
// and junk keys.
func (m *SequenceMatcher) chainB() {
	n := len(m.bKeys)
	b2j := map[string][]int{}
	popular := map[string]struct{}{}
	for j, s := range m.bKeys {
		if _, ok := popular[s]; ok {
			continue
		}
		indices := b2j[s]
		if n >= popularMinLength && len(indices)*popularPercent > n {
			// Too common to be a useful anchor; drop it for good.
			popular[s] = struct{}{}
			delete(b2j, s)
			continue
		}
		b2j[s] = append(indices, j)
	}

	// Purge junk elements, popular ones included.
	junk := map[string]struct{}{}
	if m.opts.isJunk != nil {
		for s := range popular {
			if m.opts.isJunk(s) {
				junk[s] = struct{}{}
				delete(popular, s)
			}
		}
		for s := range b2j {
			if m.opts.isJunk(s) {
				junk[s] = struct{}{}
				delete(b2j, s)
			}
		}
	}

	m.b2j = b2j
	m.bPopular = popular
	m.bJunk = junk
	if len(popular) > 0 || len(junk) > 0 {
		m.opts.logger.Debug("indexed second sequence",
			"length", n, "keys", len(b2j), "popular", len(popular), "junk", len(junk))
	}
}

func (m *SequenceMatcher) isBJunk(s string) bool {
	_, ok := m.bJunk[s]
	return ok
}

// IsLineJunk reports whether a line is ignorable: blank or containing only a single '#',
// possibly surrounded by whitespace. Trailing "\n" is ignored for the purpose of this check.
// This mirrors Python difflib's IS_LINE_JUNK default.
func IsLineJunk(line string) bool {
	t := strings.TrimSpace(strings.TrimSuffix(line, "\n"))
	return t == "" || t == "#"
}

// IsCharacterJunk reports whether a rune is ignorable: a space or a tab.
// This mirrors Python difflib's IS_CHARACTER_JUNK default.
func IsCharacterJunk(r rune) bool { return r == ' ' || r == '\t' }
