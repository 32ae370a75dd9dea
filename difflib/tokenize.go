package difflib

import (
	"fmt"
	"regexp"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/words"
)

// Tokenizer splits a line into the elements compared by inline marking.
// Concatenating the tokens must give back the line.
type Tokenizer func(string) []string

// DefaultWordPattern splits into words, single punctuation characters and
// single whitespace characters.
const DefaultWordPattern = `\w+|[^\w\s]|\s`

// SplitChars splits s into grapheme clusters, so a combining sequence or an
// emoji with modifiers is compared as one character.
func SplitChars(s string) []string {
	out := make([]string, 0, len(s))
	iter := graphemes.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// SplitWords splits s on Unicode word boundaries (UAX #29). Runs of
// horizontal whitespace stay together.
func SplitWords(s string) []string {
	var out []string
	iter := words.FromString(s)
	for iter.Next() {
		out = append(out, iter.Value())
	}
	return out
}

// RegexpTokenizer returns a Tokenizer yielding the matches of pattern. Text
// between two matches is returned as a token of its own so that nothing of
// the line is lost.
func RegexpTokenizer(pattern string) (Tokenizer, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: tokenizer pattern: %v", ErrInvalidArgument, err)
	}
	return func(s string) []string {
		var out []string
		last := 0
		for _, loc := range re.FindAllStringIndex(s, -1) {
			if loc[0] == loc[1] {
				continue
			}
			if loc[0] > last {
				out = append(out, s[last:loc[0]])
			}
			out = append(out, s[loc[0]:loc[1]])
			last = loc[1]
		}
		if last < len(s) {
			out = append(out, s[last:])
		}
		return out
	}, nil
}
