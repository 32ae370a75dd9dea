package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/codinganovel/linediff/difflib"
)

// NDiff returns a basic human-readable delta between a and b (lists of lines),
// using prefixes similar to Python's difflib.ndiff:
//
//	"- " line unique to sequence a
//	"+ " line unique to sequence b
//	"  " line common to both sequences
//
// This basic version does not include intraline "? " guide lines.
func NDiff(a, b []string) []string {
	return NDiffWith(a, b, NDiffOptions{})
}

// NDiffOptions customizes NDiffWith behavior.
//
// LineJunk: optional filter to treat some lines as ignorable during matching
// (e.g., blank lines). When set, it's passed to the line-level matcher.
// CharJunk: optional filter for intraline comparison to ignore characters
// (e.g., spaces or tabs); defaults to IsCharacterJunk if nil.
// Intraline: when true, include "? " guide lines showing intraline changes.
type NDiffOptions struct {
	LineJunk  func(string) bool
	CharJunk  func(rune) bool
	Intraline bool
}

// NDiffWith returns a human-readable delta between a and b with options.
func NDiffWith(a, b []string, opts NDiffOptions) []string {
	d := &Differ{LineJunk: opts.LineJunk, CharJunk: opts.CharJunk}
	if opts.Intraline {
		return d.Compare(a, b)
	}
	return delta(a, b, junkMatcher(a, b, opts.LineJunk).GetOpCodes(), nil)
}

// junkMatcher returns a matcher with an optional junk filter. It panics if
// the matcher options are rejected.
func junkMatcher(a, b []string, isJunk func(string) bool) *difflib.SequenceMatcher {
	return mustMatcher(difflib.NewMatcher(a, b, difflib.WithJunk(isJunk)))
}

func mustMatcher(m *difflib.SequenceMatcher, err error) *difflib.SequenceMatcher {
	if err != nil {
		panic(fmt.Sprintf("render: %v", err))
	}
	return m
}

// Restore reconstructs one of the original sequences (1 or 2) from an ndiff
// style delta (as produced by NDiff). Lines starting with "? " are ignored if
// present. Returns nil if 'which' is not 1 or 2.
func Restore(delta []string, which int) []string {
	if which != 1 && which != 2 {
		return nil
	}
	keepPrefix := "  "
	wantPrefix := "- "
	if which == 2 {
		wantPrefix = "+ "
	}
	var out []string
	for _, d := range delta {
		if len(d) < 2 {
			continue
		}
		prefix := d[:2]
		if prefix == keepPrefix || prefix == wantPrefix {
			out = append(out, d[2:])
		}
	}
	return out
}

// Differ produces human-readable deltas from sequences of lines of text.
// It can emit intraline "? " guide lines highlighting character-level changes.
type Differ struct {
	// LineJunk filters ignorable lines.
	LineJunk func(string) bool
	// CharJunk filters ignorable characters when computing intraline hints.
	CharJunk func(rune) bool
}

// Compare returns an ndiff-style delta including intraline hints for replacements.
// Prefixes:
//
//	"- " line unique to sequence a
//	"+ " line unique to sequence b
//	"  " line common to both sequences
//	"? " intraline difference guides (only for replacements)
func (d *Differ) Compare(a, b []string) []string {
	return delta(a, b, junkMatcher(a, b, d.LineJunk).GetOpCodes(), d)
}

// delta writes ops as ndiff lines. With a Differ, paired replaced lines get
// guide lines.
func delta(a, b []string, ops []difflib.OpCode, d *Differ) []string {
	var out []string
	for _, op := range ops {
		switch op.Tag {
		case difflib.TagEqual:
			for _, line := range a[op.I1:op.I2] {
				out = append(out, "  "+line)
			}
		case difflib.TagDelete, difflib.TagInsert, difflib.TagIgnore:
			for _, line := range a[op.I1:op.I2] {
				out = append(out, "- "+line)
			}
			for _, line := range b[op.J1:op.J2] {
				out = append(out, "+ "+line)
			}
		case difflib.TagReplace:
			as := a[op.I1:op.I2]
			bs := b[op.J1:op.J2]
			n := 0
			if d != nil {
				// Pair up lines greedily; remaining are treated as pure inserts/deletes.
				n = min(len(as), len(bs))
			}
			for i := range n {
				atags, btags := intralineTags(as[i], bs[i], d.CharJunk)
				out = append(out, "- "+as[i])
				if atags != "" {
					out = append(out, "? "+atags+"\n")
				}
				out = append(out, "+ "+bs[i])
				if btags != "" {
					out = append(out, "? "+btags+"\n")
				}
			}
			for _, line := range as[n:] {
				out = append(out, "- "+line)
			}
			for _, line := range bs[n:] {
				out = append(out, "+ "+line)
			}
		}
	}
	return out
}

// intralineTags returns tag strings (without trailing newline) for aline and
// bline, using '^' for replacements, '-' for deletions (aline only) and '+'
// for insertions (bline only). One tag is written per character.
func intralineTags(aline, bline string, charJunk func(rune) bool) (string, string) {
	aline = strings.TrimSuffix(aline, "\n")
	bline = strings.TrimSuffix(bline, "\n")

	if charJunk == nil {
		charJunk = difflib.IsCharacterJunk
	}
	isJunk := func(s string) bool {
		r, _ := utf8.DecodeRuneInString(s)
		return charJunk(r)
	}
	sm := junkMatcher(difflib.SplitChars(aline), difflib.SplitChars(bline), isJunk)

	var atags, btags strings.Builder
	for _, oc := range sm.GetOpCodes() {
		var ac, bc byte
		switch oc.Tag {
		case difflib.TagEqual:
			ac, bc = ' ', ' '
		case difflib.TagReplace:
			ac, bc = '^', '^'
		case difflib.TagDelete:
			ac = '-'
		case difflib.TagInsert:
			bc = '+'
		}
		if ac != 0 {
			atags.WriteString(strings.Repeat(string(ac), oc.I2-oc.I1))
		}
		if bc != 0 {
			btags.WriteString(strings.Repeat(string(bc), oc.J2-oc.J1))
		}
	}
	aTag := strings.TrimRight(atags.String(), " ")
	bTag := strings.TrimRight(btags.String(), " ")
	return aTag, bTag
}

// Delta renders a diff as an ndiff delta, one line per output line.
// Comparison options of the Diff apply to the line matching.
type Delta struct {
	// Intraline adds "? " guide lines under paired replaced lines.
	Intraline bool
	CharJunk  func(rune) bool
}

// Render implements Renderer. Nothing is written for identical versions.
func (r Delta) Render(w io.Writer, d *difflib.Diff) error {
	if d.IsIdentical() {
		return nil
	}
	var differ *Differ
	if r.Intraline {
		differ = &Differ{CharJunk: r.CharJunk}
	}
	for _, line := range delta(d.Version1(), d.Version2(), d.OpCodes(), differ) {
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}
