// Package difflib compares sequences of strings and produces grouped
// op-codes describing how to turn one into the other.
//
// The engine follows Python's difflib.SequenceMatcher: find the longest
// contiguous junk-free matching block, then apply the same idea to the pieces
// on either side of it. This does not yield minimal edit sequences, but does
// tend to yield matches that "look right" to people.
//
// On top of the matcher the package provides:
//
// - op-code grouping with configurable context (GetGroupedOpCodes, Hunks)
//
// - three similarity ratios with different speed/accuracy tradeoffs
//
// - character and word level marking of replaced lines (MarkOuter, MarkInner)
//
// - a Diff facade that renderers consume (see package render)
//
// Comparison options (whitespace, case, empty/blank line handling) only
// affect comparison decisions; the stored sequences are never modified.
package difflib
