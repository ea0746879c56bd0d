// Package segmenter splits text into bounded-length segments for translation.
//
// Length is measured in UTF-16 code units, the unit the translation service
// limits on. A character outside the Basic Multilingual Plane (most emoji)
// counts as two units and is never split across segments.
package segmenter

import "unicode/utf16"

// DefaultMaxLength is the default maximum segment length in UTF-16 code units.
// The statistical translation backend truncates inputs past this size.
const DefaultMaxLength = 512

// Split splits text into consecutive segments of at most maxLength UTF-16
// code units. Splits are purely positional (mid-word splits are expected) and
// the concatenation of all segments always equals text.
// Empty text yields no segments.
//
// A segment only exceeds maxLength when maxLength is 1 and the segment is a
// single two-unit character.
func Split(text string, maxLength int) []string {
	if len(text) == 0 {
		return nil
	}

	segments := make([]string, 0, Count(text, maxLength))
	start := 0
	walk(text, maxLength, func(cut int) {
		segments = append(segments, text[start:cut])
		start = cut
	})

	// Flush the trailing segment
	return append(segments, text[start:])
}

// Count returns the number of segments Split would produce for text.
func Count(text string, maxLength int) int {
	if len(text) == 0 {
		return 0
	}
	n := 1
	walk(text, maxLength, func(int) { n++ })
	return n
}

// Units returns the length of text in UTF-16 code units.
func Units(text string) int {
	n := 0
	for _, r := range text {
		n += runeUnits(r)
	}
	return n
}

// walk calls cut with the byte offset of every segment boundary except the
// end of text.
func walk(text string, maxLength int, cut func(int)) {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	units := 0
	for i, r := range text {
		n := runeUnits(r)
		if units > 0 && units+n > maxLength {
			cut(i)
			units = 0
		}
		units += n
	}
}

func runeUnits(r rune) int {
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
