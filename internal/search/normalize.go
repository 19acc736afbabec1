package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacriticalMarks is the U+0300–U+036F block.
var combiningDiacriticalMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0300, Hi: 0x036f, Stride: 1},
	},
}

// Normalize removes accents and case differences so ingredient text can be
// compared with plain substring checks. The result is in decomposed form with
// the combining diacritical marks stripped, then lower-cased.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Chains carry state, so each call builds its own.
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacriticalMarks)))
	stripped, _, _ := transform.String(stripAccents, text)
	return strings.ToLower(stripped)
}
