// Package slug derives URL-safe identifiers from free text and disambiguates
// collisions by appending numeric suffixes.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make lowercases text, strips diacritics and collapses every run of
// non-alphanumeric characters into a single hyphen. Leading and trailing
// hyphens are trimmed, so Make("  Café au Lait! ") == "cafe-au-lait".
func Make(text string) string {
	plain, _, err := transform.String(stripMarks, text)
	if err != nil {
		plain = text
	}
	plain = strings.ToLower(strings.TrimSpace(plain))

	var b strings.Builder
	b.Grow(len(plain))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range plain {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// EnsureUnique returns base if taken(base) is false, otherwise the first of
// base-1, base-2, ... that is free. The probe is single-pass: once a free
// candidate is found it is returned immediately.
func EnsureUnique(base string, taken func(string) bool) string {
	candidate := base
	for counter := 1; taken(candidate); counter++ {
		candidate = base + "-" + strconv.Itoa(counter)
	}
	return candidate
}
