package prefdoc

import (
	"strings"
	"unicode/utf8"
)

// Text values are byte strings, e.g. a Latin-1 ROM name read off a FAT
// card. XML 1.0 can carry neither invalid UTF-8 nor most control
// characters, so each such byte b is written as the private-use rune
// rawBase+b and turned back into b when the document is applied. Runes
// already in the rawBase block are written byte by byte the same way, which
// keeps the mapping reversible for every string.
const (
	rawBase = 0xF700
	rawLast = rawBase + 0xFF
)

// needsRaw reports whether the rune r, decoded from size bytes, cannot be
// written as itself.
func needsRaw(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return true
	case r < 0x20, r == 0x7F:
		return true
	case r >= rawBase && r <= rawLast:
		return true
	}
	return false
}

// EscapeText returns s in a form that survives an XML attribute unchanged.
// Printable UTF-8 comes out as is.
func EscapeText(s string) string {
	clean := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if needsRaw(r, size) {
			clean = false
			break
		}
		i += size
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !needsRaw(r, size) {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		for j := 0; j < size; j++ {
			b.WriteRune(rawBase + rune(s[i+j]))
		}
		i += size
	}
	return b.String()
}

// UnescapeText reverses EscapeText.
func UnescapeText(s string) string {
	if !strings.ContainsFunc(s, func(r rune) bool { return r >= rawBase && r <= rawLast }) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= rawBase && r <= rawLast {
			b.WriteByte(byte(r - rawBase))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
