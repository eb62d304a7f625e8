// Package caps implements first-letter capitalization of directory entry
// names.
//
// Only the first rune is mapped to upper case; the remainder of the name is
// never touched. Names whose first rune has no upper-case form (digits,
// punctuation, CJK) come back unchanged, as do empty and malformed names.
package caps

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize returns name with its first rune upper-cased via the standard
// Unicode case mapping. Names that would not change are returned as-is.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || (r == utf8.RuneError && size == 1) {
		// Empty or not valid UTF-8; leave it alone.
		return name
	}
	u := unicode.ToUpper(r)
	if u == r {
		return name
	}
	return string(u) + name[size:]
}

// Changed reports whether capitalizing name would alter it.
func Changed(name string) bool {
	return Capitalize(name) != name
}
