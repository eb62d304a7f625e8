package display

import (
	"fmt"
	"strings"
)

// FormatArrow renders an old/new name pair for log lines. Names containing
// whitespace are quoted so the arrow stays unambiguous.
func FormatArrow(oldName, newName string) string {
	return quoteName(oldName) + " -> " + quoteName(newName)
}

func quoteName(name string) string {
	if strings.ContainsAny(name, " \t") {
		return fmt.Sprintf("%q", name)
	}
	return name
}

// FormatCount returns "<n> <noun>" with the plural form chosen by n
// (e.g. FormatCount(3, "entry", "entries") -> "3 entries").
func FormatCount(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// FormatKind returns a short label for an entry kind.
func FormatKind(isDir bool) string {
	if isDir {
		return "dir"
	}
	return "file"
}
