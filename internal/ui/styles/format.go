package styles

import "github.com/mattn/go-runewidth"

// TruncateString truncates a string to fit within maxWidth cells, adding an
// ellipsis if needed. Wide runes count as two cells.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// TruncateLeft keeps the tail of s, which is the informative part of a
// long prompt path, prefixing "..." when cells were dropped.
func TruncateLeft(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.TruncateLeft(s, runewidth.StringWidth(s)-maxWidth, "")
	}
	return runewidth.TruncateLeft(s, runewidth.StringWidth(s)-maxWidth+3, "...")
}
