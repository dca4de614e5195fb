package draw

import "github.com/mattn/go-runewidth"

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// CenterCol returns the 0-based column that centers s in a row of the given width.
func CenterCol(width int, s string) int {
	return max((width-StringWidth(s))/2, 0)
}

// Truncate shortens s to fit within width columns.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
