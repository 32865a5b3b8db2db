package internal

import "github.com/mattn/go-runewidth"

// Width returns the display cell width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Pad returns s padded with spaces on the right to exactly width cells,
// truncating when s is wider. A non-positive width yields the empty string.
func Pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}

// Window returns the width-cell window of s starting offset cells in,
// padded with spaces to exactly width cells.
func Window(s string, offset, width int) string {
	if offset > 0 {
		s = runewidth.TruncateLeft(s, offset, "")
	}
	return Pad(s, width)
}
