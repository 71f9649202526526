// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Sanitize removes control characters (except tab/space) and replaces
// non-breaking spaces. Catalog metadata comes from user uploads and may
// carry anything.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			// Invalid byte
		case r != '\t' && unicode.IsControl(r):
		case r == '\u00a0':
			b.WriteByte(' ')
		default:
			b.WriteString(s[i : i+size])
		}
		i += max(size, 1)
	}
	return b.String()
}

// needsSanitize returns true if the string contains bytes that need sanitizing.
func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := range len(s) {
		b := s[i]
		if b < 0x20 && b != '\t' { // ASCII control chars (except tab)
			return true
		}
		if b == 0x7f {
			return true
		}
		if b == 0xc2 && i+1 < len(s) { // NBSP or C1 controls
			if next := s[i+1]; next == 0xa0 || (next >= 0x80 && next <= 0x9f) {
				return true
			}
		}
	}
	return false
}

// Truncate shortens a string to fit within maxWidth, ending with "…" if cut.
// Uses runewidth for proper handling of wide characters (CJK, emoji).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Pad fills a string with spaces to reach the specified width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fit truncates a string if necessary, then pads to the exact width.
func Fit(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Columns lays cells side by side in equal columns that fill width exactly.
// The last column takes any remainder.
func Columns(width int, cells ...string) string {
	if len(cells) == 0 || width <= 0 {
		return ""
	}
	colWidth := width / len(cells)
	var b strings.Builder
	for i, cell := range cells {
		w := colWidth
		if i == len(cells)-1 {
			w = width - colWidth*(len(cells)-1)
		}
		b.WriteString(Fit(cell, w))
	}
	return b.String()
}

// Row lays left and right content out across width cells with the gap
// between them. Both sides may carry ANSI styling. When they do not fit,
// left is cut first; right is cut only when it alone is too wide.
func Row(left, right string, width int) string {
	rightWidth := ansi.StringWidth(right)
	room := width - rightWidth - 1
	if room <= 0 {
		return ansi.Truncate(right, max(width, 0), "")
	}
	if ansi.StringWidth(left) > room {
		left = ansi.Truncate(left, room, ellipsis)
	}
	gap := width - ansi.StringWidth(left) - rightWidth
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}

// EmptyLine creates an empty line (spaces) of the specified width.
func EmptyLine(width int) string {
	return strings.Repeat(" ", max(width, 0))
}
