// Package render provides width-aware text helpers for the terminal views.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Sanitize drops control characters and invalid UTF-8 from s and turns
// non-breaking spaces into plain ones. Song names come from the backend
// unchecked and must not move the terminal cursor.
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || r == '\u00a0' || (r != '\t' && unicode.IsControl(r)) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\u00a0':
			b.WriteByte(' ')
		case r != '\t' && unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate sanitizes plain text and shortens it to maxWidth cells.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// TruncateStyled shortens text that may carry ANSI styling to maxWidth cells.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, ellipsis)
}

// Pad fills plain text with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fit truncates then pads plain text to exactly width cells.
func Fit(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Width returns the display width of s ignoring ANSI sequences.
func Width(s string) int {
	return ansi.StringWidth(s)
}

// Row places left and right at both ends of a line of width cells, with at
// least one space between them. Left is shortened when both do not fit.
func Row(left, right string, width int) string {
	rw := Width(right)
	if Width(left)+rw+1 > width {
		left = TruncateStyled(left, max(width-rw-1, 0))
	}
	gap := max(width-Width(left)-rw, 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator returns a horizontal rule of width cells.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
