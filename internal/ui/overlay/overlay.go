// Package overlay draws one rendered screen over another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose draws top over base. On each line, the span between the first and
// last visible non-space cell of top replaces base; blank lines of top leave
// base untouched. Both are ANSI-aware and width is the screen width.
func Compose(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		start := len(plain) - len(trimmed)
		end := start + ansi.StringWidth(strings.TrimRight(trimmed, " "))

		b := baseLines[i]
		if w := ansi.StringWidth(b); w < width {
			b += strings.Repeat(" ", width-w)
		}
		baseLines[i] = prefix(b, start) + ansi.Cut(line, start, end) + suffix(b, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// A wide character split by either edge is dropped by ansi.Cut; the missing
// cells are filled with spaces on the side of the edge.
func prefix(s string, n int) string {
	out := ansi.Cut(s, 0, n)
	return out + strings.Repeat(" ", max(n-ansi.StringWidth(out), 0))
}

func suffix(s string, from, width int) string {
	if from >= width {
		return ""
	}
	out := ansi.Cut(s, from, width)
	return strings.Repeat(" ", max(width-from-ansi.StringWidth(out), 0)) + out
}
