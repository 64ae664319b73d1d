// Package popup renders centered modal dialogs.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/ui/styles"
)

// Dialog is a bordered box with an optional title and footer.
type Dialog struct {
	Title  string
	Body   string
	Footer string
	Width  int // inner width; 0 fits the widest line
}

// Render returns the dialog centered in a termWidth x termHeight area.
// Lines outside the box are blank so the result can be composed over a
// screen with overlay.Compose.
func (d Dialog) Render(termWidth, termHeight int) string {
	st := styles.T().S()

	bodyLines := strings.Split(d.Body, "\n")
	width := d.Width
	if width == 0 {
		width = max(render.Width(d.Title), render.Width(d.Footer))
		for _, l := range bodyLines {
			width = max(width, render.Width(l))
		}
	}
	// Border and padding take four columns, keep one free on each side.
	width = max(min(width, termWidth-6), 1)

	// Title, blank line, blank line, footer and the border take six rows.
	maxBody := max(termHeight-6, 1)
	if len(bodyLines) > maxBody {
		bodyLines = append(bodyLines[:maxBody-1], st.Subtle.Render("…"))
	}

	var lines []string
	if d.Title != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, st.Title.Render(d.Title)), "")
	}
	for _, l := range bodyLines {
		lines = append(lines, render.TruncateStyled(l, width))
	}
	if d.Footer != "" {
		lines = append(lines, "", lipgloss.PlaceHorizontal(width, lipgloss.Center, st.Subtle.Render(d.Footer)))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(0, 1).
		Width(width + 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, box)
}
