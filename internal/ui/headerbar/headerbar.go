// Package headerbar renders the top line: app title, genre filter and search box.
package headerbar

import (
	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

// State is what the header shows.
type State struct {
	Genre  string // "" for all genres
	Search string // rendered search input, or "" when not searching
	Query  string // active query while the input is closed
}

// Render returns the header line for the given width.
func Render(s State, width int) string {
	t := styles.T()
	st := t.S()

	genre := s.Genre
	if genre == "" {
		genre = "All"
	}
	left := styles.Gradient("♪ tunes", t.Accent, t.AccentAlt) +
		st.Subtle.Render("  │  ") +
		st.Muted.Render("genre ") + st.Genre.Render(icons.FormatGenre(render.Sanitize(genre)))

	var right string
	switch {
	case s.Search != "":
		right = s.Search
	case s.Query != "":
		right = st.Muted.Render("search ") + st.Base.Render(render.Sanitize(s.Query))
	default:
		right = st.Subtle.Render("/ search  ? help")
	}
	return render.Row(left, right, width)
}
