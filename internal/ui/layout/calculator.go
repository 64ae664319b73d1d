// Package layout computes panel sizes from the terminal size.
package layout

// NarrowThreshold is the terminal width below which the playlists panel is
// stacked under the song list instead of beside it.
const NarrowThreshold = 100

// Heights are the fixed rows taken around the content area.
type Heights struct {
	Header    int
	Status    int
	PlayerBar int
}

// ContentHeight returns the rows left for the song and playlists panels.
func ContentHeight(windowHeight int, h Heights) int {
	return max(windowHeight-h.Header-h.Status-h.PlayerBar, 0)
}

// IsNarrow reports whether the window is too narrow for side-by-side panels.
func IsNarrow(width int) bool {
	return width < NarrowThreshold
}

// SongsSize returns the size of the song list panel.
func SongsSize(width, contentHeight int, playlistsVisible bool) (w, h int) {
	switch {
	case !playlistsVisible:
		return width, contentHeight
	case IsNarrow(width):
		return width, contentHeight * 2 / 3
	default:
		return width - width/3, contentHeight
	}
}

// PlaylistsSize returns the size of the playlists panel, or zero when hidden.
func PlaylistsSize(width, contentHeight int, playlistsVisible bool) (w, h int) {
	if !playlistsVisible {
		return 0, 0
	}
	sw, sh := SongsSize(width, contentHeight, true)
	if IsNarrow(width) {
		return width, contentHeight - sh
	}
	return width - sw, contentHeight
}

// PlayerBarRow returns the 1-based row where the player bar starts.
func PlayerBarRow(windowHeight, playerBarHeight int) int {
	return windowHeight - playerBarHeight + 1
}

// CoverPosition returns the 1-based cell where the cover is placed inside an
// expanded player bar: below the top border, after the border and padding.
func CoverPosition(windowHeight, playerBarHeight int) (row, col int) {
	return PlayerBarRow(windowHeight, playerBarHeight) + 1, 3
}
