// Package ui holds layout constants and the base type shared by components.
package ui

const (
	// ScrollMargin is the number of rows kept visible above and below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space taken by a rounded panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space taken by a rounded panel border.
	BorderWidth = 2

	// HeaderHeight is a panel title line plus its separator.
	HeaderHeight = 2

	// PanelOverhead is what a panel takes from its height before list rows.
	PanelOverhead = BorderHeight + HeaderHeight

	// PlaylistsWidthDivisor sets the playlists panel to 1/n of the screen width.
	PlaylistsWidthDivisor = 3

	// MinProgressBarWidth is the narrowest progress bar worth drawing.
	MinProgressBarWidth = 5

	// CoverCols and CoverRows size the cover art in cells.
	CoverCols = 16
	CoverRows = 8
)
