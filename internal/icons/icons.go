// Package icons selects the glyphs drawn next to songs, genres and
// playlists.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Song     string
	Genre    string
	Playlist string
	Search   string
}

var (
	nerdIcons = Icons{
		Song:     "\uf001 ",     // nf-fa-music
		Genre:    "\uf02c ",     // nf-fa-tags
		Playlist: "\U000f0cb8 ", // nf-md-playlist_music
		Search:   "\uf002 ",     // nf-fa-search
	}

	unicodeIcons = Icons{
		Song:     "🎵 ",
		Genre:    "🏷 ",
		Playlist: "📋 ",
		Search:   "🔍 ",
	}

	noneIcons = Icons{
		Search: "/ ",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Enabled reports whether names are decorated.
func Enabled() bool {
	return current != noneIcons
}

// FormatSong formats a song name with the appropriate icon.
func FormatSong(name string) string {
	return current.Song + name
}

// FormatGenre formats a genre label with the appropriate icon.
func FormatGenre(name string) string {
	return current.Genre + name
}

// FormatPlaylist formats a playlist name with the appropriate icon.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// SearchPrompt returns the prompt of the search input.
func SearchPrompt() string {
	return current.Search
}
