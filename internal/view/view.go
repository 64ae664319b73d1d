// Package view defines the display contract of the player.
//
// The jukebox computes what should be shown and calls a View; it never
// touches a terminal or a widget directly. The TUI implements View by
// forwarding calls as bubbletea messages; tests use Recorder.
package view

// Row is one selectable entry of the song list.
type Row struct {
	Index int // position in the displayed list
	Name  string
	Genre string
}

// NowPlaying describes the song loaded into the player.
type NowPlaying struct {
	Title string
	Genre string
	Cover string // image URL
	Link  string // audio URL
}

// Playlist is the display copy of a backend playlist.
type Playlist struct {
	Name  string
	Songs []string
}

// AlertLevel distinguishes acknowledgments from failures.
type AlertLevel int

const (
	AlertInfo AlertLevel = iota
	AlertError
)

// String returns the level name.
func (l AlertLevel) String() string {
	switch l {
	case AlertInfo:
		return "info"
	case AlertError:
		return "error"
	default:
		return "unknown"
	}
}

// Static messages shown in place of a list.
const (
	MsgNoSongs             = "No songs found."
	MsgSongsFailed         = "Failed to load songs."
	MsgPlaylistsFailed     = "Failed to load playlists"
	MsgEnterPlaylistName   = "Please enter a playlist name."
	MsgPlaylistCreated     = "Playlist created!"
	MsgPlaylistsNoneExists = "No playlists yet."
)

// View receives display updates. Calls may arrive with jukebox locks
// held, so implementations must return promptly and never call back into
// the jukebox.
type View interface {
	// RenderSongs replaces the song list with rows.
	RenderSongs(rows []Row)
	// RenderMessage replaces the song list with a single message.
	RenderMessage(msg string)
	// SetGenres sets the genre filter options; the view adds the "All" entry.
	SetGenres(genres []string)
	// ShowNowPlaying updates title, genre and cover of the loaded song.
	ShowNowPlaying(np NowPlaying)
	// RenderPlaylists replaces the playlist panel.
	RenderPlaylists(playlists []Playlist)
	// RenderPlaylistMessage replaces the playlist panel with a message.
	RenderPlaylistMessage(msg string)
	// Alert shows a transient message to the user.
	Alert(level AlertLevel, msg string)
	// ClearPlaylistInput empties the new-playlist name field.
	ClearPlaylistInput()
}
