// Package app is the terminal front end: a bubbletea program that renders
// what the jukebox pushes through its view and maps keys to jukebox calls.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunes/internal/jukebox"
	"github.com/llehouerou/tunes/internal/view"
)

// Message category interfaces for type-based routing in Update().

// ViewMessage is implemented by messages produced by the Bridge from
// view.View calls.
type ViewMessage interface {
	tea.Msg
	viewMessage()
}

// PlaybackMessage is implemented by messages about the player and cover art.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// LoadingMessage is implemented by results of backend requests and timers.
type LoadingMessage interface {
	tea.Msg
	loadingMessage()
}

// SongsMsg replaces the song list.
type SongsMsg struct{ Rows []view.Row }

// SongsTextMsg replaces the song list with a message.
type SongsTextMsg struct{ Text string }

// GenresMsg sets the genre filter options, without the "All" entry.
type GenresMsg struct{ Genres []string }

// NowPlayingMsg shows the song loaded into the player.
type NowPlayingMsg struct{ Song view.NowPlaying }

// PlaylistsMsg replaces the playlists panel.
type PlaylistsMsg struct{ Playlists []view.Playlist }

// PlaylistsTextMsg replaces the playlists panel with a message.
type PlaylistsTextMsg struct{ Text string }

// AlertMsg shows a transient message in the status line.
type AlertMsg struct {
	Level view.AlertLevel
	Text  string
}

// ClearInputMsg empties the playlist name input.
type ClearInputMsg struct{}

// BridgeClosedMsg is returned once the bridge is closed; nothing more follows.
type BridgeClosedMsg struct{}

func (SongsMsg) viewMessage()         {}
func (SongsTextMsg) viewMessage()     {}
func (GenresMsg) viewMessage()        {}
func (NowPlayingMsg) viewMessage()    {}
func (PlaylistsMsg) viewMessage()     {}
func (PlaylistsTextMsg) viewMessage() {}
func (AlertMsg) viewMessage()         {}
func (ClearInputMsg) viewMessage()    {}
func (BridgeClosedMsg) viewMessage()  {}

// TickMsg is sent every second to refresh progress.
type TickMsg time.Time

// TrackChangedMsg wraps a jukebox track change.
type TrackChangedMsg jukebox.TrackChange

// StateChangedMsg wraps a jukebox state change.
type StateChangedMsg jukebox.StateChange

// PlaybackErrorMsg wraps a jukebox load or play failure.
type PlaybackErrorMsg jukebox.ErrorEvent

// JukeboxClosedMsg is sent when the jukebox subscription ends.
type JukeboxClosedMsg struct{}

// CoverMsg carries the fetched cover image of URL.
type CoverMsg struct {
	URL  string
	Data []byte
	Err  error
}

// NotifiedMsg carries the ID of a sent track notification.
type NotifiedMsg struct{ ID uint32 }

func (TickMsg) playbackMessage()          {}
func (TrackChangedMsg) playbackMessage()  {}
func (StateChangedMsg) playbackMessage()  {}
func (PlaybackErrorMsg) playbackMessage() {}
func (JukeboxClosedMsg) playbackMessage() {}
func (CoverMsg) playbackMessage()         {}
func (NotifiedMsg) playbackMessage()      {}

// CatalogLoadedMsg is sent when the initial catalog request finished.
type CatalogLoadedMsg struct{ Err error }

// PlaylistsLoadedMsg is sent when a playlists request finished.
type PlaylistsLoadedMsg struct{ Err error }

// PlaylistCreatedMsg is sent when a create request finished or was rejected.
type PlaylistCreatedMsg struct {
	Name string
	Err  error
}

// AlertExpiredMsg clears the alert with the same sequence number.
type AlertExpiredMsg struct{ Seq int }

func (CatalogLoadedMsg) loadingMessage()   {}
func (PlaylistsLoadedMsg) loadingMessage() {}
func (PlaylistCreatedMsg) loadingMessage() {}
func (AlertExpiredMsg) loadingMessage()    {}
