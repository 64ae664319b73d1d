package jukebox

import (
	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/player"
)

// TrackChange is emitted when a song is loaded into the player.
//
// Emitted by LoadSong, and therefore by SelectSong, Next, Prev, the initial
// catalog load and auto-advance. Playback may not have started yet; a
// StateChange follows once the song is buffered.
type TrackChange struct {
	Song  api.Song
	Index int // position in the playback queue
}

// StateChange is emitted when the player state changes through the jukebox.
type StateChange struct {
	Previous player.State
	Current  player.State
}

// QueueChange is emitted when the playback queue is replaced.
type QueueChange struct {
	Songs []api.Song
	Index int
}

// ErrorEvent is emitted when loading or starting a song fails.
type ErrorEvent struct {
	Operation string // "load" or "play"
	Song      api.Song
	Err       error
}
