// Package catalog holds the player state: the fetched catalog, the list
// loaded for playback and the position within it.
//
// State is a value. Operations return a new State and never mutate the
// receiver, so callers can hand snapshots around without copying.
package catalog

import "github.com/llehouerou/tunes/internal/api"

// State is the player state.
//
// Songs is the full catalog as last fetched. Queue is the list last loaded
// for playback (the catalog, or whatever list the user picked a row from).
// Index points into Queue; it is -1 when Queue is empty.
type State struct {
	Songs []api.Song
	Queue []api.Song
	Index int
}

// New returns a state whose catalog and queue are songs, positioned on the
// first song.
func New(songs []api.Song) State {
	s := State{Songs: songs, Queue: songs, Index: -1}
	if len(songs) > 0 {
		s.Index = 0
	}
	return s
}

// Current returns the song at Index.
func (s State) Current() (api.Song, bool) {
	if s.Index < 0 || s.Index >= len(s.Queue) {
		return api.Song{}, false
	}
	return s.Queue[s.Index], true
}

// IsEmpty reports whether nothing is loaded for playback.
func (s State) IsEmpty() bool {
	return len(s.Queue) == 0
}

// Next advances circularly. It reports false, leaving the state unchanged,
// when the queue is empty.
func (s State) Next() (State, api.Song, bool) {
	return s.step(1)
}

// Prev moves back circularly. It reports false, leaving the state
// unchanged, when the queue is empty.
func (s State) Prev() (State, api.Song, bool) {
	return s.step(-1)
}

func (s State) step(delta int) (State, api.Song, bool) {
	n := len(s.Queue)
	if n == 0 {
		return s, api.Song{}, false
	}
	// Index may be -1 or stale after a queue swap; normalize before stepping.
	i := ((s.Index+delta)%n + n) % n
	s.Index = i
	return s, s.Queue[i], true
}

// Select makes list the playback queue and positions on index.
// It reports false, leaving the state unchanged, when index is out of range.
func (s State) Select(list []api.Song, index int) (State, api.Song, bool) {
	if index < 0 || index >= len(list) {
		return s, api.Song{}, false
	}
	s.Queue = list
	s.Index = index
	return s, list[index], true
}
