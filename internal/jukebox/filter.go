package jukebox

import "github.com/llehouerou/tunes/internal/catalog"

// FilterGenre shows the catalog songs of genre, compared without case.
// An empty genre shows the whole catalog. The playback queue is left
// alone, so Next and Prev keep walking the list playback started from.
func (j *Jukebox) FilterGenre(genre string) {
	j.mu.Lock()
	j.genre = genre
	songs := catalog.FilterByGenre(j.state.Songs, genre)
	j.mu.Unlock()

	j.ShowSongs(songs)
}
