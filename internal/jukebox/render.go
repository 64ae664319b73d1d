package jukebox

import (
	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/view"
)

// ShowSongs makes songs the displayed list and renders it.
func (j *Jukebox) ShowSongs(songs []api.Song) {
	j.mu.Lock()
	j.displayed = songs
	j.mu.Unlock()

	j.render(songs)
}

func (j *Jukebox) render(songs []api.Song) {
	if len(songs) == 0 {
		j.view.RenderMessage(view.MsgNoSongs)
		return
	}
	j.view.RenderSongs(Rows(songs))
}

// Rows converts songs into list rows indexed by display position.
func Rows(songs []api.Song) []view.Row {
	rows := make([]view.Row, len(songs))
	for i, s := range songs {
		rows[i] = view.Row{Index: i, Name: s.Name, Genre: s.Type}
	}
	return rows
}

// SelectSong makes the displayed list the playback queue and loads its
// i-th song. It reports false when i is not a displayed row.
func (j *Jukebox) SelectSong(i int) bool {
	return j.selectIf(i, func(api.Song) bool { return true })
}

// SelectRow is SelectSong for a row taken from an earlier render. It
// reports false when the displayed list changed and row no longer
// describes the song at its index.
func (j *Jukebox) SelectRow(row view.Row) bool {
	return j.selectIf(row.Index, func(s api.Song) bool {
		return s.Name == row.Name && s.Type == row.Genre
	})
}

func (j *Jukebox) selectIf(i int, match func(api.Song) bool) bool {
	j.mu.Lock()
	st, song, ok := j.state.Select(j.displayed, i)
	if !ok || !match(song) {
		j.mu.Unlock()
		return false
	}
	j.state = st
	j.mu.Unlock()

	j.publishQueue(st)
	j.LoadSong(song)
	return true
}

func (j *Jukebox) publishQueue(st catalog.State) {
	j.forEachSub(func(s *Subscription) { s.sendQueue(QueueChange{Songs: st.Queue, Index: st.Index}) })
}
