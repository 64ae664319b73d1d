package jukebox

import (
	"context"

	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/logging"
	"github.com/llehouerou/tunes/internal/view"
)

// LoadCatalog fetches the song list, shows it, loads its first song and
// publishes the genre options. On failure the list is replaced by a static
// message; there is no retry.
func (j *Jukebox) LoadCatalog(ctx context.Context) error {
	songs, err := j.client.Songs(ctx)
	if err != nil {
		logging.Error("%s", errmsg.Format(errmsg.OpSongsLoad, err))
		j.view.RenderMessage(view.MsgSongsFailed)
		return err
	}
	logging.Info("catalog: loaded %d songs", len(songs))

	j.mu.Lock()
	j.state = catalog.New(songs)
	j.genre = ""
	st := j.state
	j.mu.Unlock()

	j.ShowSongs(songs)
	j.publishQueue(st)

	if first, ok := st.Current(); ok {
		j.LoadSong(first)
	}
	j.view.SetGenres(catalog.Genres(songs))
	return nil
}
