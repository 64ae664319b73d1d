package jukebox

import (
	"context"
	"errors"
	"strings"

	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/logging"
	"github.com/llehouerou/tunes/internal/view"
)

// ErrEmptyPlaylistName is returned when a playlist name is blank.
var ErrEmptyPlaylistName = errors.New("playlist name is empty")

// CreatePlaylist creates an empty playlist named name, then refreshes the
// playlist panel. A blank name is rejected with an alert and no request.
func (j *Jukebox) CreatePlaylist(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		j.view.Alert(view.AlertError, view.MsgEnterPlaylistName)
		return ErrEmptyPlaylistName
	}

	if err := j.client.CreatePlaylist(ctx, name); err != nil {
		msg := errmsg.FormatWith(errmsg.OpPlaylistCreate, name, err)
		logging.Error("%s", msg)
		j.view.Alert(view.AlertError, msg)
		return err
	}

	logging.Info("playlists: created %q", name)
	j.view.Alert(view.AlertInfo, view.MsgPlaylistCreated)
	j.view.ClearPlaylistInput()
	// The playlist exists even if the refresh fails; that failure is
	// shown in the panel.
	_ = j.FetchPlaylists(ctx)
	return nil
}

// FetchPlaylists renders every playlist with its song names.
func (j *Jukebox) FetchPlaylists(ctx context.Context) error {
	playlists, err := j.client.Playlists(ctx)
	if err != nil {
		logging.Error("%s", errmsg.Format(errmsg.OpPlaylistsLoad, err))
		j.view.RenderPlaylistMessage(view.MsgPlaylistsFailed)
		return err
	}
	if len(playlists) == 0 {
		j.view.RenderPlaylistMessage(view.MsgPlaylistsNoneExists)
		return nil
	}
	j.view.RenderPlaylists(PlaylistViews(playlists))
	return nil
}

// PlaylistViews converts backend playlists into their display form.
func PlaylistViews(playlists []api.Playlist) []view.Playlist {
	out := make([]view.Playlist, len(playlists))
	for i, pl := range playlists {
		names := make([]string, len(pl.Songs))
		for k, s := range pl.Songs {
			names[k] = s.Name
		}
		out[i] = view.Playlist{Name: pl.Name, Songs: names}
	}
	return out
}
