package jukebox

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/view"
)

func TestCreatePlaylist_BlankNameIsRejected(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		f := newFixture()

		err := f.jb.CreatePlaylist(context.Background(), name)

		require.ErrorIs(t, err, ErrEmptyPlaylistName)
		assert.Empty(t, f.client.Creates(), "no network call")
		assert.Equal(t, []view.Alert{{Level: view.AlertError, Msg: view.MsgEnterPlaylistName}}, f.view.Alerts())
		assert.Zero(t, f.view.InputClears())
	}
}

func TestCreatePlaylist_Success(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.jb.CreatePlaylist(context.Background(), "  Road trip "))

	assert.Equal(t, []string{"Road trip"}, f.client.Creates())
	assert.Equal(t, []view.Alert{{Level: view.AlertInfo, Msg: view.MsgPlaylistCreated}}, f.view.Alerts())
	assert.Equal(t, 1, f.view.InputClears())
	assert.Equal(t, []view.Playlist{{Name: "Road trip", Songs: []string{}}}, f.view.Playlists())
}

func TestCreatePlaylist_Failure(t *testing.T) {
	f := newFixture()
	f.client.createErr = errors.New("500 Internal Server Error")

	err := f.jb.CreatePlaylist(context.Background(), "Road trip")

	require.Error(t, err)
	alerts := f.view.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, view.AlertError, alerts[0].Level)
	assert.Contains(t, alerts[0].Msg, "Road trip")
	assert.Zero(t, f.view.InputClears())
}

func TestFetchPlaylists(t *testing.T) {
	t.Run("renders nested songs", func(t *testing.T) {
		f := newFixture()
		f.client.playlists = []api.Playlist{
			{Name: "Mix", Songs: []api.Song{songA, songB}},
			{Name: "Empty"},
		}

		require.NoError(t, f.jb.FetchPlaylists(context.Background()))

		assert.Equal(t, []view.Playlist{
			{Name: "Mix", Songs: []string{"A", "B"}},
			{Name: "Empty", Songs: []string{}},
		}, f.view.Playlists())
	})

	t.Run("failure shows message", func(t *testing.T) {
		f := newFixture()
		f.client.listErr = errors.New("timeout")

		require.Error(t, f.jb.FetchPlaylists(context.Background()))
		assert.Equal(t, view.MsgPlaylistsFailed, f.view.PlaylistMessage())
		assert.Empty(t, f.view.Playlists())
	})

	t.Run("none yet", func(t *testing.T) {
		f := newFixture()

		require.NoError(t, f.jb.FetchPlaylists(context.Background()))
		assert.Equal(t, view.MsgPlaylistsNoneExists, f.view.PlaylistMessage())
	})
}

// TestJukebox_AgainstHTTPBackend runs the loader and playlist manager
// against the real API client and a fake backend.
func TestJukebox_AgainstHTTPBackend(t *testing.T) {
	var created []string
	r := mux.NewRouter()
	r.HandleFunc("/api/songs", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"songs": []api.Song{songA, songB}})
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/playlist", func(w http.ResponseWriter, _ *http.Request) {
		pls := make([]api.Playlist, len(created))
		for i, n := range created {
			pls[i] = api.Playlist{Name: n, Songs: []api.Song{}}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"playlists": pls})
	}).Methods(http.MethodGet)
	r.HandleFunc("/api/playlist/create", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Name  string     `json:"name"`
			Songs []api.Song `json:"songs"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Songs == nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		created = append(created, body.Name)
		w.WriteHeader(http.StatusCreated)
	}).Methods(http.MethodPost)
	srv := httptest.NewServer(r)
	defer srv.Close()

	rec := view.NewRecorder()
	p := player.NewMock()
	jb := New(api.New(srv.URL+"/api/songs", srv.URL+"/api/playlist"), rec, p, DefaultOptions())
	ctx := context.Background()

	require.NoError(t, jb.LoadCatalog(ctx))
	assert.Equal(t, []string{"A", "B"}, rec.RowNames())
	assert.Equal(t, songA.Link, p.LastLoad())

	require.NoError(t, jb.CreatePlaylist(ctx, "Road trip"))
	assert.Equal(t, []string{"Road trip"}, created)
	require.Len(t, rec.Playlists(), 1)
	assert.Equal(t, "Road trip", rec.Playlists()[0].Name)
}
