package cli

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/view"
)

type fakeClient struct {
	mu        sync.Mutex
	songs     []api.Song
	playlists []api.Playlist
	err       error
	searches  []string
	creates   []string
}

func (f *fakeClient) Songs(context.Context) ([]api.Song, error) {
	return f.songs, f.err
}

func (f *fakeClient) SearchByName(_ context.Context, name string) ([]api.Song, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, name)
	if f.err != nil {
		return nil, f.err
	}
	return f.songs[:1], nil
}

func (f *fakeClient) Playlists(context.Context) ([]api.Playlist, error) {
	return f.playlists, f.err
}

func (f *fakeClient) CreatePlaylist(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, name)
	return f.err
}

func run(t *testing.T, client *fakeClient, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.App{
		Name: "tunes",
		Commands: Commands(func(*cli.Context) (*Env, error) {
			return &Env{Client: client, Out: &out}, nil
		}),
		ExitErrHandler: func(*cli.Context, error) {},
	}
	err := app.RunContext(t.Context(), append([]string{"tunes"}, args...))
	return out.String(), err
}

func catalogSongs() []api.Song {
	return []api.Song{
		{Name: "Alpha", Type: "Rock"},
		{Name: "Beta", Type: "Pop"},
		{Name: "Gamma", Type: "rock"},
	}
}

func TestSongs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all",
			args: []string{"songs"},
			want: "1  Alpha  Rock\n2  Beta   Pop\n3  Gamma  rock\n",
		},
		{
			name: "genre ignores case",
			args: []string{"songs", "--genre", "ROCK"},
			want: "1  Alpha  Rock\n2  Gamma  rock\n",
		},
		{
			name: "no match",
			args: []string{"songs", "-g", "jazz"},
			want: view.MsgNoSongs + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, &fakeClient{songs: catalogSongs()}, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSongs_Error(t *testing.T) {
	out, err := run(t, &fakeClient{err: errors.New("boom")}, "songs")

	require.Error(t, err)
	assert.Empty(t, out)
	var exit cli.ExitCoder
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 1, exit.ExitCode())
	assert.Equal(t, "Failed to load songs: boom", err.Error())
}

func TestSearch(t *testing.T) {
	client := &fakeClient{songs: catalogSongs()}

	out, err := run(t, client, "search", "al", "pha")
	require.NoError(t, err)
	assert.Equal(t, "1  Alpha  Rock\n", out)
	assert.Equal(t, []string{"al pha"}, client.searches)
}

func TestSearch_BlankPrintsCatalog(t *testing.T) {
	client := &fakeClient{songs: catalogSongs()}

	out, err := run(t, client, "search", " ")
	require.NoError(t, err)
	assert.Contains(t, out, "Gamma")
	assert.Empty(t, client.searches)
}

func TestPlaylists(t *testing.T) {
	client := &fakeClient{playlists: []api.Playlist{
		{Name: "Road", Songs: []api.Song{{Name: "Alpha"}, {Name: "Beta"}}},
		{Name: "Empty"},
	}}

	out, err := run(t, client, "playlists")
	require.NoError(t, err)
	assert.Equal(t, "Road (2)\n  - Alpha\n  - Beta\nEmpty (0)\n", out)

	out, err = run(t, &fakeClient{}, "playlists")
	require.NoError(t, err)
	assert.Equal(t, view.MsgPlaylistsNoneExists+"\n", out)
}

func TestPlaylistCreate(t *testing.T) {
	client := &fakeClient{}

	out, err := run(t, client, "playlist", "create", "Road", "Trip")
	require.NoError(t, err)
	assert.Equal(t, view.MsgPlaylistCreated+"\n", out)
	assert.Equal(t, []string{"Road Trip"}, client.creates)
}

func TestPlaylistCreate_BlankNameSendsNothing(t *testing.T) {
	client := &fakeClient{}

	_, err := run(t, client, "playlist", "create", "   ")
	require.Error(t, err)
	assert.Equal(t, view.MsgEnterPlaylistName, err.Error())
	assert.Empty(t, client.creates)
}

func TestPlaylistCreate_Error(t *testing.T) {
	client := &fakeClient{err: errors.New("conflict")}

	_, err := run(t, client, "playlist", "create", "Road")
	require.Error(t, err)
	assert.Equal(t, "Failed to create playlist 'Road': conflict", err.Error())
}
