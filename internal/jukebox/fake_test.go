package jukebox

import (
	"context"
	"sync"

	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/view"
)

// fakeClient is an in-memory backend.
type fakeClient struct {
	mu sync.Mutex

	songs     []api.Song
	songsErr  error
	playlists []api.Playlist
	listErr   error
	createErr error
	searchFn  func(ctx context.Context, name string) ([]api.Song, error)

	searches []string
	creates  []string
}

func (f *fakeClient) Songs(context.Context) ([]api.Song, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.songs, f.songsErr
}

func (f *fakeClient) SearchByName(ctx context.Context, name string) ([]api.Song, error) {
	f.mu.Lock()
	f.searches = append(f.searches, name)
	fn := f.searchFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(ctx, name)
}

func (f *fakeClient) Playlists(context.Context) ([]api.Playlist, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.playlists, f.listErr
}

func (f *fakeClient) CreatePlaylist(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, name)
	if f.createErr != nil {
		return f.createErr
	}
	f.playlists = append(f.playlists, api.Playlist{Name: name})
	return nil
}

func (f *fakeClient) Searches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

func (f *fakeClient) Creates() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.creates...)
}

var (
	songA = api.Song{Name: "A", Type: "Pop", Cover: "http://img/a.jpg", Link: "http://audio/a.mp3"}
	songB = api.Song{Name: "B", Type: "Rock", Cover: "http://img/b.jpg", Link: "http://audio/b.mp3"}
	songC = api.Song{Name: "C", Type: "pop", Cover: "http://img/c.jpg", Link: "http://audio/c.mp3"}
)

type fixture struct {
	client *fakeClient
	view   *view.Recorder
	player *player.Mock
	jb     *Jukebox
}

func newFixture(songs ...api.Song) *fixture {
	f := &fixture{
		client: &fakeClient{songs: songs},
		view:   view.NewRecorder(),
		player: player.NewMock(),
	}
	f.jb = New(f.client, f.view, f.player, DefaultOptions())
	return f
}

func names(songs []api.Song) []string {
	out := make([]string, len(songs))
	for i, s := range songs {
		out[i] = s.Name
	}
	return out
}
