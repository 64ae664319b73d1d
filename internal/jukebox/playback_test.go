package jukebox

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/view"
)

func TestNextPrev_WrapAround(t *testing.T) {
	var songs []api.Song
	for i := range 5 {
		songs = append(songs, api.Song{Name: fmt.Sprintf("s%d", i), Link: fmt.Sprintf("http://audio/%d.mp3", i)})
	}
	n := len(songs)

	for i := range n {
		t.Run(fmt.Sprintf("from %d", i), func(t *testing.T) {
			f := newFixture(songs...)
			require.NoError(t, f.jb.LoadCatalog(context.Background()))
			require.True(t, f.jb.SelectSong(i))

			require.True(t, f.jb.Next())
			assert.Equal(t, (i+1)%n, f.jb.State().Index)
			assert.Equal(t, songs[(i+1)%n].Link, f.player.LastLoad())

			require.True(t, f.jb.Prev())
			require.True(t, f.jb.Prev())
			want := ((i-1)%n + n) % n
			assert.Equal(t, want, f.jb.State().Index)
			assert.Equal(t, songs[want].Link, f.player.LastLoad())
		})
	}
}

func TestNext_ScenarioAB(t *testing.T) {
	f := newFixture(songA, songB)
	require.NoError(t, f.jb.LoadCatalog(context.Background()))

	f.jb.Next()
	cur, _ := f.jb.Current()
	assert.Equal(t, "B", cur.Name)

	f.jb.Next()
	cur, _ = f.jb.Current()
	assert.Equal(t, "A", cur.Name)

	assert.Equal(t, []string{songA.Link, songB.Link, songA.Link}, f.player.LoadCalls())
}

func TestNextPrev_EmptyQueueIsNoop(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.jb.LoadCatalog(context.Background()))

	assert.False(t, f.jb.Next())
	assert.False(t, f.jb.Prev())
	assert.Empty(t, f.player.LoadCalls())
	assert.Empty(t, f.view.NowPlaying())
}

func TestSelectSong(t *testing.T) {
	f := newFixture(songA, songB, songC)
	require.NoError(t, f.jb.LoadCatalog(context.Background()))

	assert.False(t, f.jb.SelectSong(3))
	assert.False(t, f.jb.SelectSong(-1))

	require.True(t, f.jb.SelectSong(2))
	assert.Equal(t, songC.Link, f.player.LastLoad())
	assert.Equal(t, 2, f.jb.State().Index)
}

func TestSelectRow(t *testing.T) {
	tests := []struct {
		name  string
		shown []api.Song
		row   view.Row
		want  bool
	}{
		{name: "current row", shown: []api.Song{songA, songB}, row: view.Row{Index: 1, Name: "B", Genre: "Rock"}, want: true},
		{name: "list replaced", shown: []api.Song{songC}, row: view.Row{Index: 0, Name: "A", Genre: "Pop"}},
		{name: "list shrank", shown: []api.Song{songA}, row: view.Row{Index: 1, Name: "B", Genre: "Rock"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(songA, songB, songC)
			require.NoError(t, f.jb.LoadCatalog(context.Background()))
			f.jb.ShowSongs(tt.shown)
			loads := len(f.player.LoadCalls())

			assert.Equal(t, tt.want, f.jb.SelectRow(tt.row))
			if tt.want {
				assert.Equal(t, tt.shown[tt.row.Index].Link, f.player.LastLoad())
				return
			}
			assert.Len(t, f.player.LoadCalls(), loads)
			assert.Equal(t, 0, f.jb.State().Index)
		})
	}
}

func TestLoadSong_PublishesTrackChange(t *testing.T) {
	f := newFixture(songA, songB)
	sub := f.jb.Subscribe()
	require.NoError(t, f.jb.LoadCatalog(context.Background()))

	f.jb.Next()

	first := <-sub.TrackChanged
	second := <-sub.TrackChanged
	assert.Equal(t, "A", first.Song.Name)
	assert.Equal(t, "B", second.Song.Name)
	assert.Equal(t, 1, second.Index)
}

func TestLoadSong_ConcurrentLoadsAgree(t *testing.T) {
	f := newFixture(songA, songB)
	require.NoError(t, f.jb.LoadCatalog(context.Background()))

	var wg sync.WaitGroup
	for _, song := range []api.Song{songB, songC} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				f.jb.LoadSong(song)
			}
		}()
	}
	wg.Wait()

	cur, ok := f.jb.Current()
	require.True(t, ok)
	np, ok := f.view.LastNowPlaying()
	require.True(t, ok)
	assert.Equal(t, cur.Link, f.player.LastLoad())
	assert.Equal(t, cur.Link, np.Link)
}

func TestHandlePlayerEvent_CanPlayStartsCurrent(t *testing.T) {
	f := newFixture(songA, songB)
	require.NoError(t, f.jb.LoadCatalog(context.Background()))

	f.jb.HandlePlayerEvent(f.player.SimulateCanPlay())

	assert.Equal(t, 1, f.player.PlayCalls())
	assert.Equal(t, player.Playing, f.player.State())
}

func TestHandlePlayerEvent_StaleCanPlayIgnored(t *testing.T) {
	f := newFixture(songA, songB)
	require.NoError(t, f.jb.LoadCatalog(context.Background()))
	stale := f.player.Generation()

	f.jb.Next()
	f.jb.HandlePlayerEvent(player.Event{Kind: player.EventCanPlay, Generation: stale})

	assert.Equal(t, 0, f.player.PlayCalls())
	assert.Equal(t, player.Loading, f.player.State())

	f.jb.HandlePlayerEvent(f.player.SimulateCanPlay())
	assert.Equal(t, 1, f.player.PlayCalls())
}

func TestHandlePlayerEvent_PlayFailureIsReported(t *testing.T) {
	f := newFixture(songA)
	sub := f.jb.Subscribe()
	require.NoError(t, f.jb.LoadCatalog(context.Background()))
	f.player.SetPlayError(errors.New("no audio device"))

	f.jb.HandlePlayerEvent(f.player.SimulateCanPlay())

	ev := <-sub.Error
	assert.Equal(t, "play", ev.Operation)
	assert.Equal(t, "A", ev.Song.Name)
	assert.Empty(t, f.view.Alerts(), "play failures are logged, not alerted")
}

func TestHandlePlayerEvent_LoadErrorAlerts(t *testing.T) {
	f := newFixture(songA)
	require.NoError(t, f.jb.LoadCatalog(context.Background()))

	f.jb.HandlePlayerEvent(f.player.SimulateError(errors.New("unexpected status: 404 Not Found")))

	alerts := f.view.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, view.AlertError, alerts[0].Level)
	assert.Equal(t, "Failed to load song 'A': unexpected status: 404 Not Found", alerts[0].Msg)
}

func TestHandlePlayerEvent_FinishedAdvances(t *testing.T) {
	f := newFixture(songA, songB)
	require.NoError(t, f.jb.LoadCatalog(context.Background()))

	f.jb.HandlePlayerEvent(f.player.SimulateFinished())

	assert.Equal(t, songB.Link, f.player.LastLoad())
}

func TestHandlePlayerEvent_FinishedWithoutAutoAdvance(t *testing.T) {
	client := &fakeClient{songs: []api.Song{songA, songB}}
	p := player.NewMock()
	jb := New(client, view.NewRecorder(), p, Options{AutoAdvance: false})
	require.NoError(t, jb.LoadCatalog(context.Background()))

	jb.HandlePlayerEvent(p.SimulateFinished())

	assert.Equal(t, []string{songA.Link}, p.LoadCalls())
}

func TestTogglePauseAndStop(t *testing.T) {
	f := newFixture(songA)
	sub := f.jb.Subscribe()
	require.NoError(t, f.jb.LoadCatalog(context.Background()))
	f.jb.HandlePlayerEvent(f.player.SimulateCanPlay())
	<-sub.StateChanged // Loading -> Playing

	f.jb.TogglePause()
	assert.Equal(t, player.Paused, f.player.State())
	assert.Equal(t, StateChange{Previous: player.Playing, Current: player.Paused}, <-sub.StateChanged)

	f.jb.Stop()
	assert.Equal(t, player.Stopped, f.player.State())
	assert.Equal(t, StateChange{Previous: player.Paused, Current: player.Stopped}, <-sub.StateChanged)
}

func TestVolumeSteps(t *testing.T) {
	f := newFixture()

	assert.InDelta(t, 0.9, f.jb.VolumeDown(), 1e-9)
	assert.InDelta(t, 1.0, f.jb.VolumeUp(), 1e-9)
	assert.InDelta(t, 1.0, f.jb.VolumeUp(), 1e-9)
}

func TestRun_PlaysWhenReady(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(songA)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go f.jb.Run(ctx)
		require.NoError(t, f.jb.LoadCatalog(ctx))

		f.player.SimulateCanPlay()
		synctest.Wait()

		assert.Equal(t, player.Playing, f.player.State())
	})
}
