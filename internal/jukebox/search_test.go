package jukebox

import (
	"context"
	"errors"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/tunes/internal/api"
)

func TestSearch_DebouncesToLastInput(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(songA, songB)
		f.client.searchFn = func(_ context.Context, name string) ([]api.Song, error) {
			return []api.Song{{Name: "result for " + name}}, nil
		}
		ctx := context.Background()

		for _, q := range []string{"r", "ro", "roc", "rock"} {
			f.jb.Search(ctx, q)
			time.Sleep(100 * time.Millisecond)
		}
		assert.Empty(t, f.client.Searches(), "no call before the quiet period")

		time.Sleep(DefaultSearchDelay)
		synctest.Wait()

		assert.Equal(t, []string{"rock"}, f.client.Searches())
		assert.Equal(t, []string{"result for rock"}, f.view.RowNames())
	})
}

func TestSearch_OneCallPerQuietPeriod(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture()
		ctx := context.Background()

		f.jb.Search(ctx, "a")
		f.jb.Search(ctx, "ab")
		time.Sleep(time.Second)
		f.jb.Search(ctx, "abc")
		time.Sleep(time.Second)
		synctest.Wait()

		assert.Equal(t, []string{"ab", "abc"}, f.client.Searches())
	})
}

func TestSearch_CancelDropsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture()

		f.jb.Search(context.Background(), "rock")
		f.jb.CancelSearch()
		time.Sleep(time.Second)
		synctest.Wait()

		assert.Empty(t, f.client.Searches())
	})
}

func TestRunSearch_BlankRestoresCatalog(t *testing.T) {
	tests := []struct {
		genre string
		want  []string
	}{
		{genre: "", want: []string{"A", "B", "C"}},
		{genre: "Rock", want: []string{"B"}},
		{genre: "POP", want: []string{"A", "C"}},
	}
	for _, tt := range tests {
		t.Run("genre "+tt.genre, func(t *testing.T) {
			f := newFixture(songA, songB, songC)
			require.NoError(t, f.jb.LoadCatalog(context.Background()))
			f.jb.FilterGenre(tt.genre)
			f.client.searchFn = func(context.Context, string) ([]api.Song, error) {
				return []api.Song{songB}, nil
			}
			f.jb.RunSearch(context.Background(), "b")

			f.jb.RunSearch(context.Background(), "   ")

			assert.Equal(t, []string{"b"}, f.client.Searches())
			assert.Equal(t, tt.want, f.view.RowNames())
		})
	}
}

func TestRunSearch_TrimsQuery(t *testing.T) {
	f := newFixture()

	f.jb.RunSearch(context.Background(), "  rock ")

	assert.Equal(t, []string{"rock"}, f.client.Searches())
}

func TestRunSearch_ErrorKeepsList(t *testing.T) {
	f := newFixture(songA, songB)
	require.NoError(t, f.jb.LoadCatalog(context.Background()))
	f.client.searchFn = func(context.Context, string) ([]api.Song, error) {
		return nil, errors.New("timeout")
	}

	f.jb.RunSearch(context.Background(), "rock")

	assert.Equal(t, []string{"A", "B"}, f.view.RowNames())
	assert.Empty(t, f.view.Alerts())
}

func TestRunSearch_DiscardsStaleResponse(t *testing.T) {
	f := newFixture()
	started := make(chan struct{})
	release := make(chan struct{})
	f.client.searchFn = func(_ context.Context, name string) ([]api.Song, error) {
		if name == "old" {
			close(started)
			<-release
		}
		return []api.Song{{Name: name}}, nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.jb.RunSearch(context.Background(), "old")
	}()
	<-started

	f.jb.RunSearch(context.Background(), "new")
	close(release)
	<-done

	assert.Equal(t, []string{"new"}, f.view.RowNames())
	assert.Equal(t, 1, f.view.RenderCalls())
}
