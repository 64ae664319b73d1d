// Package jukebox drives playback, filtering, search and playlists.
//
// A Jukebox owns the player state (catalog.State) and pushes every display
// change through a view.View. It never blocks on the player: loads run in
// the background and the jukebox reacts to player events in Run.
package jukebox

import (
	"context"
	"sync"
	"time"

	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/debounce"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/view"
)

// Client is the subset of the backend API the jukebox uses.
type Client interface {
	Songs(ctx context.Context) ([]api.Song, error)
	SearchByName(ctx context.Context, name string) ([]api.Song, error)
	Playlists(ctx context.Context) ([]api.Playlist, error)
	CreatePlaylist(ctx context.Context, name string) error
}

var _ Client = (*api.Client)(nil)

// DefaultSearchDelay is the quiet period before a typed query runs.
const DefaultSearchDelay = 300 * time.Millisecond

// Options configures a Jukebox.
type Options struct {
	SearchDelay time.Duration
	// AutoAdvance plays the next song when one finishes.
	AutoAdvance bool
}

// DefaultOptions returns the default options.
func DefaultOptions() Options {
	return Options{SearchDelay: DefaultSearchDelay, AutoAdvance: true}
}

type Jukebox struct {
	mu sync.Mutex

	client Client
	view   view.View
	player player.Interface

	state     catalog.State
	displayed []api.Song
	genre     string
	loadGen   uint64
	current   *api.Song

	search      *debounce.Debouncer
	searchSeq   debounce.Sequence
	autoAdvance bool

	subs   []*Subscription
	subsMu sync.Mutex
	closed bool
}

// New creates a jukebox. A zero SearchDelay falls back to DefaultSearchDelay.
func New(client Client, v view.View, p player.Interface, opts Options) *Jukebox {
	if opts.SearchDelay <= 0 {
		opts.SearchDelay = DefaultSearchDelay
	}
	return &Jukebox{
		client:      client,
		view:        v,
		player:      p,
		state:       catalog.New(nil),
		search:      debounce.New(opts.SearchDelay),
		autoAdvance: opts.AutoAdvance,
	}
}

// Run handles player events until ctx is done.
func (j *Jukebox) Run(ctx context.Context) {
	events := j.player.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			j.HandlePlayerEvent(ev)
		}
	}
}

// State returns a snapshot of the player state.
func (j *Jukebox) State() catalog.State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// Displayed returns the list currently shown.
func (j *Jukebox) Displayed() []api.Song {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.displayed
}

// Genre returns the active genre filter ("" for all).
func (j *Jukebox) Genre() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.genre
}

// Current returns the song last loaded into the player.
func (j *Jukebox) Current() (api.Song, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.current == nil {
		return api.Song{}, false
	}
	return *j.current, true
}

// Player gives read access to the player for progress rendering.
func (j *Jukebox) Player() player.Interface {
	return j.player
}

// Subscribe creates a new event subscription.
func (j *Jukebox) Subscribe() *Subscription {
	j.subsMu.Lock()
	defer j.subsMu.Unlock()
	sub := newSubscription()
	j.subs = append(j.subs, sub)
	return sub
}

func (j *Jukebox) forEachSub(fn func(*Subscription)) {
	j.subsMu.Lock()
	defer j.subsMu.Unlock()
	for _, sub := range j.subs {
		fn(sub)
	}
}

// Close cancels pending searches, stops the player and ends subscriptions.
func (j *Jukebox) Close() {
	j.subsMu.Lock()
	if j.closed {
		j.subsMu.Unlock()
		return
	}
	j.closed = true
	for _, sub := range j.subs {
		sub.close()
	}
	j.subs = nil
	j.subsMu.Unlock()

	j.search.Cancel()
	j.player.Close()
}
