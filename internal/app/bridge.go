package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunes/internal/view"
)

// Bridge is the view.View of the terminal program. Every call is queued
// as a message and delivered to Update through Next. Calls never block:
// the jukebox may call the view while Update waits on the jukebox.
type Bridge struct {
	mu     sync.Mutex
	queue  []tea.Msg
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

var _ view.View = (*Bridge)(nil)

// NewBridge creates an empty bridge.
func NewBridge() *Bridge {
	return &Bridge{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (b *Bridge) post(msg tea.Msg) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Next blocks until a message is queued and returns it, or returns
// BridgeClosedMsg once Close was called. It expects a single caller at a time.
func (b *Bridge) Next() tea.Msg {
	for {
		b.mu.Lock()
		if b.closed {
			b.mu.Unlock()
			return BridgeClosedMsg{}
		}
		if len(b.queue) > 0 {
			msg := b.queue[0]
			b.queue[0] = nil
			b.queue = b.queue[1:]
			b.mu.Unlock()
			return msg
		}
		b.mu.Unlock()

		select {
		case <-b.wake:
		case <-b.done:
		}
	}
}

// Close drops queued messages and releases Next.
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.queue = nil
	close(b.done)
}

func (b *Bridge) RenderSongs(rows []view.Row) {
	b.post(SongsMsg{Rows: append([]view.Row(nil), rows...)})
}

func (b *Bridge) RenderMessage(msg string) {
	b.post(SongsTextMsg{Text: msg})
}

func (b *Bridge) SetGenres(genres []string) {
	b.post(GenresMsg{Genres: append([]string(nil), genres...)})
}

func (b *Bridge) ShowNowPlaying(np view.NowPlaying) {
	b.post(NowPlayingMsg{Song: np})
}

func (b *Bridge) RenderPlaylists(playlists []view.Playlist) {
	b.post(PlaylistsMsg{Playlists: append([]view.Playlist(nil), playlists...)})
}

func (b *Bridge) RenderPlaylistMessage(msg string) {
	b.post(PlaylistsTextMsg{Text: msg})
}

func (b *Bridge) Alert(level view.AlertLevel, msg string) {
	b.post(AlertMsg{Level: level, Text: msg})
}

func (b *Bridge) ClearPlaylistInput() {
	b.post(ClearInputMsg{})
}
