package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunes/internal/jukebox"
	"github.com/llehouerou/tunes/internal/logging"
	"github.com/llehouerou/tunes/internal/notify"
)

const (
	alertDuration = 4 * time.Second
	maxCoverBytes = 8 << 20
)

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// AlertExpiryCmd clears alert seq once it has been shown long enough.
func AlertExpiryCmd(seq int) tea.Cmd {
	return tea.Tick(alertDuration, func(time.Time) tea.Msg {
		return AlertExpiredMsg{Seq: seq}
	})
}

// WaitForView returns a command that delivers the next view update.
func WaitForView(b *Bridge) tea.Cmd {
	return func() tea.Msg {
		return b.Next()
	}
}

// WatchJukebox returns a command that waits for the next jukebox event.
func WatchJukebox(sub *jukebox.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.Error:
			return PlaybackErrorMsg(e)
		case <-sub.QueueChanged:
			// The song list already shows the queue; wait for the next event.
			return WatchJukebox(sub)()
		case <-sub.Done:
			return JukeboxClosedMsg{}
		}
	}
}

// LoadCatalogCmd fetches the song catalog. Results reach the view through
// the jukebox; the returned message only ends the loading state.
func LoadCatalogCmd(ctx context.Context, jb *jukebox.Jukebox) tea.Cmd {
	return func() tea.Msg {
		return CatalogLoadedMsg{Err: jb.LoadCatalog(ctx)}
	}
}

// FetchPlaylistsCmd refreshes the playlists panel.
func FetchPlaylistsCmd(ctx context.Context, jb *jukebox.Jukebox) tea.Cmd {
	return func() tea.Msg {
		return PlaylistsLoadedMsg{Err: jb.FetchPlaylists(ctx)}
	}
}

// CreatePlaylistCmd creates a playlist named name.
func CreatePlaylistCmd(ctx context.Context, jb *jukebox.Jukebox, name string) tea.Cmd {
	return func() tea.Msg {
		return PlaylistCreatedMsg{Name: name, Err: jb.CreatePlaylist(ctx, name)}
	}
}

// FetchCoverCmd downloads the cover image at url.
func FetchCoverCmd(ctx context.Context, client *http.Client, url string) tea.Cmd {
	return func() tea.Msg {
		data, err := fetchCover(ctx, client, url)
		return CoverMsg{URL: url, Data: data, Err: err}
	}
}

func fetchCover(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCoverBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}

// NotifyTrackCmd shows a now-playing notification, replacing the previous one.
func NotifyTrackCmd(n notify.Notifier, notif notify.Notification) tea.Cmd {
	return func() tea.Msg {
		id, err := n.Notify(notif)
		if err != nil {
			logging.Debug("notify: %v", err)
			return nil
		}
		return NotifiedMsg{ID: id}
	}
}

// NotifyAlertCmd shows an alert as a desktop notification, first closing
// the track notification trackID when it is non-zero.
func NotifyAlertCmd(n notify.Notifier, trackID uint32, notif notify.Notification) tea.Cmd {
	return func() tea.Msg {
		if trackID != 0 {
			if err := n.Close(trackID); err != nil {
				logging.Debug("notify: close %d: %v", trackID, err)
			}
		}
		if _, err := n.Notify(notif); err != nil {
			logging.Debug("notify: %v", err)
		}
		return nil
	}
}
