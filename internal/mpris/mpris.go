//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/tunes/internal/player"
)

// Adapter exposes the jukebox to MPRIS over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(ctl Controller) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("tunes", &rootAdapter{}, &playerAdapter{ctl: ctl}),
	}

	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error { return nil }

// Quit is refused; the TUI owns its lifecycle.
func (r *rootAdapter) Quit() error { return nil }

func (r *rootAdapter) CanQuit() (bool, error) { return false, nil }

func (r *rootAdapter) CanRaise() (bool, error) { return false, nil }

func (r *rootAdapter) HasTrackList() (bool, error) { return false, nil }

func (r *rootAdapter) Identity() (string, error) { return "Tunes", nil }

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the
// loop status and shuffle extensions.
type playerAdapter struct {
	ctl Controller
}

func (p *playerAdapter) Next() error {
	p.ctl.Next()
	return nil
}

func (p *playerAdapter) Previous() error {
	p.ctl.Prev()
	return nil
}

func (p *playerAdapter) Pause() error {
	if p.ctl.Player().State().CanPause() {
		p.ctl.TogglePause()
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.ctl.TogglePause()
	return nil
}

func (p *playerAdapter) Stop() error {
	p.ctl.Stop()
	return nil
}

// Play resumes a paused song, or reloads the current one when stopped.
func (p *playerAdapter) Play() error {
	switch p.ctl.Player().State() {
	case player.Paused:
		p.ctl.TogglePause()
	case player.Stopped:
		if song, ok := p.ctl.Current(); ok {
			p.ctl.LoadSong(song)
		}
	case player.Playing, player.Loading:
	}
	return nil
}

// Sources are buffered whole but not seekable through the jukebox.
func (p *playerAdapter) Seek(_ types.Microseconds) error { return nil }

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error { return nil }

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	return playbackStatus(p.ctl.Player().State()), nil
}

func playbackStatus(s player.State) types.PlaybackStatus {
	switch s {
	case player.Playing:
		return types.PlaybackStatusPlaying
	case player.Paused:
		return types.PlaybackStatusPaused
	case player.Stopped, player.Loading:
		return types.PlaybackStatusStopped
	}
	return types.PlaybackStatusStopped
}

func (p *playerAdapter) Rate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) SetRate(_ float64) error { return nil }

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	song, ok := p.ctl.Current()
	if !ok {
		return types.Metadata{}, nil
	}

	pl := p.ctl.Player()
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(song.Link)),
		Length:  types.Microseconds(pl.Duration().Microseconds()),
		Title:   song.Name,
		ArtUrl:  song.Cover,
	}
	if info := pl.TrackInfo(); info != nil {
		if info.Artist != "" {
			meta.Artist = []string{info.Artist}
		}
		meta.Album = info.Album
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.ctl.Player().Volume(), nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.ctl.Player().SetVolume(v)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.ctl.Player().Position().Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }

func (p *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }

// The queue wraps around, so both directions are available whenever it
// holds a song.
func (p *playerAdapter) CanGoNext() (bool, error) {
	return !p.ctl.State().IsEmpty(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return !p.ctl.State().IsEmpty(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	_, ok := p.ctl.Current()
	return ok, nil
}

func (p *playerAdapter) CanPause() (bool, error) { return true, nil }

func (p *playerAdapter) CanSeek() (bool, error) { return false, nil }

func (p *playerAdapter) CanControl() (bool, error) { return true, nil }

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// Next and previous always wrap.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return types.LoopStatusPlaylist, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(_ types.LoopStatus) error { return nil }

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) { return false, nil }

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(_ bool) error { return nil }

func formatTrackID(link string) string {
	h := fnv.New64a()
	h.Write([]byte(link))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
