package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunes/internal/logging"
	"github.com/llehouerou/tunes/internal/notify"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/ui/playerbar"
	"github.com/llehouerou/tunes/internal/view"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ViewMessage:
		return m.handleViewMessage(msg)

	case PlaybackMessage:
		return m.handlePlaybackMessage(msg)

	case LoadingMessage:
		return m.handleLoadingMessage(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleViewMessage(msg ViewMessage) (tea.Model, tea.Cmd) {
	next := WaitForView(m.bridge)

	switch msg := msg.(type) {
	case SongsMsg:
		m.SongsMsg = ""
		m.Songs.Reset()
		m.Songs.SetItems(msg.Rows)

	case SongsTextMsg:
		m.SongsMsg = msg.Text
		m.Songs.Reset()
		m.Songs.SetItems(nil)

	case GenresMsg:
		m.Genres = append([]string{""}, msg.Genres...)
		m.GenreIdx = 0

	case NowPlayingMsg:
		m.NowPlaying = msg.Song
		m.coverIcon = ""
		if msg.Song.Cover != "" {
			return m, tea.Batch(next, FetchCoverCmd(m.ctx, m.http, msg.Song.Cover))
		}
		if m.covers != nil {
			m.artUpload = m.covers.Clear()
		}

	case PlaylistsMsg:
		m.Playlists = msg.Playlists
		m.PlaylistsMsg = ""
		if len(msg.Playlists) == 0 {
			m.PlaylistsMsg = view.MsgPlaylistsNoneExists
		}

	case PlaylistsTextMsg:
		m.Playlists = nil
		m.PlaylistsMsg = msg.Text

	case AlertMsg:
		m.alertSeq++
		m.Alert = &Alert{Level: msg.Level, Text: msg.Text}
		cmds := []tea.Cmd{next, AlertExpiryCmd(m.alertSeq)}
		if msg.Level == view.AlertError {
			cmds = append(cmds, NotifyAlertCmd(m.notifier, m.notifyID, notify.AlertNotification(msg.Text, true)))
			m.notifyID = 0
		}
		return m, tea.Batch(cmds...)

	case ClearInputMsg:
		m.name.SetValue("")

	case BridgeClosedMsg:
		return m, nil
	}

	return m, next
}

func (m Model) handlePlaybackMessage(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		// The cover upload has been drawn by now.
		m.artUpload = ""
		return m, TickCmd()

	case TrackChangedMsg:
		m.pendingNotify = true
		return m, WatchJukebox(m.sub)

	case StateChangedMsg:
		var cmd tea.Cmd
		if msg.Current == player.Playing && m.pendingNotify {
			m.pendingNotify = false
			n := notify.TrackNotification(m.NowPlaying.Title, m.NowPlaying.Genre, m.coverIcon, m.notifyID)
			cmd = NotifyTrackCmd(m.notifier, n)
		}
		return m, tea.Batch(WatchJukebox(m.sub), cmd)

	case PlaybackErrorMsg:
		m.pendingNotify = false
		if msg.Operation == "play" {
			m.alertSeq++
			m.Alert = &Alert{Level: view.AlertError, Text: "Could not start playback, press space to retry"}
			return m, tea.Batch(WatchJukebox(m.sub), AlertExpiryCmd(m.alertSeq))
		}
		return m, WatchJukebox(m.sub)

	case JukeboxClosedMsg:
		return m, nil

	case CoverMsg:
		return m.handleCover(msg), nil

	case NotifiedMsg:
		m.notifyID = msg.ID
	}
	return m, nil
}

func (m Model) handleCover(msg CoverMsg) Model {
	if msg.URL != m.NowPlaying.Cover {
		return m
	}
	if msg.Err != nil {
		logging.Debug("cover %s: %v", msg.URL, msg.Err)
		if m.covers != nil {
			m.artUpload = m.covers.Clear()
		}
		return m
	}

	m.coverIcon = notify.CacheCover(msg.URL, msg.Data)
	if m.covers == nil {
		return m
	}
	upload, err := m.covers.Prepare(msg.URL, msg.Data)
	if err != nil {
		logging.Debug("cover %s: %v", msg.URL, err)
		m.artUpload = m.covers.Clear()
		return m
	}
	m.artUpload = upload
	return m
}

func (m Model) handleLoadingMessage(msg LoadingMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CatalogLoadedMsg:
		m.Loading = false

	case PlaylistsLoadedMsg:
		// Failures were rendered in the panel by the jukebox.

	case PlaylistCreatedMsg:
		if msg.Err == nil && m.Focus == FocusPlaylistName {
			m.name.Blur()
			m.Focus = FocusSongs
		}

	case AlertExpiredMsg:
		if msg.Seq == m.alertSeq {
			m.Alert = nil
		}
	}
	return m, nil
}

// updateInputs forwards other messages, such as cursor blinks, to the
// focused text input.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Focus {
	case FocusSearch:
		m.search, cmd = m.search.Update(msg)
	case FocusPlaylistName:
		m.name, cmd = m.name.Update(msg)
	case FocusSongs, FocusHelp:
	}
	return m, cmd
}

// displayMode picks the expanded player bar when covers are enabled and
// the window is tall enough to keep a useful song list.
func (m Model) displayMode() playerbar.DisplayMode {
	if m.covers != nil && m.Height >= 24 {
		return playerbar.ModeExpanded
	}
	return playerbar.ModeCompact
}
