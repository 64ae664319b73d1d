package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunes/internal/keymap"
	"github.com/llehouerou/tunes/internal/player"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.Focus {
	case FocusSearch:
		return m.handleSearchKey(msg)
	case FocusPlaylistName:
		return m.handleNameKey(msg)
	case FocusHelp:
		switch m.keys.Resolve(msg.String()) {
		case keymap.ActionHelp, keymap.ActionQuit:
			m.Focus = FocusSongs
		default:
			if m.inputKeys.Resolve(msg.String()) == keymap.ActionCancel {
				m.Focus = FocusSongs
			}
		}
		return m, nil
	case FocusSongs:
	}

	return m.handleAction(m.keys.Resolve(msg.String()))
}

func (m Model) handleAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.Focus = FocusHelp

	case keymap.ActionPlayPause:
		m.playPause()
	case keymap.ActionStop:
		m.jukebox.Stop()
	case keymap.ActionNextTrack:
		m.jukebox.Next()
	case keymap.ActionPrevTrack:
		m.jukebox.Prev()
	case keymap.ActionVolumeUp:
		m.jukebox.VolumeUp()
	case keymap.ActionVolumeDown:
		m.jukebox.VolumeDown()

	case keymap.ActionMoveUp:
		m.Songs.Move(-1)
	case keymap.ActionMoveDown:
		m.Songs.Move(1)
	case keymap.ActionJumpStart:
		m.Songs.JumpStart()
	case keymap.ActionJumpEnd:
		m.Songs.JumpEnd()
	case keymap.ActionSelect:
		if row, ok := m.Songs.Selected(); ok {
			m.jukebox.SelectRow(row)
		}
	case keymap.ActionNextGenre:
		m.cycleGenre(1)
	case keymap.ActionPrevGenre:
		m.cycleGenre(-1)

	case keymap.ActionSearch:
		m.Focus = FocusSearch
		cmd := m.search.Focus()
		return m, cmd

	case keymap.ActionNewPlaylist:
		m.Focus = FocusPlaylistName
		cmd := m.name.Focus()
		return m, cmd
	case keymap.ActionRefreshPlaylists:
		return m, FetchPlaylistsCmd(m.ctx, m.jukebox)
	case keymap.ActionTogglePlaylists:
		m.PlaylistsVisible = !m.PlaylistsVisible
		m.resize()

	case keymap.ActionConfirm, keymap.ActionCancel:
	}
	return m, nil
}

// playPause toggles pause, or restarts the current song once stopped. With
// nothing loaded yet it plays the song under the cursor.
func (m *Model) playPause() {
	if m.player.State() != player.Stopped {
		m.jukebox.TogglePause()
		return
	}
	if song, ok := m.jukebox.Current(); ok {
		m.jukebox.LoadSong(song)
		return
	}
	if row, ok := m.Songs.Selected(); ok {
		m.jukebox.SelectRow(row)
	}
}

func (m *Model) cycleGenre(delta int) {
	n := len(m.Genres)
	if n <= 1 {
		return
	}
	m.GenreIdx = ((m.GenreIdx+delta)%n + n) % n
	m.jukebox.FilterGenre(m.Genres[m.GenreIdx])
}

// handleSearchKey edits the query. Every change is passed to the jukebox,
// which debounces it. Enter keeps the results, esc restores the catalog.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.inputKeys.Resolve(msg.String()) {
	case keymap.ActionConfirm:
		m.search.Blur()
		m.Focus = FocusSongs
		return m, nil
	case keymap.ActionCancel:
		m.search.Blur()
		m.Focus = FocusSongs
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.jukebox.Search(m.ctx, "")
		}
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != before {
		m.jukebox.Search(m.ctx, q)
	}
	return m, cmd
}

// handleNameKey edits the new playlist name. The dialog stays open until
// the playlist is created so a rejected name can be fixed.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.inputKeys.Resolve(msg.String()) {
	case keymap.ActionConfirm:
		return m, CreatePlaylistCmd(m.ctx, m.jukebox, m.name.Value())
	case keymap.ActionCancel:
		m.name.Blur()
		m.name.SetValue("")
		m.Focus = FocusSongs
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}
