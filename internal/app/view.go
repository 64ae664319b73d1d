package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/keymap"
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/headerbar"
	"github.com/llehouerou/tunes/internal/ui/helpbindings"
	"github.com/llehouerou/tunes/internal/ui/layout"
	"github.com/llehouerou/tunes/internal/ui/overlay"
	"github.com/llehouerou/tunes/internal/ui/playerbar"
	"github.com/llehouerou/tunes/internal/ui/popup"
	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/ui/styles"
	"github.com/llehouerou/tunes/internal/view"
)

const statusHeight = 1

func (m Model) heights() layout.Heights {
	return layout.Heights{
		Header:    headerbar.Height,
		Status:    statusHeight,
		PlayerBar: playerbar.Height(m.displayMode()),
	}
}

// resize recomputes panel sizes after a window or layout change.
func (m *Model) resize() {
	content := layout.ContentHeight(m.Height, m.heights())
	m.Songs.SetSize(layout.SongsSize(m.Width, content, m.PlaylistsVisible))
	m.search.Width = max(m.Width/3, 10)
	m.name.Width = max(min(m.Width/2, 50), 10)
}

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(m.headerState(), m.Width)

	content := m.renderSongs()
	if m.PlaylistsVisible {
		pw, ph := layout.PlaylistsSize(m.Width, layout.ContentHeight(m.Height, m.heights()), true)
		panel := m.renderPlaylists(pw, ph)
		if layout.IsNarrow(m.Width) {
			content = lipgloss.JoinVertical(lipgloss.Left, content, panel)
		} else {
			content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
		}
	}

	mode := m.displayMode()
	bar := playerbar.Render(playerbar.NewState(m.NowPlaying, m.player, mode), m.Width)

	screen := strings.Join([]string{header, content, m.renderStatus(), bar}, "\n")
	screen = enforceHeight(screen, m.Height)

	switch m.Focus {
	case FocusHelp:
		screen = overlay.Compose(screen, helpbindings.Dialog(keymap.All).Render(m.Width, m.Height), m.Width)
	case FocusPlaylistName:
		screen = overlay.Compose(screen, m.nameDialog().Render(m.Width, m.Height), m.Width)
	case FocusSongs, FocusSearch:
	}

	// Cover escapes go around the frame so lipgloss never measures them.
	if m.artUpload != "" {
		screen = m.artUpload + screen
	}
	if m.covers != nil && mode == playerbar.ModeExpanded && m.Focus != FocusHelp {
		screen += m.covers.Place(layout.CoverPosition(m.Height, playerbar.Height(mode)))
	}
	return screen
}

func (m Model) headerState() headerbar.State {
	s := headerbar.State{Genre: m.Genres[m.GenreIdx]}
	if m.Focus == FocusSearch {
		s.Search = m.search.View()
	} else {
		s.Query = strings.TrimSpace(m.search.Value())
	}
	return s
}

func (m Model) renderSongs() string {
	st := styles.T().S()
	width := m.Songs.InnerWidth()
	height := m.Songs.ListHeight()

	title := fmt.Sprintf("Songs (%d)", m.Songs.Len())
	lines := []string{st.Title.Render(render.Truncate(title, width)), st.Subtle.Render(render.Separator(width))}

	switch {
	case m.Loading && m.Songs.Len() == 0 && m.SongsMsg == "":
		lines = append(lines, m.spinner.View()+" "+st.Muted.Render("Loading songs…"))
	case m.SongsMsg != "":
		lines = append(lines, st.Muted.Render(render.Truncate(m.SongsMsg, width)))
	default:
		start, end := m.Songs.Visible()
		rows := m.Songs.Items()
		for i := start; i < end; i++ {
			lines = append(lines, m.renderRow(rows[i], i == m.Songs.Cursor(), width))
		}
	}
	lines = fill(lines, height+ui.HeaderHeight)

	return styles.PanelStyle(m.Focus == FocusSongs).
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(row view.Row, selected bool, width int) string {
	st := styles.T().S()

	marker := "  "
	nameStyle := st.Base
	if m.NowPlaying.Title != "" && row.Name == m.NowPlaying.Title {
		marker = st.Playing.Render("▶ ")
		nameStyle = st.Playing
	}

	genre := render.Truncate(row.Genre, max(width/4, 4))
	nameWidth := max(width-2-render.Width(genre)-1, 1)
	line := marker + nameStyle.Render(render.Fit(icons.FormatSong(row.Name), nameWidth)) + " " + st.Genre.Render(genre)

	if selected && m.Focus == FocusSongs {
		return st.Cursor.Render(ansi.Strip(line))
	}
	return line
}

func (m Model) renderPlaylists(width, height int) string {
	st := styles.T().S()
	inner := max(width-ui.BorderWidth, 0)

	lines := []string{
		st.Title.Render(render.Truncate(fmt.Sprintf("Playlists (%d)", len(m.Playlists)), inner)),
		st.Subtle.Render(render.Separator(inner)),
	}
	if m.PlaylistsMsg != "" {
		lines = append(lines, st.Muted.Render(render.Truncate(m.PlaylistsMsg, inner)))
	}
	for _, p := range m.Playlists {
		lines = append(lines, st.Genre.Render(render.Truncate(icons.FormatPlaylist(p.Name), inner)))
		for _, s := range p.Songs {
			lines = append(lines, st.Muted.Render(render.Truncate("  · "+s, inner)))
		}
	}
	lines = fill(lines, max(height-ui.BorderHeight, 0))

	return styles.PanelStyle(false).Width(inner).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	st := styles.T().S()
	if m.Alert != nil {
		style := st.Info
		if m.Alert.Level == view.AlertError {
			style = st.Error
		}
		return style.Render(render.Truncate(m.Alert.Text, m.Width))
	}

	var help string
	switch m.Focus {
	case FocusSearch:
		help = m.inputKeys.Help(" · ", keymap.ActionConfirm, keymap.ActionCancel)
	default:
		help = m.keys.Help(" · ",
			keymap.ActionSelect, keymap.ActionPlayPause, keymap.ActionNextTrack,
			keymap.ActionPrevTrack, keymap.ActionNextGenre, keymap.ActionNewPlaylist, keymap.ActionHelp)
	}
	return st.Subtle.Render(render.Truncate(help, m.Width))
}

func (m Model) nameDialog() popup.Dialog {
	return popup.Dialog{
		Title:  "New playlist",
		Body:   m.name.View(),
		Footer: m.inputKeys.Help(" · ", keymap.ActionConfirm, keymap.ActionCancel),
		Width:  m.name.Width + 3,
	}
}

// fill pads or cuts lines to exactly n entries.
func fill(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(v string, height int) string {
	return strings.Join(fill(strings.Split(v, "\n"), height), "\n")
}
