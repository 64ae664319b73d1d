// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Binding maps keys to an action, with a description for the help line.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "songs", "input"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionSearch, []string{"/"}, "Search by name", "global"},
	{ActionNewPlaylist, []string{"c"}, "New playlist", "global"},
	{ActionRefreshPlaylists, []string{"r"}, "Refresh playlists", "global"},
	{ActionTogglePlaylists, []string{"tab"}, "Toggle playlists panel", "global"},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", "playback"},
	{ActionStop, []string{"s"}, "Stop", "playback"},
	{ActionNextTrack, []string{"n", "pgdown"}, "Next song", "playback"},
	{ActionPrevTrack, []string{"p", "pgup"}, "Previous song", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},

	// Song list
	{ActionMoveUp, []string{"k", "up"}, "Move up", "songs"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "songs"},
	{ActionJumpStart, []string{"g", "home"}, "First song", "songs"},
	{ActionJumpEnd, []string{"G", "end"}, "Last song", "songs"},
	{ActionSelect, []string{"enter"}, "Play song", "songs"},
	{ActionNextGenre, []string{"]"}, "Next genre", "songs"},
	{ActionPrevGenre, []string{"["}, "Previous genre", "songs"},

	// Text inputs (search box, playlist name)
	{ActionConfirm, []string{"enter"}, "Confirm", "input"},
	{ActionCancel, []string{"esc"}, "Cancel", "input"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Excluding returns all bindings outside the given context.
func Excluding(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context != context {
			result = append(result, kb)
		}
	}
	return result
}
