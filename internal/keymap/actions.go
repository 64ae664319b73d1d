package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause  Action = "play_pause"
	ActionStop       Action = "stop"
	ActionNextTrack  Action = "next_track"
	ActionPrevTrack  Action = "prev_track"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"

	// Song list actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionSelect    Action = "select" // enter - play the song under the cursor

	// Filter and search
	ActionSearch    Action = "search"
	ActionNextGenre Action = "next_genre"
	ActionPrevGenre Action = "prev_genre"

	// Playlists
	ActionNewPlaylist      Action = "new_playlist"
	ActionRefreshPlaylists Action = "refresh_playlists"
	ActionTogglePlaylists  Action = "toggle_playlists"
	ActionConfirm          Action = "confirm" // enter in an input
	ActionCancel           Action = "cancel"  // esc in an input
)
