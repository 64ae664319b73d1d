// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog operations
	OpSongsLoad Op = "load songs"
	OpSearch    Op = "search songs"

	// Playlist operations
	OpPlaylistCreate Op = "create playlist"
	OpPlaylistsLoad  Op = "load playlists"

	// Playback operations
	OpPlaybackLoad  Op = "load song"
	OpPlaybackStart Op = "start playback"

	// Cover art
	OpCoverLoad Op = "load cover art"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
