package albumart

import (
	"os"
	"strings"
)

// Enabled resolves a cover art mode: "none" disables covers, "kitty" forces
// them, anything else detects terminal support.
func Enabled(mode string) bool {
	switch mode {
	case "none":
		return false
	case "kitty":
		return true
	default:
		return KittySupported()
	}
}

// KittySupported reports whether the terminal advertises the Kitty graphics
// protocol through its environment.
func KittySupported() bool {
	// Contour inherits variables from its parent terminal but lacks the protocol.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" || os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}
	if os.Getenv("TERM_PROGRAM") == "WezTerm" {
		return true
	}
	// Konsole from 22.04, reported as e.g. "220401".
	if v := os.Getenv("KONSOLE_VERSION"); len(v) >= 4 && v[:4] >= "2204" {
		return true
	}
	return strings.Contains(os.Getenv("TERM"), "kitty")
}
