package notify

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// CacheCover stores cover image bytes fetched for url under the user cache
// directory and returns the file path, usable as a notification icon.
// Returns "" if the file cannot be written.
func CacheCover(url string, data []byte) string {
	if url == "" || len(data) == 0 {
		return ""
	}
	sum := sha256.Sum256([]byte(url))
	name := hex.EncodeToString(sum[:8]) + filepath.Ext(url)

	path, err := xdg.CacheFile(filepath.Join("tunes", "covers", name))
	if err != nil {
		return ""
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return ""
	}
	return path
}
