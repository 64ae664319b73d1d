package catalog

import (
	"strings"

	"github.com/llehouerou/tunes/internal/api"
)

// Genres returns the distinct genres of songs in order of first appearance.
func Genres(songs []api.Song) []string {
	seen := make(map[string]bool)
	var genres []string
	for _, s := range songs {
		if seen[s.Type] {
			continue
		}
		seen[s.Type] = true
		genres = append(genres, s.Type)
	}
	return genres
}

// FilterByGenre returns the songs whose genre equals genre, ignoring case.
// An empty genre selects everything and returns songs as is.
func FilterByGenre(songs []api.Song, genre string) []api.Song {
	if genre == "" {
		return songs
	}
	filtered := make([]api.Song, 0, len(songs))
	for _, s := range songs {
		if strings.EqualFold(s.Type, genre) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
