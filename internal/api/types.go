package api

// Song is a catalog entry as served by the backend.
type Song struct {
	Name  string `json:"name"`
	Type  string `json:"type"`  // genre
	Cover string `json:"cover"` // image URL
	Link  string `json:"link"`  // audio URL
}

// Playlist is a named, ordered collection of songs persisted by the backend.
type Playlist struct {
	Name  string `json:"name"`
	Songs []Song `json:"songs"`
}

type songsResponse struct {
	Songs []Song `json:"songs"`
}

type playlistsResponse struct {
	Playlists []Playlist `json:"playlists"`
}

type createPlaylistRequest struct {
	Name  string `json:"name"`
	Songs []Song `json:"songs"`
}
