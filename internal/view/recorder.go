package view

import "sync"

// Alert is a recorded Alert call.
type Alert struct {
	Level AlertLevel
	Msg   string
}

// Recorder is a View that remembers what was rendered. It is safe for
// concurrent use so it can observe debounced and background updates.
type Recorder struct {
	mu sync.Mutex

	rows        []Row
	message     string
	renderCalls int
	genres      []string
	nowPlaying  []NowPlaying
	playlists   []Playlist
	plMessage   string
	alerts      []Alert
	inputClears int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RenderSongs(rows []Row) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append([]Row(nil), rows...)
	r.message = ""
	r.renderCalls++
}

func (r *Recorder) RenderMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = nil
	r.message = msg
	r.renderCalls++
}

func (r *Recorder) SetGenres(genres []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.genres = append([]string(nil), genres...)
}

func (r *Recorder) ShowNowPlaying(np NowPlaying) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nowPlaying = append(r.nowPlaying, np)
}

func (r *Recorder) RenderPlaylists(playlists []Playlist) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playlists = append([]Playlist(nil), playlists...)
	r.plMessage = ""
}

func (r *Recorder) RenderPlaylistMessage(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.playlists = nil
	r.plMessage = msg
}

func (r *Recorder) Alert(level AlertLevel, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, Alert{Level: level, Msg: msg})
}

func (r *Recorder) ClearPlaylistInput() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inputClears++
}

// Rows returns the rows of the last list render (nil after a message).
func (r *Recorder) Rows() []Row {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows
}

// RowNames returns the names of the rendered rows.
func (r *Recorder) RowNames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.rows))
	for i, row := range r.rows {
		names[i] = row.Name
	}
	return names
}

// Message returns the message of the last list render ("" after rows).
func (r *Recorder) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

// RenderCalls counts list renders (rows or message).
func (r *Recorder) RenderCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderCalls
}

// Genres returns the last genre options.
func (r *Recorder) Genres() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.genres
}

// NowPlaying returns every ShowNowPlaying call in order.
func (r *Recorder) NowPlaying() []NowPlaying {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]NowPlaying(nil), r.nowPlaying...)
}

// LastNowPlaying returns the most recent ShowNowPlaying call.
func (r *Recorder) LastNowPlaying() (NowPlaying, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.nowPlaying) == 0 {
		return NowPlaying{}, false
	}
	return r.nowPlaying[len(r.nowPlaying)-1], true
}

// Playlists returns the last rendered playlists.
func (r *Recorder) Playlists() []Playlist {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.playlists
}

// PlaylistMessage returns the last playlist panel message.
func (r *Recorder) PlaylistMessage() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plMessage
}

// Alerts returns every alert in order.
func (r *Recorder) Alerts() []Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Alert(nil), r.alerts...)
}

// InputClears counts ClearPlaylistInput calls.
func (r *Recorder) InputClears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inputClears
}

// Verify Recorder implements View at compile time.
var _ View = (*Recorder)(nil)
