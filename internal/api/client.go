// Package api provides a client for the songs/playlist REST backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/llehouerou/tunes/internal/metrics"
)

const (
	// DefaultSongsURL is the songs endpoint of the public backend.
	DefaultSongsURL = "https://backend-music-player-f1lk.onrender.com/api/songs"
	// DefaultPlaylistURL is the playlist endpoint of the public backend.
	DefaultPlaylistURL = "https://backend-music-player-f1lk.onrender.com/api/playlist"

	// UserAgent identifies the client in backend and audio requests.
	UserAgent      = "tunes/0.1 (https://github.com/llehouerou/tunes)"
	defaultTimeout = 15 * time.Second

	// maxErrorBody caps how much of a failed response is kept in StatusError.
	maxErrorBody = 512
)

// Endpoint labels used for metrics and logging.
const (
	EndpointSongs          = "songs"
	EndpointSearch         = "search"
	EndpointPlaylists      = "playlists"
	EndpointCreatePlaylist = "create_playlist"
)

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status: %s", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("%s: unexpected status: %s: %s", e.Endpoint, e.Status, e.Body)
}

// Client talks to the songs and playlist endpoints.
type Client struct {
	httpClient  *http.Client
	songsURL    string
	playlistURL string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout. The HTTP client is copied, so a
// client passed to WithHTTPClient keeps its own timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// New creates a client for the given base URLs. Trailing slashes are removed.
func New(songsURL, playlistURL string, opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		songsURL:    strings.TrimSuffix(songsURL, "/"),
		playlistURL: strings.TrimSuffix(playlistURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Songs fetches the full catalog.
func (c *Client) Songs(ctx context.Context) ([]Song, error) {
	var result songsResponse
	if err := c.getJSON(ctx, EndpointSongs, c.songsURL, &result); err != nil {
		return nil, err
	}
	return result.Songs, nil
}

// SearchByName asks the backend for songs matching name.
func (c *Client) SearchByName(ctx context.Context, name string) ([]Song, error) {
	params := url.Values{}
	params.Set("name", name)
	reqURL := fmt.Sprintf("%s/search/by-name?%s", c.songsURL, params.Encode())

	var result songsResponse
	if err := c.getJSON(ctx, EndpointSearch, reqURL, &result); err != nil {
		return nil, err
	}
	return result.Songs, nil
}

// Playlists fetches every playlist with its songs.
func (c *Client) Playlists(ctx context.Context) ([]Playlist, error) {
	var result playlistsResponse
	if err := c.getJSON(ctx, EndpointPlaylists, c.playlistURL, &result); err != nil {
		return nil, err
	}
	return result.Playlists, nil
}

// CreatePlaylist creates an empty playlist. The response body is only
// checked for a successful status.
func (c *Client) CreatePlaylist(ctx context.Context, name string) error {
	body, err := json.Marshal(createPlaylistRequest{Name: name, Songs: []Song{}})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.playlistURL+"/create", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req, EndpointCreatePlaylist)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req, endpoint)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// do sends the request and turns non-2xx answers into a StatusError.
// On success the caller owns the response body.
func (c *Client) do(req *http.Request, endpoint string) (*http.Response, error) {
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("http request: %w", err)
	}
	metrics.APIRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return resp, nil
}
