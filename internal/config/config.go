package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/tunes/internal/api"
)

const appName = "tunes"

// Environment variables that override the config files.
const (
	EnvAPIURL      = "TUNES_API_URL"
	EnvPlaylistURL = "TUNES_PLAYLIST_URL"
	EnvLogLevel    = "TUNES_LOG_LEVEL"
)

// Cover art modes.
const (
	CoverArtAuto  = "auto"
	CoverArtKitty = "kitty"
	CoverArtNone  = "none"
)

type Config struct {
	APIURL        string `koanf:"api_url"`      // songs endpoint
	PlaylistURL   string `koanf:"playlist_url"` // playlist endpoint
	SearchDelayMS int    `koanf:"search_delay_ms"`
	HTTPTimeoutS  int    `koanf:"http_timeout_s"`
	LogLevel      string `koanf:"log_level"`
	Notifications *bool  `koanf:"notifications"` // desktop notifications (default: true)
	MPRIS         *bool  `koanf:"mpris"`         // media keys over D-Bus (default: true)
	CoverArt      string `koanf:"cover_art"`     // "auto", "kitty" or "none"
	Icons         string `koanf:"icons"`         // "nerd", "unicode" or "none"

	Playback PlaybackConfig `koanf:"playback"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// PlaybackConfig holds player settings.
type PlaybackConfig struct {
	AutoAdvance *bool    `koanf:"auto_advance"` // play the next song when one ends (default: true)
	Volume      *float64 `koanf:"volume"`       // initial level 0.0-1.0 (default: 1.0)
}

// MetricsConfig holds the Prometheus endpoint settings.
type MetricsConfig struct {
	Addr string `koanf:"addr"` // e.g. "127.0.0.1:9464"; empty disables the endpoint
}

// Load reads .env, the config files and the environment overrides.
func Load() (*Config, error) {
	// A missing .env is normal.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return load(getConfigPaths(), os.Getenv)
}

func load(paths []string, getenv func(string) string) (*Config, error) {
	k := koanf.New(".")

	// Files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		APIURL:      api.DefaultSongsURL,
		PlaylistURL: api.DefaultPlaylistURL,
		CoverArt:    CoverArtAuto,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if v := getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := getenv(EnvPlaylistURL); v != "" {
		cfg.PlaylistURL = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	cfg.APIURL = strings.TrimSuffix(cfg.APIURL, "/")
	cfg.PlaylistURL = strings.TrimSuffix(cfg.PlaylistURL, "/")
	cfg.CoverArt = strings.ToLower(strings.TrimSpace(cfg.CoverArt))

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/tunes/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

// LogPath returns the log file used while the TUI runs, creating its
// directory.
func LogPath() (string, error) {
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}

// SearchDelay returns the search debounce period (default: 300ms).
func (c *Config) SearchDelay() time.Duration {
	if c.SearchDelayMS <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(c.SearchDelayMS) * time.Millisecond
}

// HTTPTimeout returns the API request timeout (default: 15s).
func (c *Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutS <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.HTTPTimeoutS) * time.Second
}

// AutoAdvance reports whether the next song plays when one ends.
func (c *Config) AutoAdvance() bool {
	return boolOr(c.Playback.AutoAdvance, true)
}

// Volume returns the initial volume clamped to 0.0-1.0.
func (c *Config) Volume() float64 {
	if c.Playback.Volume == nil {
		return 1
	}
	return min(max(*c.Playback.Volume, 0), 1)
}

// NotificationsEnabled reports whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return boolOr(c.Notifications, true)
}

// MPRISEnabled reports whether the MPRIS server is started.
func (c *Config) MPRISEnabled() bool {
	return boolOr(c.MPRIS, true)
}

// CoverArtMode returns the cover art mode, falling back to auto for
// unknown values.
func (c *Config) CoverArtMode() string {
	switch c.CoverArt {
	case CoverArtKitty, CoverArtNone:
		return c.CoverArt
	default:
		return CoverArtAuto
	}
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
