package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/urfave/cli/v2"

	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/app"
	tunescli "github.com/llehouerou/tunes/internal/cli"
	"github.com/llehouerou/tunes/internal/config"
	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/jukebox"
	"github.com/llehouerou/tunes/internal/logging"
	"github.com/llehouerou/tunes/internal/metrics"
	"github.com/llehouerou/tunes/internal/mpris"
	"github.com/llehouerou/tunes/internal/notify"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/albumart"
)

func main() {
	tunes := &cli.App{
		Name:  "tunes",
		Usage: "Play and organize songs from the tunes backend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-url", Usage: "songs endpoint `URL`"},
			&cli.StringFlag{Name: "playlist-url", Usage: "playlist endpoint `URL`"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Action:   runTUI,
		Commands: tunescli.Commands(headlessEnv),
	}

	if err := tunes.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := c.String("api-url"); v != "" {
		cfg.APIURL = strings.TrimSuffix(v, "/")
	}
	if v := c.String("playlist-url"); v != "" {
		cfg.PlaylistURL = strings.TrimSuffix(v, "/")
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if l, ok := logging.ParseLevel(cfg.LogLevel); ok {
		logging.SetLevel(l)
	}
	return cfg, nil
}

func newClient(cfg *config.Config) *api.Client {
	return api.New(cfg.APIURL, cfg.PlaylistURL, api.WithTimeout(cfg.HTTPTimeout()))
}

func headlessEnv(c *cli.Context) (*tunescli.Env, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return &tunescli.Env{
		Client:  newClient(cfg),
		Out:     os.Stdout,
		Spinner: term.IsTerminal(os.Stdout.Fd()),
	}, nil
}

func runTUI(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	logPath, err := config.LogPath()
	if err != nil {
		return fmt.Errorf("log path: %w", err)
	}
	logFile, err := tea.LogToFile(logPath, "tunes")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	// The audio backend writes to fd 2; keep it off the screen.
	if err := logging.CaptureStderr(); err != nil {
		logging.Warn("capture stderr: %v", err)
	}
	defer logging.ReleaseStderr()

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	icons.Init(cfg.Icons)
	metrics.InitializeMetrics()
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr); err != nil {
				logging.Error("metrics: %v", err)
			}
		}()
	}

	p := player.New(player.WithUserAgent(api.UserAgent))
	p.SetVolume(cfg.Volume())

	bridge := app.NewBridge()
	jb := jukebox.New(newClient(cfg), bridge, p, jukebox.Options{
		SearchDelay: cfg.SearchDelay(),
		AutoAdvance: cfg.AutoAdvance(),
	})
	defer jb.Close()
	go jb.Run(ctx)

	notifier := notify.Disabled()
	if cfg.NotificationsEnabled() {
		n, err := notify.New()
		if err != nil {
			logging.Warn("notifications disabled: %v", err)
		} else {
			notifier = n
		}
	}

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(jb)
		if err != nil {
			logging.Warn("mpris disabled: %v", err)
		} else {
			defer adapter.Close()
		}
	}

	var covers *albumart.Renderer
	if albumart.Enabled(cfg.CoverArtMode()) {
		covers = albumart.New(ui.CoverCols, ui.CoverRows)
	}

	logging.Info("starting: songs=%s playlists=%s", cfg.APIURL, cfg.PlaylistURL)

	m := app.New(ctx, app.Deps{
		Jukebox:  jb,
		Bridge:   bridge,
		Notifier: notifier,
		Covers:   covers,
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	bridge.Close()
	if covers != nil {
		// Images outlive the alternate screen in kitty.
		fmt.Print(covers.Clear())
	}
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
