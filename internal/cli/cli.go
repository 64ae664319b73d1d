// Package cli implements the headless subcommands. They talk to the same
// backend as the TUI and print plain text suitable for scripts.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v2"

	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/jukebox"
	"github.com/llehouerou/tunes/internal/logging"
	"github.com/llehouerou/tunes/internal/view"
)

// Env is what a command runs against.
type Env struct {
	Client jukebox.Client
	Out    io.Writer
	// Spinner shows a spinner while a request runs. Only enable it when
	// stdout is a terminal.
	Spinner bool
}

// EnvFunc builds the environment once flags are parsed.
type EnvFunc func(c *cli.Context) (*Env, error)

// Commands returns the headless subcommands.
func Commands(env EnvFunc) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "songs",
			Usage: "Print the song catalog",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "genre",
					Aliases: []string{"g"},
					Usage:   "only print songs of `GENRE` (case-insensitive)",
				},
			},
			Action: with(env, songs),
		},
		{
			Name:      "search",
			Usage:     "Print the songs whose name matches",
			ArgsUsage: "NAME",
			Action:    with(env, search),
		},
		{
			Name:   "playlists",
			Usage:  "Print every playlist with its songs",
			Action: with(env, playlists),
		},
		{
			Name:  "playlist",
			Usage: "Manage playlists",
			Subcommands: []*cli.Command{
				{
					Name:      "create",
					Usage:     "Create an empty playlist",
					ArgsUsage: "NAME",
					Action:    with(env, createPlaylist),
				},
			},
		},
	}
}

func with(env EnvFunc, fn func(c *cli.Context, e *Env) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		e, err := env(c)
		if err != nil {
			return err
		}
		return fn(c, e)
	}
}

// wait runs fn, behind a spinner when enabled.
func (e *Env) wait(ctx context.Context, title string, fn func(ctx context.Context) error) error {
	if !e.Spinner {
		return fn(ctx)
	}
	return spinner.New().Title(title).Context(ctx).ActionWithErr(fn).Run()
}

func songs(c *cli.Context, e *Env) error {
	var list []api.Song
	err := e.wait(c.Context, "Loading songs...", func(ctx context.Context) error {
		var err error
		list, err = e.Client.Songs(ctx)
		return err
	})
	if err != nil {
		return cli.Exit(errmsg.Format(errmsg.OpSongsLoad, err), 1)
	}
	return printSongs(e.Out, catalog.FilterByGenre(list, c.String("genre")))
}

func search(c *cli.Context, e *Env) error {
	name := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))

	var list []api.Song
	err := e.wait(c.Context, "Searching...", func(ctx context.Context) error {
		var err error
		if name == "" {
			// Same as clearing the search box: the whole catalog.
			list, err = e.Client.Songs(ctx)
			return err
		}
		list, err = e.Client.SearchByName(ctx, name)
		return err
	})
	if err != nil {
		return cli.Exit(errmsg.FormatWith(errmsg.OpSearch, name, err), 1)
	}
	return printSongs(e.Out, list)
}

func playlists(c *cli.Context, e *Env) error {
	var list []api.Playlist
	err := e.wait(c.Context, "Loading playlists...", func(ctx context.Context) error {
		var err error
		list, err = e.Client.Playlists(ctx)
		return err
	})
	if err != nil {
		return cli.Exit(errmsg.Format(errmsg.OpPlaylistsLoad, err), 1)
	}
	return printPlaylists(e.Out, jukebox.PlaylistViews(list))
}

func createPlaylist(c *cli.Context, e *Env) error {
	name := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if name == "" {
		return cli.Exit(view.MsgEnterPlaylistName, 2)
	}

	err := e.wait(c.Context, "Creating playlist...", func(ctx context.Context) error {
		return e.Client.CreatePlaylist(ctx, name)
	})
	if err != nil {
		return cli.Exit(errmsg.FormatWith(errmsg.OpPlaylistCreate, name, err), 1)
	}
	logging.Info("playlists: created %q", name)
	_, err = fmt.Fprintln(e.Out, view.MsgPlaylistCreated)
	return err
}

func printSongs(w io.Writer, list []api.Song) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, view.MsgNoSongs)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range jukebox.Rows(list) {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", row.Index+1, row.Name, row.Genre)
	}
	return tw.Flush()
}

func printPlaylists(w io.Writer, list []view.Playlist) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, view.MsgPlaylistsNoneExists)
		return err
	}
	var b strings.Builder
	for _, pl := range list {
		fmt.Fprintf(&b, "%s (%d)\n", pl.Name, len(pl.Songs))
		for _, s := range pl.Songs {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
