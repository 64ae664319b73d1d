package app

import (
	"context"
	"net/http"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tunes/internal/icons"
	"github.com/llehouerou/tunes/internal/jukebox"
	"github.com/llehouerou/tunes/internal/keymap"
	"github.com/llehouerou/tunes/internal/notify"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/albumart"
	"github.com/llehouerou/tunes/internal/ui/list"
	"github.com/llehouerou/tunes/internal/ui/styles"
	"github.com/llehouerou/tunes/internal/view"
)

// Focus is the component receiving keys.
type Focus int

const (
	FocusSongs Focus = iota
	FocusSearch
	FocusPlaylistName
	FocusHelp
)

// Alert is the message shown in the status line.
type Alert struct {
	Level view.AlertLevel
	Text  string
}

// Deps are the collaborators of the program.
type Deps struct {
	Jukebox  *jukebox.Jukebox
	Bridge   *Bridge
	Notifier notify.Notifier   // nil disables notifications
	Covers   *albumart.Renderer // nil disables cover art in the player bar
	// HTTPClient fetches cover images; nil uses http.DefaultClient.
	HTTPClient *http.Client
}

// Model is the root application model.
type Model struct {
	ctx      context.Context
	jukebox  *jukebox.Jukebox
	player   player.Interface
	bridge   *Bridge
	sub      *jukebox.Subscription
	notifier notify.Notifier
	covers   *albumart.Renderer
	http     *http.Client

	keys      *keymap.Resolver
	inputKeys *keymap.Resolver

	Focus Focus

	Songs    list.Model[view.Row]
	SongsMsg string
	Loading  bool
	spinner  spinner.Model

	// Genres holds the filter options; "" at index 0 is "All".
	Genres   []string
	GenreIdx int

	Playlists        []view.Playlist
	PlaylistsMsg     string
	PlaylistsVisible bool

	search textinput.Model
	name   textinput.Model

	NowPlaying    view.NowPlaying
	coverIcon     string
	artUpload     string
	notifyID      uint32
	pendingNotify bool

	Alert    *Alert
	alertSeq int

	Width  int
	Height int
}

// New creates the application model. The context bounds every backend
// request started by the program.
func New(ctx context.Context, deps Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.T().S().Playing

	search := textinput.New()
	search.Prompt = icons.SearchPrompt()
	search.Placeholder = "song name"
	search.CharLimit = 100

	name := textinput.New()
	name.Prompt = "> "
	name.Placeholder = "playlist name"
	name.CharLimit = 100

	notifier := deps.Notifier
	if notifier == nil {
		notifier = notify.Disabled()
	}
	client := deps.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return Model{
		ctx:              ctx,
		jukebox:          deps.Jukebox,
		player:           deps.Jukebox.Player(),
		bridge:           deps.Bridge,
		sub:              deps.Jukebox.Subscribe(),
		notifier:         notifier,
		covers:           deps.Covers,
		http:             client,
		keys:             keymap.NewResolver(keymap.Excluding("input")),
		inputKeys:        keymap.NewResolver(keymap.ByContext("input")),
		Songs:            list.New[view.Row](ui.ScrollMargin),
		Loading:          true,
		spinner:          sp,
		Genres:           []string{""},
		PlaylistsVisible: true,
		search:           search,
		name:             name,
	}
}

// Init starts the catalog and playlist requests, the event watchers and
// the progress tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		LoadCatalogCmd(m.ctx, m.jukebox),
		FetchPlaylistsCmd(m.ctx, m.jukebox),
		WaitForView(m.bridge),
		WatchJukebox(m.sub),
		TickCmd(),
	)
}
