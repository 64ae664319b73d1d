package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/view"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00"},
		{59 * time.Second, "0:59"},
		{83 * time.Second, "1:23"},
		{61 * time.Minute, "61:00"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "FormatDuration(%v)", tt.in)
	}
}

func TestBuffering(t *testing.T) {
	assert.Equal(t, "buffering 0 B", Buffering(0, -1))
	assert.Equal(t, "buffering 1.5 MB / 4.0 MB", Buffering(1_500_000, 4_000_000))
}

func TestProgressBar(t *testing.T) {
	t.Run("fills proportionally", func(t *testing.T) {
		got := ansi.Strip(ProgressBar(30*time.Second, 60*time.Second, 20))
		assert.Equal(t, 20, render.Width(got))
		assert.True(t, strings.HasPrefix(got, "0:30 ━━━━━─"), got)
		assert.True(t, strings.HasSuffix(got, "─ 1:00"), got)
	})

	t.Run("narrow falls back to times", func(t *testing.T) {
		assert.Equal(t, "0:30 / 1:00", ProgressBar(30*time.Second, time.Minute, 8))
	})

	t.Run("zero duration", func(t *testing.T) {
		got := ansi.Strip(ProgressBar(0, 0, 20))
		assert.NotContains(t, got, "━")
	})
}

func TestNewState(t *testing.T) {
	m := player.NewMock()
	m.Load("http://x/a.mp3")
	m.SetBuffered(10, 100)
	m.SetVolume(0.5)

	s := NewState(view.NowPlaying{Title: "A", Genre: "Pop"}, m, ModeCompact)

	assert.Equal(t, "A", s.Title)
	assert.Equal(t, "Pop", s.Genre)
	assert.Equal(t, player.Loading, s.Status)
	assert.Equal(t, int64(10), s.Loaded)
	assert.Equal(t, int64(100), s.Total)
	assert.InDelta(t, 0.5, s.Volume, 1e-9)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		contains []string
	}{
		{
			name:     "idle",
			state:    State{},
			contains: []string{"Nothing playing"},
		},
		{
			name:     "playing",
			state:    State{Title: "Song A", Genre: "Pop", Status: player.Playing, Position: time.Second, Duration: time.Minute, Volume: 1},
			contains: []string{"▶", "Song A", "Pop", "0:01", "1:00", "vol 100%"},
		},
		{
			name:     "loading",
			state:    State{Title: "Song B", Status: player.Loading, Loaded: 2048},
			contains: []string{"Song B", "buffering 2.0 kB"},
		},
		{
			name:     "expanded",
			state:    State{Title: "Song C", Genre: "Rock", Status: player.Paused, Mode: ModeExpanded},
			contains: []string{"Song C", "Rock", "Paused"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(Render(tt.state, 100))
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			lines := strings.Split(out, "\n")
			assert.Len(t, lines, Height(tt.state.Mode))
			for _, line := range lines {
				assert.LessOrEqual(t, render.Width(line), 100)
			}
		})
	}
}

func TestHeight(t *testing.T) {
	assert.Equal(t, 3, Height(ModeCompact))
	assert.Equal(t, ui.CoverRows+2, Height(ModeExpanded))
}
