// Package playerbar renders the now-playing bar.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/ui"
	"github.com/llehouerou/tunes/internal/ui/render"
	"github.com/llehouerou/tunes/internal/ui/styles"
	"github.com/llehouerou/tunes/internal/view"
)

// DisplayMode controls the player bar appearance.
type DisplayMode int

const (
	ModeCompact  DisplayMode = iota // one content line
	ModeExpanded                    // cover art beside title, genre and progress
)

// State holds everything needed to render the bar.
type State struct {
	Title    string
	Genre    string
	Status   player.State
	Position time.Duration
	Duration time.Duration
	Loaded   int64
	Total    int64
	Volume   float64
	Mode     DisplayMode
}

// NewState snapshots the player for the song last shown as now playing.
func NewState(np view.NowPlaying, p player.Interface, mode DisplayMode) State {
	loaded, total := p.Buffered()
	return State{
		Title:    np.Title,
		Genre:    np.Genre,
		Status:   p.State(),
		Position: p.Position(),
		Duration: p.Duration(),
		Loaded:   loaded,
		Total:    total,
		Volume:   p.Volume(),
		Mode:     mode,
	}
}

// Height returns the rows taken by the bar, borders included.
func Height(mode DisplayMode) int {
	if mode == ModeExpanded {
		return ui.CoverRows + ui.BorderHeight
	}
	return 1 + ui.BorderHeight
}

// Render draws the bar at the given outer width. An empty title renders an
// idle bar.
func Render(s State, width int) string {
	inner := max(width-ui.BorderWidth-2, 0)
	var body string
	if s.Mode == ModeExpanded && inner >= ui.CoverCols+20 {
		body = expanded(s, inner)
	} else {
		body = compact(s, inner)
	}
	return styles.T().S().Panel.Padding(0, 1).Width(width - ui.BorderWidth).Render(body)
}

func compact(s State, width int) string {
	st := styles.T().S()
	if s.Title == "" {
		return st.Muted.Render(render.Fit("Nothing playing", width))
	}

	right := progressLine(s, max(width/3, ui.MinProgressBarWidth+12)) + "  " + volumeLabel(s.Volume)
	left := symbol(s.Status) + " " + st.Title.Render(render.Sanitize(s.Title))
	if s.Genre != "" {
		left += "  " + st.Genre.Render(render.Sanitize(s.Genre))
	}
	return render.Row(left, right, width)
}

func expanded(s State, width int) string {
	st := styles.T().S()
	metaWidth := width - ui.CoverCols - 2

	title := s.Title
	if title == "" {
		title = "Nothing playing"
	}
	lines := []string{
		st.Title.Render(render.Truncate(title, metaWidth)),
		st.Genre.Render(render.Truncate(s.Genre, metaWidth)),
		"",
		symbol(s.Status) + " " + st.Muted.Render(s.Status.String()),
		progressLine(s, metaWidth),
		"",
		st.Muted.Render(volumeLabel(s.Volume)),
	}
	for len(lines) < ui.CoverRows {
		lines = append(lines, "")
	}

	// The cover is drawn over the blank cells on the left after the frame.
	gap := strings.Repeat(" ", ui.CoverCols+2)
	var b strings.Builder
	for i, line := range lines[:ui.CoverRows] {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(gap)
		b.WriteString(line)
	}
	return b.String()
}

func symbol(s player.State) string {
	st := styles.T().S()
	switch s {
	case player.Playing:
		return st.Playing.Render("▶")
	case player.Paused:
		return st.Muted.Render("⏸")
	case player.Loading:
		return st.Muted.Render("…")
	default:
		return st.Subtle.Render("■")
	}
}

// progressLine shows buffering while loading and elapsed time otherwise.
func progressLine(s State, width int) string {
	if s.Status == player.Loading {
		return styles.T().S().Muted.Render(Buffering(s.Loaded, s.Total))
	}
	return ProgressBar(s.Position, s.Duration, width)
}

// Buffering formats the download progress of the current source.
func Buffering(loaded, total int64) string {
	if total <= 0 {
		return "buffering " + humanize.Bytes(uint64(max(loaded, 0)))
	}
	return fmt.Sprintf("buffering %s / %s",
		humanize.Bytes(uint64(max(loaded, 0))), humanize.Bytes(uint64(total)))
}

// ProgressBar renders "1:23 ━━━━────── 4:56" in width cells.
func ProgressBar(position, duration time.Duration, width int) string {
	pos, dur := FormatDuration(position), FormatDuration(duration)
	barWidth := width - len(pos) - len(dur) - 2
	if barWidth < ui.MinProgressBarWidth {
		return pos + " / " + dur
	}

	var ratio float64
	if duration > 0 {
		ratio = min(float64(position)/float64(duration), 1)
	}
	filled := int(float64(barWidth) * ratio)

	st := styles.T().S()
	return pos + " " +
		st.Playing.Render(strings.Repeat("━", filled)) +
		st.Subtle.Render(strings.Repeat("─", barWidth-filled)) +
		" " + dur
}

// FormatDuration renders m:ss.
func FormatDuration(d time.Duration) string {
	d = max(d, 0)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func volumeLabel(v float64) string {
	return fmt.Sprintf("vol %3d%%", int(v*100+0.5))
}
