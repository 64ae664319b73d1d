package jukebox

import (
	"github.com/llehouerou/tunes/internal/api"
	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/logging"
	"github.com/llehouerou/tunes/internal/metrics"
	"github.com/llehouerou/tunes/internal/player"
	"github.com/llehouerou/tunes/internal/view"
)

const volumeStep = 0.1

// LoadSong shows song as now playing and starts buffering it. Playback
// starts when the player reports the source can play.
func (j *Jukebox) LoadSong(song api.Song) {
	// Everything a load publishes happens under mu, so concurrent loads
	// cannot leave the display on one song and the player on another.
	// loadGen is also current before any event of the new generation.
	j.mu.Lock()
	defer j.mu.Unlock()

	j.loadGen = j.player.Load(song.Link)
	j.current = &song
	j.view.ShowNowPlaying(view.NowPlaying{
		Title: song.Name,
		Genre: song.Type,
		Cover: song.Cover,
		Link:  song.Link,
	})
	change := TrackChange{Song: song, Index: j.state.Index}
	j.forEachSub(func(s *Subscription) { s.sendTrack(change) })

	metrics.PlaybackLoadsTotal.Inc()
	logging.Debug("playback: loading %q from %s", song.Name, song.Link)
}

// Next loads the following song, wrapping to the first. No-op on an
// empty queue.
func (j *Jukebox) Next() bool {
	return j.step(catalog.State.Next)
}

// Prev loads the preceding song, wrapping to the last. No-op on an empty
// queue.
func (j *Jukebox) Prev() bool {
	return j.step(catalog.State.Prev)
}

func (j *Jukebox) step(move func(catalog.State) (catalog.State, api.Song, bool)) bool {
	j.mu.Lock()
	st, song, ok := move(j.state)
	if !ok {
		j.mu.Unlock()
		return false
	}
	j.state = st
	j.mu.Unlock()

	j.LoadSong(song)
	return true
}

// TogglePause pauses or resumes playback.
func (j *Jukebox) TogglePause() {
	prev := j.player.State()
	j.player.Toggle()
	j.publishState(prev)
}

// Stop stops playback; the current song stays selected.
func (j *Jukebox) Stop() {
	prev := j.player.State()
	j.mu.Lock()
	j.player.Stop()
	j.mu.Unlock()
	j.publishState(prev)
}

// VolumeUp raises the volume by one step and returns the new level.
func (j *Jukebox) VolumeUp() float64 {
	j.player.SetVolume(j.player.Volume() + volumeStep)
	return j.player.Volume()
}

// VolumeDown lowers the volume by one step and returns the new level.
func (j *Jukebox) VolumeDown() float64 {
	j.player.SetVolume(j.player.Volume() - volumeStep)
	return j.player.Volume()
}

func (j *Jukebox) publishState(prev player.State) {
	cur := j.player.State()
	if cur == prev {
		return
	}
	j.forEachSub(func(s *Subscription) { s.sendState(StateChange{Previous: prev, Current: cur}) })
}

// HandlePlayerEvent reacts to a player event. Events of a generation other
// than the last load are ignored.
func (j *Jukebox) HandlePlayerEvent(ev player.Event) {
	j.mu.Lock()
	if ev.Generation != j.loadGen {
		j.mu.Unlock()
		logging.Debug("playback: dropping stale %s event (generation %d, current %d)", ev.Kind, ev.Generation, j.loadGen)
		return
	}
	var song api.Song
	if j.current != nil {
		song = *j.current
	}

	switch ev.Kind {
	case player.EventCanPlay:
		prev := j.player.State()
		err := j.player.Play()
		j.mu.Unlock()
		if err != nil {
			metrics.PlaybackStartsTotal.WithLabelValues("error").Inc()
			logging.Warn("%s", errmsg.FormatWith(errmsg.OpPlaybackStart, song.Name, err))
			j.forEachSub(func(s *Subscription) { s.sendError(ErrorEvent{Operation: "play", Song: song, Err: err}) })
			return
		}
		metrics.PlaybackStartsTotal.WithLabelValues("success").Inc()
		j.publishState(prev)

	case player.EventError:
		j.mu.Unlock()
		msg := errmsg.FormatWith(errmsg.OpPlaybackLoad, song.Name, ev.Err)
		logging.Error("%s", msg)
		j.view.Alert(view.AlertError, msg)
		j.forEachSub(func(s *Subscription) { s.sendError(ErrorEvent{Operation: "load", Song: song, Err: ev.Err}) })

	case player.EventFinished:
		advance := j.autoAdvance
		j.mu.Unlock()
		j.forEachSub(func(s *Subscription) {
			s.sendState(StateChange{Previous: player.Playing, Current: player.Stopped})
		})
		if advance {
			j.Next()
		}

	default:
		j.mu.Unlock()
	}
}
