// Package player plays audio sources fetched over HTTP.
//
// A source is buffered fully into memory, decoded, then handed to the
// beep speaker. Every Load starts a new generation; events of an older
// generation are still delivered but tagged so callers can ignore them.
package player

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/tunes/internal/logging"
)

// ErrNotReady is returned by Play when no decoded source is available.
var ErrNotReady = errors.New("player: source not ready")

// speakerRate is the output rate; sources at other rates are resampled.
const speakerRate = beep.SampleRate(44100)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	return speakerErr
}

// TrackInfo describes the loaded source.
type TrackInfo struct {
	Src      string
	Title    string
	Artist   string
	Album    string
	Genre    string
	Year     int
	Duration time.Duration
}

// defaultMaxSourceBytes bounds the memory held by one buffered source.
const defaultMaxSourceBytes = 256 << 20

// Option configures a Player.
type Option func(*Player)

// WithHTTPClient sets the client used to fetch sources.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Player) { p.client = c }
}

// WithMaxSourceBytes caps the size of a fetched source.
func WithMaxSourceBytes(n int64) Option {
	return func(p *Player) {
		if n > 0 {
			p.maxBytes = n
		}
	}
}

// WithUserAgent sets the User-Agent header of source requests.
func WithUserAgent(ua string) Option {
	return func(p *Player) { p.userAgent = ua }
}

type Player struct {
	mu sync.Mutex

	client    *http.Client
	userAgent string
	maxBytes  int64

	state     State
	gen       uint64
	cancel    context.CancelFunc
	progress  *progress
	streamer  beep.StreamSeekCloser
	format    beep.Format
	ctrl      *beep.Ctrl
	volume    *effects.Volume
	trackInfo *TrackInfo

	volumeLevel float64

	events chan Event
}

// New creates a player. Sources are fetched without a client timeout since
// cancellation comes from Load and Stop.
func New(opts ...Option) *Player {
	p := &Player{
		client:      &http.Client{},
		userAgent:   "tunes",
		maxBytes:    defaultMaxSourceBytes,
		state:       Stopped,
		volumeLevel: 1,
		progress:    &progress{},
		events:      make(chan Event, eventBuffer),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Events returns the channel on which source events are delivered.
func (p *Player) Events() <-chan Event { return p.events }

func (p *Player) Load(src string) uint64 {
	p.mu.Lock()
	p.stopLocked()

	p.gen++
	gen := p.gen
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	prog := &progress{}
	prog.total.Store(-1)
	p.progress = prog
	p.state = Loading
	p.trackInfo = &TrackInfo{Src: src}
	p.mu.Unlock()

	go p.load(ctx, gen, src, prog)
	return gen
}

func (p *Player) load(ctx context.Context, gen uint64, src string, prog *progress) {
	body, err := p.fetch(ctx, src, prog)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.fail(gen, err)
		return
	}

	streamer, format, err := decode(src, body)
	if err != nil {
		p.fail(gen, err)
		return
	}
	info := readTrackInfo(src, body.data)
	info.Duration = format.SampleRate.D(streamer.Len())

	p.mu.Lock()
	if gen != p.gen || ctx.Err() != nil {
		p.mu.Unlock()
		_ = streamer.Close()
		return
	}
	p.streamer = streamer
	p.format = format
	p.trackInfo = info
	p.mu.Unlock()

	send(p.events, Event{Kind: EventCanPlay, Generation: gen})
}

func (p *Player) fail(gen uint64, err error) {
	p.mu.Lock()
	current := gen == p.gen
	if current {
		p.state = Stopped
	}
	p.mu.Unlock()

	logging.Warn("player: load failed: %v", err)
	send(p.events, Event{Kind: EventError, Generation: gen, Err: err})
}

func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return ErrNotReady
	}
	if p.state.IsActive() {
		return nil
	}
	if err := initSpeaker(); err != nil {
		return err
	}

	p.ctrl = &beep.Ctrl{Streamer: p.streamer}
	var s beep.Streamer = p.ctrl
	if p.format.SampleRate != speakerRate {
		s = beep.Resample(4, p.format.SampleRate, speakerRate, s)
	}
	p.volume = &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   levelToVolume(p.volumeLevel),
		Silent:   p.volumeLevel <= 0,
	}

	gen := p.gen
	p.state = Playing
	// The callback runs on the speaker goroutine; finishing must not take
	// p.mu there since Stop holds p.mu while clearing the speaker.
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		go p.finished(gen)
	})))
	return nil
}

func (p *Player) finished(gen uint64) {
	p.mu.Lock()
	if gen == p.gen && p.state.IsActive() {
		p.state = Stopped
	}
	p.mu.Unlock()

	send(p.events, Event{Kind: EventFinished, Generation: gen})
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	if p.state.IsActive() {
		speaker.Clear()
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.state = Stopped
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.CanPause() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.CanResume() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	p.state = Playing
}

func (p *Player) Toggle() {
	switch p.State() {
	case Playing:
		p.Pause()
	case Paused:
		p.Resume()
	case Stopped, Loading:
	}
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.trackInfo
}

func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return 0
	}
	if !p.state.IsActive() {
		return p.format.SampleRate.D(p.streamer.Position())
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}

func (p *Player) Buffered() (loaded, total int64) {
	p.mu.Lock()
	prog := p.progress
	p.mu.Unlock()
	return prog.loaded.Load(), prog.total.Load()
}

// Close stops playback and cancels any pending load.
func (p *Player) Close() {
	p.Stop()
}
