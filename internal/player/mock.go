package player

import (
	"sync"
	"time"
)

// Mock is a test double for Player. Loads never touch the network; tests
// drive the source lifecycle with the Simulate helpers.
type Mock struct {
	mu sync.Mutex

	state     State
	gen       uint64
	ready     bool
	position  time.Duration
	duration  time.Duration
	trackInfo *TrackInfo
	volume    float64
	loaded    int64
	total     int64
	playErr   error
	loadCalls []string
	playCalls int
	stopCalls int
	events    chan Event
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{
		state:  Stopped,
		volume: 1,
		total:  -1,
		events: make(chan Event, eventBuffer),
	}
}

func (m *Mock) Load(src string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loadCalls = append(m.loadCalls, src)
	m.gen++
	m.ready = false
	m.state = Loading
	m.trackInfo = &TrackInfo{Src: src}
	return m.gen
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if !m.ready {
		return ErrNotReady
	}
	m.state = Playing
	return nil
}

func (m *Mock) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCalls++
	m.ready = false
	m.state = Stopped
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Paused {
		m.state = Playing
	}
}

func (m *Mock) Toggle() {
	switch m.State() {
	case Playing:
		m.Pause()
	case Paused:
		m.Resume()
	case Stopped, Loading:
	}
}

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) TrackInfo() *TrackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trackInfo
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Buffered() (int64, int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded, m.total
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = min(max(level, 0), 1)
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() { m.Stop() }

// Test helpers

func (m *Mock) SetState(s State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = s
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetPosition(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = d
}

func (m *Mock) SetBuffered(loaded, total int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaded, m.total = loaded, total
}

// LoadCalls returns every source passed to Load, in order.
func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

// LastLoad returns the most recent Load source, or "" if none.
func (m *Mock) LastLoad() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.loadCalls) == 0 {
		return ""
	}
	return m.loadCalls[len(m.loadCalls)-1]
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}

// Generation returns the generation of the last Load.
func (m *Mock) Generation() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// SimulateCanPlay marks the current source ready and returns the event the
// real player would emit. The event is also queued on Events.
func (m *Mock) SimulateCanPlay() Event {
	m.mu.Lock()
	m.ready = true
	ev := Event{Kind: EventCanPlay, Generation: m.gen}
	m.mu.Unlock()

	send(m.events, ev)
	return ev
}

// SimulateError fails the current source.
func (m *Mock) SimulateError(err error) Event {
	m.mu.Lock()
	m.state = Stopped
	ev := Event{Kind: EventError, Generation: m.gen, Err: err}
	m.mu.Unlock()

	send(m.events, ev)
	return ev
}

// SimulateFinished ends the current source.
func (m *Mock) SimulateFinished() Event {
	m.mu.Lock()
	m.state = Stopped
	ev := Event{Kind: EventFinished, Generation: m.gen}
	m.mu.Unlock()

	send(m.events, ev)
	return ev
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
