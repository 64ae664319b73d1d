package player

import "time"

// Interface defines the player contract for dependency injection and testing.
type Interface interface {
	// Load stops the current source and starts buffering src. It returns the
	// generation that tags every event emitted for this source.
	Load(src string) uint64
	// Play starts the loaded source. It fails with ErrNotReady before the
	// EventCanPlay event of the current generation.
	Play() error
	Stop()
	Pause()
	Resume()
	Toggle()
	State() State
	TrackInfo() *TrackInfo
	Position() time.Duration
	Duration() time.Duration
	// Buffered reports downloaded bytes and the expected total (-1 if unknown).
	Buffered() (loaded, total int64)
	SetVolume(level float64)
	Volume() float64
	Events() <-chan Event
	Close()
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
