package player

// EventKind identifies what happened to a loaded source.
type EventKind int

const (
	// EventCanPlay fires once the source is buffered and decoded.
	EventCanPlay EventKind = iota
	// EventError fires when fetching or decoding failed.
	EventError
	// EventFinished fires when the source played to its end.
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventCanPlay:
		return "canplay"
	case EventError:
		return "error"
	case EventFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is emitted on the Events channel. Generation matches the value
// returned by the Load call the event belongs to, so a listener can drop
// events of a source that was replaced since.
type Event struct {
	Kind       EventKind
	Generation uint64
	Err        error
}

const eventBuffer = 16

// send delivers ev without blocking; events are dropped when nobody reads.
func send(ch chan Event, ev Event) {
	select {
	case ch <- ev:
	default:
	}
}
