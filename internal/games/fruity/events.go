package fruity

import "sync"

// EventType identifies a presentation feedback event.
type EventType int

const (
	EventTileFlipped EventType = iota
	EventTileMatched
	EventTileMismatched
	EventLevelCompleted
	EventGameOver
	EventButtonActivated
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventTileFlipped:
		return "tileFlipped"
	case EventTileMatched:
		return "tileMatched"
	case EventTileMismatched:
		return "tileMismatched"
	case EventLevelCompleted:
		return "levelCompleted"
	case EventGameOver:
		return "gameOver"
	case EventButtonActivated:
		return "buttonActivated"
	default:
		return "unknown"
	}
}

// Event is emitted by the controller for audio/animation subscribers.
// The controller never waits on their handling.
type Event struct {
	Type   EventType
	TileID TileID // Set for tile events
	Level  int
	Score  int // Cumulative score at emission time
}

// Sink receives events. Emit must not block: it is called while the
// controller holds its lock.
type Sink interface {
	Emit(evt Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(evt Event)

// Emit calls f(evt).
func (f SinkFunc) Emit(evt Event) { f(evt) }

type nopSink struct{}

func (nopSink) Emit(Event) {}

// MultiSink fans events out to several sinks in order.
type MultiSink []Sink

// Emit forwards evt to every sink.
func (m MultiSink) Emit(evt Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(evt)
		}
	}
}

// ChannelSink buffers events on a channel for a consumer on another goroutine.
// When the buffer is full the oldest event is dropped.
type ChannelSink struct {
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewChannelSink creates a sink with the given buffer size (default 64).
func NewChannelSink(bufferSize int) *ChannelSink {
	if bufferSize < 1 {
		bufferSize = 64
	}
	return &ChannelSink{
		events: make(chan Event, bufferSize),
		done:   make(chan struct{}),
	}
}

// Emit enqueues evt without blocking.
func (s *ChannelSink) Emit(evt Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.events <- evt:
	default:
		// Buffer full, drop oldest and retry once
		select {
		case <-s.events:
		default:
		}
		select {
		case s.events <- evt:
		default:
		}
	}
}

// Events returns the receive side of the buffer.
func (s *ChannelSink) Events() <-chan Event {
	return s.events
}

// Done is closed once the sink is closed.
func (s *ChannelSink) Done() <-chan struct{} {
	return s.done
}

// Close stops accepting events. Safe to call multiple times.
func (s *ChannelSink) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}
