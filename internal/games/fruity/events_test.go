package fruity

import "testing"

func TestChannelSinkDropsOldest(t *testing.T) {
	s := NewChannelSink(2)
	s.Emit(Event{Type: EventTileFlipped, TileID: 1})
	s.Emit(Event{Type: EventTileFlipped, TileID: 2})
	s.Emit(Event{Type: EventTileFlipped, TileID: 3})

	first := <-s.Events()
	second := <-s.Events()
	if first.TileID != 2 || second.TileID != 3 {
		t.Errorf("got tiles %d,%d, expected 2,3", first.TileID, second.TileID)
	}
}

func TestChannelSinkClose(t *testing.T) {
	s := NewChannelSink(4)
	s.Close()
	s.Close()

	s.Emit(Event{Type: EventGameOver})
	select {
	case evt := <-s.Events():
		t.Errorf("received %v after Close()", evt.Type)
	default:
	}

	select {
	case <-s.Done():
	default:
		t.Error("Done() not closed")
	}
}

func TestMultiSink(t *testing.T) {
	var a, b int
	m := MultiSink{
		SinkFunc(func(Event) { a++ }),
		nil,
		SinkFunc(func(Event) { b++ }),
	}
	m.Emit(Event{Type: EventButtonActivated})
	if a != 1 || b != 1 {
		t.Errorf("a=%d b=%d, expected both 1", a, b)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventLevelCompleted.String() != "levelCompleted" {
		t.Errorf("String() = %q", EventLevelCompleted.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("String() = %q", EventType(99).String())
	}
}
