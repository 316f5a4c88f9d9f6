package moq

import (
	"sync"
	"testing"

	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

// collectEmitter records every emitted event.
type collectEmitter struct {
	mu     sync.Mutex
	events []qlog.Event
}

func (c *collectEmitter) Emit(event qlog.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func TestSessionEmitterBackfillsGroupID(t *testing.T) {
	next := &collectEmitter{}
	emitter := NewSessionEmitter(next)

	// The session stream opens before the handshake completes, so its
	// event arrives without a group ID.
	emitter.Emit(StreamCreated(StreamTypeSession))
	if len(next.events) != 0 {
		t.Fatalf("stream event emitted before session_started: %d events", len(next.events))
	}

	emitter.Emit(SessionStartedClient([]uint64{1}, nil, NewTracingID()))

	if len(next.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(next.events))
	}
	stream, session := next.events[0], next.events[1]
	if stream.EventName() != "stream_created" {
		t.Errorf("first event: got %q, want stream_created", stream.EventName())
	}
	if session.EventName() != "session_started" {
		t.Errorf("second event: got %q, want session_started", session.EventName())
	}
	if session.GroupID == "" {
		t.Fatal("session event has no group ID")
	}
	if stream.GroupID != session.GroupID {
		t.Errorf("group mismatch: stream %q, session %q", stream.GroupID, session.GroupID)
	}
}

func TestSessionEmitterKeepsExistingGroupID(t *testing.T) {
	next := &collectEmitter{}
	emitter := NewSessionEmitter(next)

	emitter.Emit(SessionStartedServer(1, nil).WithGroupID("fixed"))

	if len(next.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(next.events))
	}
	if next.events[0].GroupID != "fixed" {
		t.Errorf("group ID: got %q, want %q", next.events[0].GroupID, "fixed")
	}
}

func TestSessionEmitterPassesOtherEventsThrough(t *testing.T) {
	next := &collectEmitter{}
	emitter := NewSessionEmitter(next)

	// Non-session streams and already-grouped events are not held back.
	emitter.Emit(StreamCreated(StreamTypeSubscribe))
	emitter.Emit(StreamParsed(StreamTypeSession).WithGroupID("g"))
	emitter.Emit(GroupCreated(1, 2))

	if len(next.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(next.events))
	}
}
