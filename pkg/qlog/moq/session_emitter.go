package moq

import (
	"sync"

	"github.com/google/uuid"
	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

// SessionEmitter pairs a session's stream event with its session_started
// event. The stream for a new session is opened before the session
// handshake completes, so its stream_created/stream_parsed event has no
// group ID yet. SessionEmitter holds such events back; when the matching
// session_started arrives, both are stamped with the session's group ID
// and emitted in order. All other events pass through unchanged.
type SessionEmitter struct {
	next qlog.Emitter

	mu   sync.Mutex
	held []qlog.Event
}

// NewSessionEmitter wraps next with session group-ID pairing.
func NewSessionEmitter(next qlog.Emitter) *SessionEmitter {
	return &SessionEmitter{next: next}
}

// Emit implements qlog.Emitter.
func (s *SessionEmitter) Emit(event qlog.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isSessionStreamWithoutGroup(event) {
		s.held = append(s.held, event)
		return
	}

	if event.EventName() == "session_started" {
		if event.GroupID == "" {
			event.GroupID = uuid.NewString()
		}
		if len(s.held) > 0 {
			held := s.held[0]
			s.held = s.held[1:]
			s.next.Emit(held.WithGroupID(event.GroupID))
		}
	}
	s.next.Emit(event)
}

// isSessionStreamWithoutGroup reports whether the event is a session
// stream_created/stream_parsed that has not been assigned a group yet.
func isSessionStreamWithoutGroup(event qlog.Event) bool {
	if event.GroupID != "" {
		return false
	}
	name := event.EventName()
	if name != "stream_created" && name != "stream_parsed" {
		return false
	}
	stream, ok := event.Data.(Stream)
	return ok && stream.StreamType == StreamTypeSession
}

// Compile-time interface satisfaction check.
var _ qlog.Emitter = (*SessionEmitter)(nil)
