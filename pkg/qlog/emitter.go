package qlog

import (
	"context"
	"log/slog"
)

// Emitter is the interface protocol call sites use to hand off events.
// Pass a Writer for file capture, or NopEmitter to disable logging.
type Emitter interface {
	// Emit records one event. Implementations must be safe for concurrent
	// use and must never propagate failures to the caller.
	Emit(event Event)
}

// NopEmitter discards all events. Use when tracing is disabled.
// NopEmitter is safe for concurrent use and usable as a zero value.
type NopEmitter struct{}

// Emit discards the event.
func (NopEmitter) Emit(Event) {}

// MultiEmitter sends events to multiple emitters. Useful when you want
// both console output (via SlogEmitter) and file capture (via Writer)
// simultaneously.
type MultiEmitter struct {
	emitters []Emitter
}

// NewMultiEmitter creates a MultiEmitter that sends events to all provided
// emitters.
func NewMultiEmitter(emitters ...Emitter) *MultiEmitter {
	return &MultiEmitter{emitters: emitters}
}

// Emit sends the event to all configured emitters.
func (m *MultiEmitter) Emit(event Event) {
	for _, e := range m.emitters {
		e.Emit(event)
	}
}

// SlogEmitter mirrors trace events to an slog.Logger at Debug level.
// Useful for development when you want to see events in the console.
type SlogEmitter struct {
	logger *slog.Logger
}

// NewSlogEmitter creates a SlogEmitter that writes to the given logger.
func NewSlogEmitter(logger *slog.Logger) *SlogEmitter {
	return &SlogEmitter{logger: logger}
}

// Emit writes the event to the slog logger at Debug level.
func (s *SlogEmitter) Emit(event Event) {
	attrs := []slog.Attr{
		slog.Float64("time", event.Time),
		slog.String("name", event.Name),
	}
	if event.GroupID != "" {
		attrs = append(attrs, slog.String("group_id", event.GroupID))
	}
	if event.Path != "" {
		attrs = append(attrs, slog.String("path", event.Path))
	}
	if event.Data != nil {
		attrs = append(attrs, slog.Any("data", event.Data))
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "qlog", attrs...)
}

// Compile-time interface satisfaction checks.
var (
	_ Emitter = NopEmitter{}
	_ Emitter = (*MultiEmitter)(nil)
	_ Emitter = (*SlogEmitter)(nil)
)
