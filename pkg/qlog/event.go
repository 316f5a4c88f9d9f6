package qlog

import (
	"fmt"
	"strings"
	"time"
)

// maxRawDataLen bounds how many payload bytes RawInfo captures per record.
const maxRawDataLen = 64

// EventData is one payload variant of the event union. Each protocol
// subpackage contributes a closed set of payload types implementing it;
// payloads are pure data and carry their schema-qualified identity.
type EventData interface {
	// Category returns the event schema identifier the payload belongs to
	// (e.g. "moq-transfork-03"). It forms the prefix of the wire name.
	Category() string

	// EventName returns the event name within the category
	// (e.g. "stream_created").
	EventName() string
}

// Event is a single qlog trace event. Events are immutable values:
// constructed at the call site, handed to a Writer or Emitter, and never
// retained after serialization.
type Event struct {
	// Time is the event timestamp in milliseconds, interpreted according
	// to the trace's time_format (default: relative to the Unix epoch).
	Time float64 `json:"time" cbor:"time"`

	// Name is the schema-qualified event name, "<category>:<event-name>".
	Name string `json:"name" cbor:"name"`

	// Data is the protocol-specific payload.
	Data EventData `json:"data" cbor:"data"`

	// Path identifies the network path the event applies to.
	Path string `json:"path,omitempty" cbor:"path,omitempty"`

	// GroupID correlates events belonging to one logical group
	// (typically one connection or session).
	GroupID string `json:"group_id,omitempty" cbor:"group_id,omitempty"`

	// ProtocolTypes lists additional protocols the event relates to.
	ProtocolTypes []string `json:"protocol_types,omitempty" cbor:"protocol_types,omitempty"`

	// SystemInfo records process/thread provenance, when captured.
	SystemInfo *SystemInfo `json:"system_info,omitempty" cbor:"system_info,omitempty"`

	// CustomFields carries implementation-specific annotations.
	CustomFields map[string]string `json:"custom_fields,omitempty" cbor:"custom_fields,omitempty"`
}

// NewEvent creates an event for the given payload, stamped with the
// current wall-clock time. Construction is pure; nothing is written until
// the event is handed to a Writer.
func NewEvent(data EventData) Event {
	return NewEventAt(time.Now(), data)
}

// NewEventAt creates an event with an explicit timestamp.
func NewEventAt(t time.Time, data EventData) Event {
	return Event{
		Time: float64(t.UnixMilli()),
		Name: data.Category() + ":" + data.EventName(),
		Data: data,
	}
}

// WithGroupID returns a copy of the event with the group ID set.
func (e Event) WithGroupID(id string) Event {
	e.GroupID = id
	return e
}

// WithPath returns a copy of the event with the path ID set.
func (e Event) WithPath(path string) Event {
	e.Path = path
	return e
}

// WithTime returns a copy of the event stamped with t.
func (e Event) WithTime(t time.Time) Event {
	e.Time = float64(t.UnixMilli())
	return e
}

// Category returns the schema prefix of the event name.
func (e Event) Category() string {
	category, _, _ := strings.Cut(e.Name, ":")
	return category
}

// EventName returns the event name without its schema prefix.
func (e Event) EventName() string {
	if _, name, ok := strings.Cut(e.Name, ":"); ok {
		return name
	}
	return e.Name
}

// SystemInfo describes where in the host system an event originated.
type SystemInfo struct {
	ProcessorID *uint32 `json:"processor_id,omitempty" cbor:"processor_id,omitempty"`
	ProcessID   *uint32 `json:"process_id,omitempty" cbor:"process_id,omitempty"`
	ThreadID    *uint32 `json:"thread_id,omitempty" cbor:"thread_id,omitempty"`
}

// RawInfo captures the raw bytes of a wire image, truncated for logging.
type RawInfo struct {
	// Length is the full byte length, including headers and trailers.
	Length *uint64 `json:"length,omitempty" cbor:"length,omitempty"`

	// PayloadLength is the byte length of the payload alone.
	PayloadLength *uint64 `json:"payload_length,omitempty" cbor:"payload_length,omitempty"`

	// Data is the (possibly truncated) contents as an uppercase hex string.
	Data string `json:"data,omitempty" cbor:"data,omitempty"`
}

// NewRawInfo builds a RawInfo for the given wire image. Only the first 64
// bytes of data are retained.
func NewRawInfo(length *uint64, data []byte) RawInfo {
	if data == nil {
		return RawInfo{Length: length}
	}
	payloadLength := uint64(len(data))
	if payloadLength > maxRawDataLen {
		data = data[:maxRawDataLen]
	}
	return RawInfo{
		Length:        length,
		PayloadLength: &payloadLength,
		Data:          bytesToHex(data),
	}
}

// bytesToHex renders bytes as uppercase hex without separators.
func bytesToHex(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, c := range b {
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}
