package qlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// HeaderRecord is the decoded form of a trace header record.
type HeaderRecord struct {
	FileDetails
	Trace TraceSeq `json:"trace" cbor:"trace"`
}

// EventRecord is the decoded form of an event record. Payload fields are
// kept generic: the reader does not need the protocol catalogs compiled in
// to consume a trace.
type EventRecord struct {
	Time          float64           `json:"time" cbor:"time"`
	Name          string            `json:"name" cbor:"name"`
	Data          map[string]any    `json:"data" cbor:"data"`
	Path          string            `json:"path,omitempty" cbor:"path,omitempty"`
	GroupID       string            `json:"group_id,omitempty" cbor:"group_id,omitempty"`
	ProtocolTypes []string          `json:"protocol_types,omitempty" cbor:"protocol_types,omitempty"`
	CustomFields  map[string]string `json:"custom_fields,omitempty" cbor:"custom_fields,omitempty"`
}

// Category returns the schema prefix of the record name.
func (r EventRecord) Category() string {
	ev := Event{Name: r.Name}
	return ev.Category()
}

// EventName returns the record name without its schema prefix.
func (r EventRecord) EventName() string {
	ev := Event{Name: r.Name}
	return ev.EventName()
}

// Record is one decoded trace record: exactly one of Header or Event is
// set.
type Record struct {
	Header *HeaderRecord
	Event  *EventRecord
}

// MarshalSeq re-encodes the record into its framed on-disk form, for tools
// that rewrite traces.
func (r Record) MarshalSeq(serialization Serialization) ([]byte, error) {
	switch {
	case r.Header != nil:
		return encodeRecord(serialization, *r.Header)
	case r.Event != nil:
		return encodeRecord(serialization, *r.Event)
	default:
		return nil, fmt.Errorf("empty record")
	}
}

// Filter specifies criteria for filtering event records.
// Empty/nil fields match all events for that criterion.
// Header records always match.
type Filter struct {
	// NamePrefix matches events whose wire name starts with the prefix
	// (e.g. "moq-transfork-03:" for a whole category).
	NamePrefix string

	// GroupID filters by exact group ID match.
	GroupID string

	// TimeStart filters events at or after this timestamp (ms).
	TimeStart *float64

	// TimeEnd filters events before this timestamp (ms).
	TimeEnd *float64
}

// matches returns true if the event matches all filter criteria.
func (f *Filter) matches(event EventRecord) bool {
	if f.NamePrefix != "" && !strings.HasPrefix(event.Name, f.NamePrefix) {
		return false
	}
	if f.GroupID != "" && event.GroupID != f.GroupID {
		return false
	}
	if f.TimeStart != nil && event.Time < *f.TimeStart {
		return false
	}
	if f.TimeEnd != nil && event.Time >= *f.TimeEnd {
		return false
	}
	return true
}

// Reader reads records from a qlog trace file, detecting the serialization
// from the first byte. It provides an iterator interface for streaming
// large files.
type Reader struct {
	closer io.Closer
	br     *bufio.Reader
	cbor   *cbor.Decoder
	filter Filter
	detect bool
}

// NewReader creates a Reader that reads all records from the trace file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that reads the header and all event
// records matching the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r := NewStreamReader(f)
	r.closer = f
	r.filter = filter
	return r, nil
}

// NewStreamReader creates a Reader over an arbitrary byte stream. Close is
// a no-op for stream readers.
func NewStreamReader(src io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(src)}
}

// Next returns the next record that matches the filter.
// Returns io.EOF when no more records are available.
func (r *Reader) Next() (Record, error) {
	for {
		rec, err := r.next()
		if err != nil {
			return Record{}, err
		}
		if rec.Header != nil || r.filter.matches(*rec.Event) {
			return rec, nil
		}
	}
}

// next decodes one record regardless of the filter.
func (r *Reader) next() (Record, error) {
	if !r.detect {
		first, err := r.br.Peek(1)
		if err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, err
		}
		if first[0] != recordSeparator {
			r.cbor = seqDecMode.NewDecoder(r.br)
		}
		r.detect = true
	}

	var raw rawRecord
	if r.cbor != nil {
		if err := r.cbor.Decode(&raw); err != nil {
			if err == io.EOF {
				return Record{}, io.EOF
			}
			return Record{}, fmt.Errorf("malformed record: %w", err)
		}
	} else {
		body, err := r.readJSONSeqBody()
		if err != nil {
			return Record{}, err
		}
		if err := json.Unmarshal(body, &raw); err != nil {
			return Record{}, fmt.Errorf("malformed record: %w", err)
		}
	}
	return raw.record(), nil
}

// readJSONSeqBody consumes one RS-prefixed, LF-terminated record body.
func (r *Reader) readJSONSeqBody() ([]byte, error) {
	sep, err := r.br.ReadByte()
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, err
	}
	if sep != recordSeparator {
		return nil, fmt.Errorf("malformed record: expected record separator, got 0x%02X", sep)
	}
	body, err := r.br.ReadBytes(lineFeed)
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("malformed record: truncated")
		}
		return nil, err
	}
	return body[:len(body)-1], nil
}

// Close closes the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// rawRecord is the union of header and event fields, used to classify a
// decoded record: events carry a name, headers a file schema.
type rawRecord struct {
	FileSchema          string    `json:"file_schema" cbor:"file_schema"`
	SerializationFormat string    `json:"serialization_format" cbor:"serialization_format"`
	Title               string    `json:"title,omitempty" cbor:"title,omitempty"`
	Description         string    `json:"description,omitempty" cbor:"description,omitempty"`
	EventSchemas        []string  `json:"event_schemas,omitempty" cbor:"event_schemas,omitempty"`
	Trace               *TraceSeq `json:"trace,omitempty" cbor:"trace,omitempty"`

	Time          float64           `json:"time,omitempty" cbor:"time,omitempty"`
	Name          string            `json:"name,omitempty" cbor:"name,omitempty"`
	Data          map[string]any    `json:"data,omitempty" cbor:"data,omitempty"`
	Path          string            `json:"path,omitempty" cbor:"path,omitempty"`
	GroupID       string            `json:"group_id,omitempty" cbor:"group_id,omitempty"`
	ProtocolTypes []string          `json:"protocol_types,omitempty" cbor:"protocol_types,omitempty"`
	CustomFields  map[string]string `json:"custom_fields,omitempty" cbor:"custom_fields,omitempty"`
}

// record converts the raw union into a classified Record.
func (raw rawRecord) record() Record {
	if raw.Name != "" {
		return Record{Event: &EventRecord{
			Time:          raw.Time,
			Name:          raw.Name,
			Data:          raw.Data,
			Path:          raw.Path,
			GroupID:       raw.GroupID,
			ProtocolTypes: raw.ProtocolTypes,
			CustomFields:  raw.CustomFields,
		}}
	}
	var trace TraceSeq
	if raw.Trace != nil {
		trace = *raw.Trace
	}
	return Record{Header: &HeaderRecord{
		FileDetails: FileDetails{
			FileSchema:          raw.FileSchema,
			SerializationFormat: raw.SerializationFormat,
			Title:               raw.Title,
			Description:         raw.Description,
			EventSchemas:        raw.EventSchemas,
		},
		Trace: trace,
	}}
}
