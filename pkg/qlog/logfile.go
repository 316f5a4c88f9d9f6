package qlog

import "fmt"

// Schema and format identifiers for the sequential qlog file format.
const (
	// QlogVersion is the qlog schema version records declare.
	QlogVersion = "0.9"

	// FileSchemaSequential identifies the streaming qlog file schema.
	FileSchemaSequential = "urn:ietf:params:qlog:file:sequential"
)

// Serialization selects the on-disk record serialization.
type Serialization uint8

const (
	// SerializationJSONSEQ is RFC 7464 JSON Text Sequences (the default).
	SerializationJSONSEQ Serialization = 0
	// SerializationCBORSEQ is a sequence of self-delimiting CBOR items.
	SerializationCBORSEQ Serialization = 1
)

// String returns the short format name.
func (s Serialization) String() string {
	switch s {
	case SerializationJSONSEQ:
		return "json-seq"
	case SerializationCBORSEQ:
		return "cbor-seq"
	default:
		return "unknown"
	}
}

// MIME returns the serialization_format value declared in the file header.
func (s Serialization) MIME() string {
	switch s {
	case SerializationJSONSEQ:
		return "application/qlog+json-seq"
	case SerializationCBORSEQ:
		return "application/qlog+cbor-seq"
	default:
		return "application/octet-stream"
	}
}

// FileDetails is the file-level portion of the header record: schema and
// serialization identity plus free-text title and description. Immutable
// once written; a trace file carries exactly one.
type FileDetails struct {
	FileSchema          string   `json:"file_schema" cbor:"file_schema"`
	SerializationFormat string   `json:"serialization_format" cbor:"serialization_format"`
	Title               string   `json:"title,omitempty" cbor:"title,omitempty"`
	Description         string   `json:"description,omitempty" cbor:"description,omitempty"`
	EventSchemas        []string `json:"event_schemas" cbor:"event_schemas"`
}

// NewFileDetails builds the file-level header metadata. At least one event
// schema is required so that readers can interpret event names; violations
// are reported as a ConfigError.
func NewFileDetails(serialization Serialization, title, description string, eventSchemas []string) (FileDetails, error) {
	if serialization != SerializationJSONSEQ && serialization != SerializationCBORSEQ {
		return FileDetails{}, &ConfigError{Field: "serialization_format", Reason: fmt.Sprintf("unknown serialization %d", serialization)}
	}
	if len(eventSchemas) == 0 {
		return FileDetails{}, &ConfigError{Field: "event_schemas", Reason: "at least one event schema is required"}
	}
	return FileDetails{
		FileSchema:          FileSchemaSequential,
		SerializationFormat: serialization.MIME(),
		Title:               title,
		Description:         description,
		EventSchemas:        eventSchemas,
	}, nil
}

// validate checks a FileDetails that was constructed directly rather than
// through NewFileDetails.
func (d FileDetails) validate() error {
	if d.FileSchema == "" {
		return &ConfigError{Field: "file_schema", Reason: "missing"}
	}
	if d.SerializationFormat == "" {
		return &ConfigError{Field: "serialization_format", Reason: "missing"}
	}
	if len(d.EventSchemas) == 0 {
		return &ConfigError{Field: "event_schemas", Reason: "at least one event schema is required"}
	}
	return nil
}

// TraceSeq is the trace-level portion of the header record.
type TraceSeq struct {
	Title        string        `json:"title,omitempty" cbor:"title,omitempty"`
	Description  string        `json:"description,omitempty" cbor:"description,omitempty"`
	CommonFields *CommonFields `json:"common_fields,omitempty" cbor:"common_fields,omitempty"`
	VantagePoint *VantagePoint `json:"vantage_point,omitempty" cbor:"vantage_point,omitempty"`
}

// validate checks the trace metadata.
func (t TraceSeq) validate() error {
	if t.VantagePoint != nil {
		switch t.VantagePoint.Type {
		case VantagePointClient, VantagePointServer, VantagePointNetwork, VantagePointUnknown:
		default:
			return &ConfigError{Field: "vantage_point.type", Reason: fmt.Sprintf("unknown vantage point type %q", t.VantagePoint.Type)}
		}
	}
	if t.CommonFields != nil {
		switch t.CommonFields.TimeFormat {
		case "", TimeFormatRelativeToEpoch, TimeFormatRelativeToPreviousEvent:
		default:
			return &ConfigError{Field: "common_fields.time_format", Reason: fmt.Sprintf("unknown time format %q", t.CommonFields.TimeFormat)}
		}
	}
	return nil
}

// Time formats for the common_fields time_format field.
const (
	TimeFormatRelativeToEpoch         = "relative_to_epoch"
	TimeFormatRelativeToPreviousEvent = "relative_to_previous_event"
)

// CommonFields holds values shared by every event in the trace.
type CommonFields struct {
	// TimeFormat declares how event time values are to be interpreted.
	TimeFormat string `json:"time_format,omitempty" cbor:"time_format,omitempty"`

	// ReferenceTime anchors relative timestamps, in epoch milliseconds.
	ReferenceTime *ReferenceTime `json:"reference_time,omitempty" cbor:"reference_time,omitempty"`

	// GroupID is a default group for events that do not set their own.
	GroupID string `json:"group_id,omitempty" cbor:"group_id,omitempty"`
}

// DefaultCommonFields returns common fields declaring epoch-relative
// millisecond timestamps, matching what NewEvent stamps.
func DefaultCommonFields() *CommonFields {
	return &CommonFields{
		TimeFormat: TimeFormatRelativeToEpoch,
		ReferenceTime: &ReferenceTime{
			ClockType: "system",
			Epoch:     "1970-01-01T00:00:00.000Z",
		},
	}
}

// ReferenceTime describes the clock event timestamps are measured against.
type ReferenceTime struct {
	ClockType string `json:"clock_type,omitempty" cbor:"clock_type,omitempty"`
	Epoch     string `json:"epoch,omitempty" cbor:"epoch,omitempty"`
}

// VantagePointType says from which perspective a trace was captured.
type VantagePointType string

// Vantage point types defined by the qlog schema.
const (
	VantagePointClient  VantagePointType = "client"
	VantagePointServer  VantagePointType = "server"
	VantagePointNetwork VantagePointType = "network"
	VantagePointUnknown VantagePointType = "unknown"
)

// VantagePoint describes the endpoint that captured the trace.
type VantagePoint struct {
	Name string           `json:"name,omitempty" cbor:"name,omitempty"`
	Type VantagePointType `json:"type" cbor:"type"`
}

// fileSeqRecord is the header record as written: file details flattened
// alongside the trace metadata.
type fileSeqRecord struct {
	FileDetails
	Trace TraceSeq `json:"trace" cbor:"trace"`
}
