package qlog

import (
	"errors"
	"testing"
)

func TestNewFileDetails(t *testing.T) {
	details, err := NewFileDetails(SerializationJSONSEQ, "title", "desc", []string{"urn:ietf:params:qlog:events:moq"})
	if err != nil {
		t.Fatalf("NewFileDetails failed: %v", err)
	}
	if details.FileSchema != FileSchemaSequential {
		t.Errorf("file_schema: got %q, want %q", details.FileSchema, FileSchemaSequential)
	}
	if details.SerializationFormat != "application/qlog+json-seq" {
		t.Errorf("serialization_format: got %q", details.SerializationFormat)
	}
	if err := details.validate(); err != nil {
		t.Errorf("validate failed: %v", err)
	}
}

func TestNewFileDetailsRejectsEmptySchemas(t *testing.T) {
	_, err := NewFileDetails(SerializationJSONSEQ, "", "", nil)
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a ConfigError, got %v", err)
	}
	if cfgErr.Field != "event_schemas" {
		t.Errorf("field: got %q, want %q", cfgErr.Field, "event_schemas")
	}
}

func TestNewFileDetailsRejectsUnknownSerialization(t *testing.T) {
	_, err := NewFileDetails(Serialization(99), "", "", []string{"urn:example"})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a ConfigError, got %v", err)
	}
}

func TestSerializationNames(t *testing.T) {
	if got := SerializationJSONSEQ.String(); got != "json-seq" {
		t.Errorf("String: got %q", got)
	}
	if got := SerializationCBORSEQ.String(); got != "cbor-seq" {
		t.Errorf("String: got %q", got)
	}
	if got := SerializationCBORSEQ.MIME(); got != "application/qlog+cbor-seq" {
		t.Errorf("MIME: got %q", got)
	}
}

func TestTraceSeqValidate(t *testing.T) {
	good := TraceSeq{
		Title:        "t",
		CommonFields: DefaultCommonFields(),
		VantagePoint: &VantagePoint{Name: "client-1", Type: VantagePointClient},
	}
	if err := good.validate(); err != nil {
		t.Errorf("validate failed: %v", err)
	}

	badVantage := TraceSeq{VantagePoint: &VantagePoint{Type: "router"}}
	if err := badVantage.validate(); err == nil {
		t.Error("expected an error for an unknown vantage point type")
	}

	badTime := TraceSeq{CommonFields: &CommonFields{TimeFormat: "absolute"}}
	if err := badTime.validate(); err == nil {
		t.Error("expected an error for an unknown time format")
	}
}

func TestDefaultCommonFields(t *testing.T) {
	cf := DefaultCommonFields()
	if cf.TimeFormat != TimeFormatRelativeToEpoch {
		t.Errorf("time_format: got %q", cf.TimeFormat)
	}
	if cf.ReferenceTime == nil || cf.ReferenceTime.Epoch != "1970-01-01T00:00:00.000Z" {
		t.Errorf("reference_time: got %+v", cf.ReferenceTime)
	}
}
