package commands

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

// readTrace reads all records from a trace file.
func readTrace(t *testing.T, path string) []qlog.Record {
	t.Helper()
	r, err := qlog.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	var records []qlog.Record
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return records
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		records = append(records, rec)
	}
}

func TestFilterByGroup(t *testing.T) {
	path := createTestTraceFile(t)
	output := filepath.Join(t.TempDir(), "filtered.sqlog")

	opts := FilterOptions{
		Output: output,
		Filter: qlog.Filter{GroupID: "session-aaaa"},
	}
	if err := RunFilter(path, opts); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	records := readTrace(t, output)
	// Header plus the three session-group events.
	if len(records) != 4 {
		t.Fatalf("expected 4 records, got %d", len(records))
	}
	if records[0].Header == nil {
		t.Fatal("first record is not the header")
	}
	for _, rec := range records[1:] {
		if rec.Event.GroupID != "session-aaaa" {
			t.Errorf("event group: got %q", rec.Event.GroupID)
		}
	}
}

func TestFilterReencodesToCBOR(t *testing.T) {
	path := createTestTraceFile(t)
	output := filepath.Join(t.TempDir(), "filtered.sqlog")

	opts := FilterOptions{
		Output:        output,
		Serialization: "cbor-seq",
	}
	if err := RunFilter(path, opts); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	// The reader auto-detects CBOR; the header must declare it.
	records := readTrace(t, output)
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	if got := records[0].Header.SerializationFormat; got != "application/qlog+cbor-seq" {
		t.Errorf("serialization_format: got %q", got)
	}
}

func TestFilterInvalidSerialization(t *testing.T) {
	path := createTestTraceFile(t)
	opts := FilterOptions{
		Output:        filepath.Join(t.TempDir(), "out.sqlog"),
		Serialization: "protobuf",
	}
	if err := RunFilter(path, opts); err == nil {
		t.Error("expected an error for an invalid serialization")
	}
}
