package qlog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeSampleTrace produces a small trace with events in two groups.
func writeSampleTrace(t *testing.T, serialization Serialization) []byte {
	t.Helper()
	sink := &memSink{}
	w, err := New(Config{Sink: sink, Serialization: serialization})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	details, err := NewFileDetails(serialization, "sample", "", []string{"urn:ietf:params:qlog:events:moq"})
	if err != nil {
		t.Fatalf("NewFileDetails failed: %v", err)
	}
	w.LogFileDetails(details, TraceSeq{})

	base := time.UnixMilli(1000)
	w.LogEvent(NewEventAt(base, probePayload{Seq: 1}).WithGroupID("a"))
	w.LogEvent(NewEventAt(base.Add(time.Second), probePayload{Seq: 2}).WithGroupID("b"))
	w.LogEvent(NewEventAt(base.Add(2*time.Second), probePayload{Seq: 3}).WithGroupID("a"))
	w.Close()
	return sink.Bytes()
}

func TestReaderRoundTrip(t *testing.T) {
	for _, serialization := range []Serialization{SerializationJSONSEQ, SerializationCBORSEQ} {
		t.Run(serialization.String(), func(t *testing.T) {
			records := readAll(t, writeSampleTrace(t, serialization))
			if len(records) != 4 {
				t.Fatalf("expected 4 records, got %d", len(records))
			}
			if records[0].Header == nil {
				t.Fatal("first record is not the header")
			}
			ev := records[1].Event
			if ev == nil {
				t.Fatal("second record is not an event")
			}
			if ev.Name != "probe:tick" || ev.GroupID != "a" {
				t.Errorf("event: got name %q group %q", ev.Name, ev.GroupID)
			}
			if ev.Category() != "probe" || ev.EventName() != "tick" {
				t.Errorf("name split: got %q / %q", ev.Category(), ev.EventName())
			}
		})
	}
}

func TestReaderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.sqlog")
	if err := os.WriteFile(path, writeSampleTrace(t, SerializationJSONSEQ), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	count := 0
	for {
		if _, err := r.Next(); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}
	if count != 4 {
		t.Errorf("expected 4 records, got %d", count)
	}
}

func TestReaderFilterByGroup(t *testing.T) {
	r := NewStreamReader(bytes.NewReader(writeSampleTrace(t, SerializationJSONSEQ)))
	r.filter = Filter{GroupID: "a"}

	var events []EventRecord
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if rec.Event != nil {
			events = append(events, *rec.Event)
		}
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events in group a, got %d", len(events))
	}
	for _, ev := range events {
		if ev.GroupID != "a" {
			t.Errorf("event group: got %q, want %q", ev.GroupID, "a")
		}
	}
}

func TestReaderFilterByTimeRange(t *testing.T) {
	start := float64(1000)
	end := float64(2000)
	r := NewStreamReader(bytes.NewReader(writeSampleTrace(t, SerializationJSONSEQ)))
	r.filter = Filter{TimeStart: &start, TimeEnd: &end}

	var events []EventRecord
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if rec.Event != nil {
			events = append(events, *rec.Event)
		}
	}
	// Only the first event falls in [1000, 2000).
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Time != 1000 {
		t.Errorf("event time: got %v, want 1000", events[0].Time)
	}
}

func TestReaderFilterByNamePrefix(t *testing.T) {
	r := NewStreamReader(bytes.NewReader(writeSampleTrace(t, SerializationJSONSEQ)))
	r.filter = Filter{NamePrefix: "quic-10:"}

	headerSeen := false
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if rec.Header != nil {
			headerSeen = true
			continue
		}
		t.Errorf("unexpected event passed the filter: %q", rec.Event.Name)
	}
	// Headers always pass regardless of the filter.
	if !headerSeen {
		t.Error("header record was filtered out")
	}
}

func TestReaderMalformedInput(t *testing.T) {
	// A JSON-seq record missing its terminator.
	data := []byte{recordSeparator}
	data = append(data, []byte(`{"name":"probe:tick"`)...)

	r := NewStreamReader(bytes.NewReader(data))
	if _, err := r.Next(); err == nil || err == io.EOF {
		t.Errorf("expected a malformed-record error, got %v", err)
	}
}

func TestRecordMarshalSeq(t *testing.T) {
	original := writeSampleTrace(t, SerializationJSONSEQ)
	r := NewStreamReader(bytes.NewReader(original))

	var rewritten bytes.Buffer
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		framed, err := rec.MarshalSeq(SerializationJSONSEQ)
		if err != nil {
			t.Fatalf("MarshalSeq failed: %v", err)
		}
		rewritten.Write(framed)
	}

	// The rewritten trace must parse to the same record count.
	records := readAll(t, rewritten.Bytes())
	if len(records) != 4 {
		t.Errorf("expected 4 records after rewrite, got %d", len(records))
	}
}

func TestRecordMarshalSeqEmpty(t *testing.T) {
	if _, err := (Record{}).MarshalSeq(SerializationJSONSEQ); err == nil {
		t.Error("expected an error for an empty record")
	}
}
