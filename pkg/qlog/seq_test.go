package qlog

import (
	"bytes"
	"testing"
	"time"
)

func fixedTime() time.Time { return time.UnixMilli(1700000000000) }

func TestEncodeRecordJSONSeqFraming(t *testing.T) {
	framed, err := encodeRecord(SerializationJSONSEQ, NewEventAt(fixedTime(), probePayload{Seq: 1}))
	if err != nil {
		t.Fatalf("encodeRecord failed: %v", err)
	}

	// RFC 7464: RS prefix, LF terminator, no embedded framing bytes.
	if framed[0] != recordSeparator {
		t.Errorf("first byte: got 0x%02X, want 0x1E", framed[0])
	}
	if framed[len(framed)-1] != lineFeed {
		t.Errorf("last byte: got 0x%02X, want 0x0A", framed[len(framed)-1])
	}
	body := framed[1 : len(framed)-1]
	if bytes.IndexByte(body, recordSeparator) != -1 {
		t.Error("record body contains a record separator")
	}
	if bytes.IndexByte(body, lineFeed) != -1 {
		t.Error("record body contains a line feed")
	}
}

func TestEncodeRecordCBORDeterministic(t *testing.T) {
	ev := NewEventAt(fixedTime(), probePayload{Goroutine: 1, Seq: 2})

	a, err := encodeRecord(SerializationCBORSEQ, ev)
	if err != nil {
		t.Fatalf("encodeRecord failed: %v", err)
	}
	b, err := encodeRecord(SerializationCBORSEQ, ev)
	if err != nil {
		t.Fatalf("encodeRecord failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical records produced different CBOR bytes")
	}
	if a[0] == recordSeparator {
		t.Error("CBOR records must not carry JSON-seq framing")
	}
}
