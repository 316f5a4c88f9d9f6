package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/moq-protocol/qlog-go/pkg/qlog"
	"github.com/moq-protocol/qlog-go/pkg/qlog/moq"
	"github.com/moq-protocol/qlog-go/pkg/qlog/quic"
)

// createTestTraceFile writes a small mixed-protocol trace and returns its
// path.
func createTestTraceFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.sqlog")

	w, err := qlog.New(qlog.Config{Path: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	details, err := qlog.NewFileDetails(qlog.SerializationJSONSEQ, "test trace", "",
		[]string{moq.EventSchema, quic.EventSchema})
	if err != nil {
		t.Fatalf("NewFileDetails failed: %v", err)
	}
	w.LogFileDetails(details, qlog.TraceSeq{
		VantagePoint: &qlog.VantagePoint{Name: "client-1", Type: qlog.VantagePointClient},
	})

	base := time.UnixMilli(1700000000000)
	w.LogEvent(moq.StreamCreated(moq.StreamTypeSession).WithTime(base).WithGroupID("session-aaaa"))
	w.LogEvent(moq.SessionStartedClient([]uint64{0xff00000a}, nil, 7).WithTime(base.Add(10 * time.Millisecond)).WithGroupID("session-aaaa"))
	w.LogEvent(qlog.NewEventAt(base.Add(20*time.Millisecond), quic.ConnectionStarted{
		Local:  quic.PathEndpointInfo{IPv4: "10.0.0.1"},
		Remote: quic.PathEndpointInfo{IPv4: "10.0.0.2"},
	}).WithGroupID("conn-bbbb"))
	w.LogEvent(moq.GroupCreated(1, 0).WithTime(base.Add(30 * time.Millisecond)).WithGroupID("session-aaaa"))
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func TestViewShowsHeaderAndEvents(t *testing.T) {
	path := createTestTraceFile(t)

	var buf bytes.Buffer
	if err := RunView(path, qlog.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "=== Trace: test trace ===") {
		t.Error("expected trace header in output")
	}
	if !strings.Contains(output, "moq-transfork-03:session_started") {
		t.Error("expected session_started event in output")
	}
	if !strings.Contains(output, "quic-10:connection_started") {
		t.Error("expected connection_started event in output")
	}
	if !strings.Contains(output, "[group:session-") {
		t.Error("expected shortened group ID in output")
	}
}

func TestViewFiltersByCategory(t *testing.T) {
	path := createTestTraceFile(t)

	var buf bytes.Buffer
	filter := qlog.Filter{NamePrefix: "quic-10:"}
	if err := RunView(path, filter, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "quic-10:connection_started") {
		t.Error("expected quic event in output")
	}
	if strings.Contains(output, "moq-transfork-03:") {
		t.Error("moq events should have been filtered out")
	}
}

func TestViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunView(filepath.Join(t.TempDir(), "missing.sqlog"), qlog.Filter{}, &buf); err == nil {
		t.Error("expected an error for a missing file")
	}
}
