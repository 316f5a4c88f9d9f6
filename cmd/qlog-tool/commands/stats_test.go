package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestStatsCounts(t *testing.T) {
	path := createTestTraceFile(t)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Total Events: 4") {
		t.Errorf("expected 4 total events, got:\n%s", output)
	}
	if !strings.Contains(output, "moq-transfork-03:") {
		t.Error("expected moq schema in output")
	}
	if !strings.Contains(output, "quic-10:") {
		t.Error("expected quic schema in output")
	}
	if !strings.Contains(output, "Groups: 2") {
		t.Errorf("expected 2 groups, got:\n%s", output)
	}
}

func TestStatsShowsTraceHeader(t *testing.T) {
	path := createTestTraceFile(t)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Trace:         test trace") {
		t.Errorf("expected trace title in output, got:\n%s", output)
	}
	if !strings.Contains(output, "application/qlog+json-seq") {
		t.Error("expected serialization format in output")
	}
}

func TestStatsMissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := RunStats("/nonexistent/trace.sqlog", &buf); err == nil {
		t.Error("expected an error for a missing file")
	}
}
