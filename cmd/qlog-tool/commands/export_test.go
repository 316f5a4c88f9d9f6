package commands

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportJSONL(t *testing.T) {
	path := createTestTraceFile(t)
	output := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", output); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	// Every line must be standalone JSON; header first, then 4 events.
	scanner := bufio.NewScanner(f)
	lines := 0
	for scanner.Scan() {
		var doc map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &doc); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines+1, err)
		}
		if lines == 0 {
			if doc["file_schema"] == nil {
				t.Error("first line is not the header")
			}
		} else if doc["name"] == nil {
			t.Errorf("line %d has no event name", lines+1)
		}
		lines++
	}
	if lines != 5 {
		t.Errorf("expected 5 lines, got %d", lines)
	}
}

func TestExportCSV(t *testing.T) {
	path := createTestTraceFile(t)
	output := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", output); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	// Column header plus 4 events; the trace header is skipped.
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if rows[0][1] != "name" {
		t.Errorf("header row: got %v", rows[0])
	}
	if rows[1][1] != "moq-transfork-03:stream_created" {
		t.Errorf("first event name: got %q", rows[1][1])
	}
}

func TestExportYAML(t *testing.T) {
	path := createTestTraceFile(t)
	output := filepath.Join(t.TempDir(), "out.yaml")

	if err := RunExport(path, "yaml", output); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "file_schema:") {
		t.Error("expected the header document in YAML output")
	}
	if !strings.Contains(out, "name: moq-transfork-03:session_started") {
		t.Error("expected the session_started event in YAML output")
	}
	// Multiple documents are separated.
	if strings.Count(out, "---") < 4 {
		t.Errorf("expected document separators, got:\n%s", out)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestTraceFile(t)
	if err := RunExport(path, "xml", ""); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
