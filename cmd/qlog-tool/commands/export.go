package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := qlog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	case "yaml":
		return exportYAML(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv, yaml)", format)
	}
}

func exportJSONL(reader *qlog.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		var doc any
		if rec.Header != nil {
			doc = rec.Header
		} else {
			doc = rec.Event
		}
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *qlog.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	// Write header
	header := []string{"time", "name", "group_id", "path", "data"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		// The trace header carries no event fields; skip it.
		if rec.Event == nil {
			continue
		}

		data, err := json.Marshal(rec.Event.Data)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		row := []string{
			fmt.Sprintf("%.3f", rec.Event.Time),
			rec.Event.Name,
			rec.Event.GroupID,
			rec.Event.Path,
			string(data),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func exportYAML(reader *qlog.Reader, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		var doc any
		if rec.Header != nil {
			doc = headerYAML(rec.Header)
		} else {
			doc = eventYAML(rec.Event)
		}
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}
	return nil
}

// headerYAML shapes a header record for YAML output.
func headerYAML(header *qlog.HeaderRecord) map[string]any {
	doc := map[string]any{
		"file_schema":          header.FileSchema,
		"serialization_format": header.SerializationFormat,
	}
	if header.Title != "" {
		doc["title"] = header.Title
	}
	if len(header.EventSchemas) > 0 {
		doc["event_schemas"] = header.EventSchemas
	}
	if header.Trace.Title != "" {
		doc["trace_title"] = header.Trace.Title
	}
	return doc
}

// eventYAML shapes an event record for YAML output.
func eventYAML(event *qlog.EventRecord) map[string]any {
	doc := map[string]any{
		"time": event.Time,
		"name": event.Name,
		"data": event.Data,
	}
	if event.GroupID != "" {
		doc["group_id"] = event.GroupID
	}
	if event.Path != "" {
		doc["path"] = event.Path
	}
	return doc
}
