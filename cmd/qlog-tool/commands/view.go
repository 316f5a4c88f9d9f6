// Package commands implements the qlog-tool CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

// RunView executes the view command.
func RunView(path string, filter qlog.Filter, output io.Writer) error {
	reader, err := qlog.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}

		if rec.Header != nil {
			formatHeader(output, rec.Header)
			continue
		}
		formatEvent(output, *rec.Event)
	}
	return nil
}

// formatHeader writes a human-readable representation of the trace header.
func formatHeader(w io.Writer, header *qlog.HeaderRecord) {
	fmt.Fprintf(w, "=== Trace: %s ===\n", orUnnamed(header.Title))
	fmt.Fprintf(w, "  Schema:        %s\n", header.FileSchema)
	fmt.Fprintf(w, "  Serialization: %s\n", header.SerializationFormat)
	if len(header.EventSchemas) > 0 {
		fmt.Fprintf(w, "  Events:        %s\n", strings.Join(header.EventSchemas, ", "))
	}
	if vp := header.Trace.VantagePoint; vp != nil {
		fmt.Fprintf(w, "  Vantage:       %s", vp.Type)
		if vp.Name != "" {
			fmt.Fprintf(w, " (%s)", vp.Name)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// formatEvent writes a human-readable representation of the event.
func formatEvent(w io.Writer, event qlog.EventRecord) {
	// Header line: timestamp [group:id] name
	ts := time.UnixMilli(int64(event.Time)).UTC().Format("2006-01-02T15:04:05.000Z")
	if event.GroupID != "" {
		fmt.Fprintf(w, "%s [group:%s] %s\n", ts, shortenGroupID(event.GroupID), event.Name)
	} else {
		fmt.Fprintf(w, "%s %s\n", ts, event.Name)
	}

	// Payload fields, one per line, in stable order.
	keys := make([]string, 0, len(event.Data))
	for k := range event.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s: %s\n", k, formatValue(event.Data[k]))
	}
	if event.Path != "" {
		fmt.Fprintf(w, "  path: %s\n", event.Path)
	}

	fmt.Fprintln(w) // Blank line between events
}

// formatValue renders a payload value compactly; nested structures as JSON.
func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64, uint64, int64, bool, nil:
		return fmt.Sprint(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// shortenGroupID returns the first 8 characters of the group ID.
func shortenGroupID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func orUnnamed(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}
