package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

// FilterOptions configures the filter command.
type FilterOptions struct {
	// Output is the path of the filtered trace file.
	Output string

	// Serialization of the output file: "json-seq" or "cbor-seq".
	Serialization string

	// Filter selects which event records survive. The header always does.
	Filter qlog.Filter
}

// RunFilter copies matching records from the trace file into a new file,
// optionally re-encoding them in a different serialization.
func RunFilter(path string, opts FilterOptions) error {
	serialization, err := parseSerialization(opts.Serialization)
	if err != nil {
		return err
	}

	reader, err := qlog.NewFilteredReader(path, opts.Filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()
	bw := bufio.NewWriter(out)

	count := 0
	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}

		// Re-declare the serialization when the header passes through.
		if rec.Header != nil {
			rec.Header.SerializationFormat = serialization.MIME()
		}

		framed, err := rec.MarshalSeq(serialization)
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		if _, err := bw.Write(framed); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
		if rec.Event != nil {
			count++
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	fmt.Printf("Wrote %d events to %s\n", count, opts.Output)
	return nil
}

// parseSerialization parses a serialization name (case-sensitive, matching
// the format identifiers).
func parseSerialization(s string) (qlog.Serialization, error) {
	switch s {
	case "", "json-seq":
		return qlog.SerializationJSONSEQ, nil
	case "cbor-seq":
		return qlog.SerializationCBORSEQ, nil
	default:
		return 0, fmt.Errorf("invalid serialization: %s (must be json-seq or cbor-seq)", s)
	}
}
