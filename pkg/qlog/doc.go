// Package qlog implements a qlog trace writer for network-protocol stacks.
//
// qlog is a standardized JSON-based trace format for protocol diagnostics.
// This package provides the trace writer, the polymorphic event envelope,
// and the record framing for the sequential qlog file formats
// (application/qlog+json-seq and application/qlog+cbor-seq). Protocol event
// catalogs live in subpackages (moq, quic) and contribute payload types to
// the event union without modifying this package.
//
// # Basic Usage
//
// Applications construct a Writer once at startup and share it with every
// call site in the protocol stack:
//
//	w := qlog.FromEnv("QLOGFILE")
//	defer w.Close()
//
//	details, _ := qlog.NewFileDetails(qlog.SerializationJSONSEQ,
//	    "my trace", "", []string{moq.EventSchema})
//	w.LogFileDetails(details, qlog.TraceSeq{VantagePoint: &qlog.VantagePoint{Type: qlog.VantagePointClient}})
//
//	w.LogEvent(moq.StreamCreated(moq.StreamTypeSession))
//
// If the environment variable is unset the writer is permanently inactive
// and every call is a no-op. Logging never returns errors to the caller;
// failures are reported to the writer's diagnostic slog.Logger and at worst
// disable tracing for the rest of the process.
//
// # File Format
//
// Trace files are a sequence of records. The first record is the file
// header (qlog file details plus trace metadata); every following record is
// one event. JSON-seq records are framed per RFC 7464 (0x1E record
// separator, 0x0A terminator); CBOR-seq records are self-delimiting CBOR
// items. The Reader and the qlog-tool CLI consume both.
package qlog
