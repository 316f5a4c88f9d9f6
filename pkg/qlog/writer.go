package qlog

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// ReinitPolicy decides what happens when LogFileDetails is called after
// the header has already been written.
type ReinitPolicy uint8

const (
	// ReinitIgnore silently ignores repeated initialization. This is the
	// default: layered applications often have several init call sites.
	ReinitIgnore ReinitPolicy = 0
	// ReinitError reports ErrReinitialized to the diagnostic channel.
	// The repeated call is still a no-op for the trace file.
	ReinitError ReinitPolicy = 1
)

// PendingPolicy decides what happens to events logged before the header.
type PendingPolicy uint8

const (
	// PendingDrop discards events logged before LogFileDetails. This is
	// the default: the header must always be the first record.
	PendingDrop PendingPolicy = 0
	// PendingBuffer holds events in a bounded FIFO until the header is
	// written, then appends them in arrival order.
	PendingBuffer PendingPolicy = 1
)

// DefaultPendingLimit caps the PendingBuffer FIFO.
const DefaultPendingLimit = 1024

// Config configures a Writer. The zero value (no Path, no Sink) yields a
// permanently inactive writer whose operations are all no-ops.
type Config struct {
	// Path of the trace file. Created (truncated) at construction and
	// owned by the writer for the process lifetime. Ignored if Sink is set.
	Path string

	// Sink is an explicit output destination, mainly for tests.
	Sink io.WriteCloser

	// Serialization of record bodies. Defaults to SerializationJSONSEQ.
	Serialization Serialization

	// ReinitPolicy for repeated LogFileDetails calls.
	ReinitPolicy ReinitPolicy

	// PendingPolicy for events logged before the header.
	PendingPolicy PendingPolicy

	// PendingLimit caps the pending FIFO when PendingPolicy is
	// PendingBuffer. Defaults to DefaultPendingLimit.
	PendingLimit int

	// Diag receives diagnostics about dropped records and disabled
	// tracing. Defaults to slog.Default(). Never receives trace events.
	Diag *slog.Logger
}

// writerState tracks the writer lifecycle.
type writerState uint8

const (
	// stateInactive: no sink, or the sink failed; every call is a no-op.
	stateInactive writerState = 0
	// stateUninitialized: sink open, header not yet written.
	stateUninitialized writerState = 1
	// stateActive: header written, events are appended.
	stateActive writerState = 2
)

// Writer owns a trace file and appends qlog records to it. It is safe for
// concurrent use from any number of goroutines: the encode+write+flush of
// each record runs under a single mutex, so records never interleave, and
// file order matches lock-acquisition order.
//
// None of the logging methods return errors. Failures are reported to the
// configured diagnostic logger; an I/O failure disables the writer for the
// rest of the process. Tracing can never become a correctness dependency
// of the traced stack.
type Writer struct {
	mu            sync.Mutex
	state         writerState
	serialization Serialization
	reinitPolicy  ReinitPolicy
	pendingPolicy PendingPolicy
	pendingLimit  int
	pending       []Event
	sink          io.WriteCloser
	buf           *bufio.Writer
	diag          *slog.Logger
	closed        bool
}

// New creates a Writer from the given configuration. With neither Path nor
// Sink set the writer is inactive and New never fails; otherwise New
// returns an error if the trace file cannot be created.
func New(cfg Config) (*Writer, error) {
	w := &Writer{
		serialization: cfg.Serialization,
		reinitPolicy:  cfg.ReinitPolicy,
		pendingPolicy: cfg.PendingPolicy,
		pendingLimit:  cfg.PendingLimit,
		diag:          cfg.Diag,
	}
	if w.diag == nil {
		w.diag = slog.Default()
	}
	if w.pendingLimit <= 0 {
		w.pendingLimit = DefaultPendingLimit
	}
	if cfg.Serialization != SerializationJSONSEQ && cfg.Serialization != SerializationCBORSEQ {
		return nil, &ConfigError{Field: "serialization", Reason: fmt.Sprintf("unknown serialization %d", cfg.Serialization)}
	}

	switch {
	case cfg.Sink != nil:
		w.sink = cfg.Sink
	case cfg.Path != "":
		f, err := os.Create(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to create trace file: %w", err)
		}
		w.sink = f
	default:
		return w, nil // inactive
	}

	w.buf = bufio.NewWriter(w.sink)
	w.state = stateUninitialized
	return w, nil
}

// FromEnv creates a Writer gated on an environment variable naming the
// trace file path. If the variable is unset or the file cannot be created,
// the returned writer is inactive; FromEnv never fails. The environment is
// read exactly once, at construction.
func FromEnv(name string) *Writer {
	path := os.Getenv(name)
	if path == "" {
		w, _ := New(Config{})
		return w
	}
	w, err := New(Config{Path: path})
	if err != nil {
		slog.Default().Warn("qlog tracing disabled", "env", name, "err", err)
		w, _ = New(Config{})
	}
	return w
}

// Enabled reports whether the writer may ever produce output. Call sites
// can use it to skip expensive event construction.
func (w *Writer) Enabled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state != stateInactive
}

// LogFileDetails writes the trace header: file details plus trace
// metadata. It must be called before events are recorded; the header is
// always the first record in the file. Repeated calls follow the
// configured ReinitPolicy. Invalid metadata disables the writer.
func (w *Writer) LogFileDetails(details FileDetails, trace TraceSeq) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case stateInactive:
		return
	case stateActive:
		if w.reinitPolicy == ReinitError {
			w.diag.Warn("qlog header rejected", "err", ErrReinitialized)
		}
		return
	}

	if err := details.validate(); err != nil {
		w.diag.Error("qlog tracing disabled: invalid file details", "err", err)
		w.deactivate()
		return
	}
	if err := trace.validate(); err != nil {
		w.diag.Error("qlog tracing disabled: invalid trace metadata", "err", err)
		w.deactivate()
		return
	}

	framed, err := encodeRecord(w.serialization, fileSeqRecord{FileDetails: details, Trace: trace})
	if err != nil {
		// An unencodable header means the file can never become valid.
		w.diag.Error("qlog tracing disabled: cannot encode header", "err", &EncodingError{Err: err})
		w.deactivate()
		return
	}
	if !w.writeRecord(framed) {
		return
	}
	w.state = stateActive

	// Drain events buffered under PendingBuffer, in arrival order.
	pending := w.pending
	w.pending = nil
	for _, ev := range pending {
		if w.state != stateActive {
			break
		}
		w.writeEvent(ev)
	}
}

// LogEvent appends one event to the trace. Events logged before the header
// follow the configured PendingPolicy. LogEvent never blocks beyond the
// underlying file write and never reports errors to the caller.
func (w *Writer) LogEvent(event Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.state {
	case stateInactive:
		return
	case stateUninitialized:
		if w.pendingPolicy == PendingBuffer {
			if len(w.pending) >= w.pendingLimit {
				w.pending = w.pending[1:]
			}
			w.pending = append(w.pending, event)
		}
		return
	}
	w.writeEvent(event)
}

// Emit implements Emitter.
func (w *Writer) Emit(event Event) { w.LogEvent(event) }

// Close flushes and closes the trace file. It is safe to call Close more
// than once; logging after Close is a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	w.state = stateInactive
	w.pending = nil

	if w.sink == nil {
		return nil
	}
	flushErr := w.buf.Flush()
	closeErr := w.sink.Close()
	w.sink = nil
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// writeEvent encodes and appends one event. An encoding failure drops just
// that event; an I/O failure deactivates the writer. Callers hold w.mu.
func (w *Writer) writeEvent(event Event) {
	framed, err := encodeRecord(w.serialization, event)
	if err != nil {
		w.diag.Warn("qlog event dropped", "name", event.Name, "err", &EncodingError{Name: event.Name, Err: err})
		return
	}
	w.writeRecord(framed)
}

// writeRecord appends framed bytes and flushes, so that records survive
// abrupt process termination. A write or flush failure is reported once
// and permanently deactivates the writer. Callers hold w.mu.
func (w *Writer) writeRecord(framed []byte) bool {
	if _, err := w.buf.Write(framed); err != nil {
		w.diag.Error("qlog tracing disabled: write failed", "err", err)
		w.deactivate()
		return false
	}
	if err := w.buf.Flush(); err != nil {
		w.diag.Error("qlog tracing disabled: flush failed", "err", err)
		w.deactivate()
		return false
	}
	return true
}

// deactivate permanently disables the writer and releases the sink.
// Callers hold w.mu.
func (w *Writer) deactivate() {
	w.state = stateInactive
	w.pending = nil
	if w.sink != nil {
		_ = w.sink.Close()
		w.sink = nil
	}
}

// Compile-time interface satisfaction check.
var _ Emitter = (*Writer)(nil)
