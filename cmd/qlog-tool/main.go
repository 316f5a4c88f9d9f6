// Command qlog-tool is a tool for viewing and analyzing sequential qlog
// trace files.
//
// Trace files are produced by the qlog writer, typically gated on the
// QLOGFILE environment variable of the traced process.
//
// Usage:
//
//	qlog-tool <command> [flags] <file.sqlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSONL, CSV or YAML format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	qlog-tool view session.sqlog
//
//	# View only moq-transfork events
//	qlog-tool view --category moq-transfork-03 session.sqlog
//
//	# Export to JSONL
//	qlog-tool export --format jsonl session.sqlog
//
//	# Filter by group and save to new file
//	qlog-tool filter --group abc12345 -o filtered.sqlog session.sqlog
//
//	# Show statistics
//	qlog-tool stats session.sqlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/moq-protocol/qlog-go/cmd/qlog-tool/commands"
	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

const usage = `qlog-tool - Sequential qlog Trace Analyzer

Usage:
  qlog-tool <command> [flags] <file.sqlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSONL, CSV or YAML format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "qlog-tool <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

// filterFlags registers the shared event-filter flags on fs.
func filterFlags(fs *flag.FlagSet) (category, group *string, timeStart, timeEnd *float64) {
	category = fs.String("category", "", "Filter by event schema (e.g. moq-transfork-03, quic-10)")
	group = fs.String("group", "", "Filter by group ID")
	timeStart = fs.Float64("time-start", -1, "Filter by start time (epoch milliseconds)")
	timeEnd = fs.Float64("time-end", -1, "Filter by end time (epoch milliseconds)")
	return
}

// buildFilter converts the flag values into a record filter.
func buildFilter(category, group string, timeStart, timeEnd float64) qlog.Filter {
	filter := qlog.Filter{GroupID: group}
	if category != "" {
		filter.NamePrefix = category + ":"
	}
	if timeStart >= 0 {
		filter.TimeStart = &timeStart
	}
	if timeEnd >= 0 {
		filter.TimeEnd = &timeEnd
	}
	return filter
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `qlog-tool view - View trace file in human-readable format

Usage:
  qlog-tool view [flags] <file.sqlog>

Flags:
`)
		fs.PrintDefaults()
	}

	category, group, timeStart, timeEnd := filterFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter := buildFilter(*category, *group, *timeStart, *timeEnd)
	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `qlog-tool export - Export trace file to JSONL, CSV or YAML format

Usage:
  qlog-tool export [flags] <file.sqlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv, yaml)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `qlog-tool filter - Filter trace file and write to new file

Usage:
  qlog-tool filter [flags] <file.sqlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	serialization := fs.String("serialization", "json-seq", "Output serialization (json-seq, cbor-seq)")
	category, group, timeStart, timeEnd := filterFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}
	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:        *output,
		Serialization: *serialization,
		Filter:        buildFilter(*category, *group, *timeStart, *timeEnd),
	}
	if err := commands.RunFilter(fs.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `qlog-tool stats - Show statistics about the trace file

Usage:
  qlog-tool stats <file.sqlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
