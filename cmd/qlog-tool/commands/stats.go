package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/moq-protocol/qlog-go/pkg/qlog"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	Header         *qlog.HeaderRecord
	TotalEvents    int
	EventsByName   map[string]int
	EventsBySchema map[string]int
	Groups         map[string]*GroupStats
	TimeRange      struct {
		Start float64
		End   float64
	}
}

// GroupStats holds statistics for a single event group.
type GroupStats struct {
	FirstSeen float64
	LastSeen  float64
	Events    int
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := qlog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByName:   make(map[string]int),
		EventsBySchema: make(map[string]int),
		Groups:         make(map[string]*GroupStats),
	}

	for {
		rec, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		if rec.Header != nil {
			stats.Header = rec.Header
			continue
		}
		event := rec.Event

		stats.TotalEvents++
		stats.EventsByName[event.Name]++
		stats.EventsBySchema[event.Category()]++

		// Track time range
		if stats.TotalEvents == 1 || event.Time < stats.TimeRange.Start {
			stats.TimeRange.Start = event.Time
		}
		if event.Time > stats.TimeRange.End {
			stats.TimeRange.End = event.Time
		}

		// Track group stats
		group, ok := stats.Groups[event.GroupID]
		if !ok {
			group = &GroupStats{FirstSeen: event.Time, LastSeen: event.Time}
			stats.Groups[event.GroupID] = group
		}
		group.Events++
		if event.Time > group.LastSeen {
			group.LastSeen = event.Time
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== qlog Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.Header != nil {
		fmt.Fprintf(w, "Trace:         %s\n", orUnnamed(stats.Header.Title))
		fmt.Fprintf(w, "Serialization: %s\n", stats.Header.SerializationFormat)
		fmt.Fprintln(w)
	}

	// Time range
	if stats.TotalEvents > 0 {
		duration := time.Duration(stats.TimeRange.End-stats.TimeRange.Start) * time.Millisecond
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			formatMillis(stats.TimeRange.Start),
			formatMillis(stats.TimeRange.End))
		fmt.Fprintf(w, "Duration:   %s\n", duration.Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	// Total events
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	// Events by schema
	fmt.Fprintln(w, "Events by Schema:")
	for _, schema := range sortedKeys(stats.EventsBySchema) {
		fmt.Fprintf(w, "  %-24s %d\n", schema+":", stats.EventsBySchema[schema])
	}
	fmt.Fprintln(w)

	// Events by name
	fmt.Fprintln(w, "Events by Name:")
	for _, name := range sortedKeys(stats.EventsByName) {
		fmt.Fprintf(w, "  %-48s %d\n", name+":", stats.EventsByName[name])
	}
	fmt.Fprintln(w)

	// Groups
	fmt.Fprintf(w, "Groups: %d\n", len(stats.Groups))
	if len(stats.Groups) > 0 {
		type groupInfo struct {
			id    string
			stats *GroupStats
		}
		groups := make([]groupInfo, 0, len(stats.Groups))
		for id, gs := range stats.Groups {
			groups = append(groups, groupInfo{id, gs})
		}
		sort.Slice(groups, func(i, j int) bool {
			return groups[i].stats.FirstSeen < groups[j].stats.FirstSeen
		})

		fmt.Fprintln(w, "")
		for _, g := range groups {
			duration := time.Duration(g.stats.LastSeen-g.stats.FirstSeen) * time.Millisecond
			id := g.id
			if id == "" {
				id = "(none)"
			} else if len(id) > 8 {
				id = id[:8]
			}
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", id, g.stats.Events, duration.Round(time.Millisecond))
		}
	}
}

// formatMillis renders an epoch-millisecond timestamp as RFC3339.
func formatMillis(ms float64) string {
	return time.UnixMilli(int64(ms)).UTC().Format(time.RFC3339)
}

// sortedKeys returns the map keys in sorted order.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
