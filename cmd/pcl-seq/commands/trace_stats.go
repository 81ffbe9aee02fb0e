package commands

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/pclscope/pcl-go/pkg/log"
	"github.com/pclscope/pcl-go/pkg/seq"
)

// TraceStats holds aggregate statistics about a trace file.
type TraceStats struct {
	TotalEvents    int
	EventsByKind   map[log.Kind]int
	SequencesByCat map[seq.Category]int
	Known          int
	Unknown        int
	MaxDepth       int
	Sequences      map[string]int
	Sessions       map[string]*SessionStats
	Errors         int
	TimeRange      struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single session.
type SessionStats struct {
	Source    string
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Sequences int
	Unknown   int
	Bytes     int64
}

func runTraceStats(args []string, stdout, stderr io.Writer) int {
	var (
		opts TraceFilterOptions
		top  int
	)
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.register(fs)
	fs.IntVar(&top, "top", 10, "Number of most used sequences to show")
	fs.Usage = func() { printTraceUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(stderr, "Error: trace file path required")
		return exitCommandError
	}

	filter, err := buildFilter(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	stats, err := CollectStats(fs.Arg(0), filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	printStats(stdout, stats, top)
	return exitSuccess
}

// CollectStats reads the trace file and aggregates the matching events.
func CollectStats(path string, filter log.Filter) (*TraceStats, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &TraceStats{
		EventsByKind:   make(map[log.Kind]int),
		SequencesByCat: make(map[seq.Category]int),
		Sequences:      make(map[string]int),
		Sessions:       make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.Source != "" && sess.Source == "" {
			sess.Source = event.Source
		}

		switch {
		case event.Sequence != nil:
			s := event.Sequence
			sess.Sequences++
			stats.SequencesByCat[s.Category]++
			stats.Sequences[s.Label]++
			if s.Known {
				stats.Known++
			} else {
				stats.Unknown++
				sess.Unknown++
			}
			stats.MaxDepth = max(stats.MaxDepth, event.Depth)
		case event.Session != nil:
			if event.Session.State == log.SessionEnd {
				sess.Bytes = event.Session.Bytes
			}
		case event.Error != nil:
			stats.Errors++
		}
	}

	return stats, nil
}

// SequenceCount is the number of trace events for one sequence label.
type SequenceCount struct {
	Label string
	Count int
}

// TopSequences returns the n most frequent sequence labels, most frequent
// first; ties are ordered by label.
func (s *TraceStats) TopSequences(n int) []SequenceCount {
	counts := make([]SequenceCount, 0, len(s.Sequences))
	for label, c := range s.Sequences {
		counts = append(counts, SequenceCount{label, c})
	}
	slices.SortFunc(counts, func(a, b SequenceCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func printStats(w io.Writer, stats *TraceStats, top int) {
	fmt.Fprintln(w, "=== PCL Classification Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range []log.Kind{log.KindSequence, log.KindSession, log.KindError} {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-20s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sequences: %d known, %d unknown, max depth %d\n", stats.Known, stats.Unknown, stats.MaxDepth)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Sequences by Category:")
	for _, cat := range seq.Categories() {
		if count := stats.SequencesByCat[cat]; count > 0 {
			fmt.Fprintf(w, "  %-20s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if top > 0 && len(stats.Sequences) > 0 {
		fmt.Fprintln(w, "Most Used:")
		for _, sc := range stats.TopSequences(top) {
			fmt.Fprintf(w, "  %-20s %d\n", sc.Label, sc.Count)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessionInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessionInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessionInfo{id, ss})
		}
		slices.SortFunc(sessions, func(a, b sessionInfo) int {
			return a.stats.FirstSeen.Compare(b.stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			fmt.Fprintf(w, "  [%s] %d sequences, %d unknown", shortenSessionID(s.id), s.stats.Sequences, s.stats.Unknown)
			if s.stats.Bytes > 0 {
				fmt.Fprintf(w, ", %d bytes", s.stats.Bytes)
			}
			fmt.Fprintln(w)
			if s.stats.Source != "" {
				fmt.Fprintf(w, "           Source: %s\n", s.stats.Source)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
