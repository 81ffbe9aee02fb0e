package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pclscope/pcl-go/pkg/log"
	"github.com/pclscope/pcl-go/pkg/seq"
)

// TraceFilterOptions are the filter flags shared by the trace subcommands.
type TraceFilterOptions struct {
	Session   string
	Kind      string
	Category  string
	Unknown   bool
	Known     bool
	MinDepth  int
	TimeStart string
	TimeEnd   string
}

func (o *TraceFilterOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.Session, "session", "", "Filter by session ID")
	fs.StringVar(&o.Kind, "kind", "", "Filter by event kind (sequence, session, error)")
	fs.StringVar(&o.Category, "category", "", "Filter sequences by category")
	fs.BoolVar(&o.Unknown, "unknown", false, "Only unknown sequences")
	fs.BoolVar(&o.Known, "known", false, "Only known sequences")
	fs.IntVar(&o.MinDepth, "min-depth", 0, "Minimum macro nesting depth")
	fs.StringVar(&o.TimeStart, "time-start", "", "Only events at or after this time (RFC3339)")
	fs.StringVar(&o.TimeEnd, "time-end", "", "Only events before this time (RFC3339)")
}

// buildFilter converts the options into a log.Filter.
func buildFilter(opts TraceFilterOptions) (log.Filter, error) {
	filter := log.Filter{
		SessionID: opts.Session,
		MinDepth:  opts.MinDepth,
	}

	if opts.Kind != "" {
		k, err := ParseKindFlag(opts.Kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = &k
	}

	if opts.Category != "" {
		c, err := seq.ParseCategory(opts.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}

	switch {
	case opts.Known && opts.Unknown:
		return filter, errors.New("-known and -unknown are mutually exclusive")
	case opts.Known:
		known := true
		filter.Known = &known
	case opts.Unknown:
		known := false
		filter.Known = &known
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// ParseKindFlag parses an event kind (case-insensitive).
func ParseKindFlag(s string) (log.Kind, error) {
	switch strings.ToLower(s) {
	case "sequence", "seq":
		return log.KindSequence, nil
	case "session":
		return log.KindSession, nil
	case "error":
		return log.KindError, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (must be sequence, session, or error)", s)
	}
}

// RunTrace dispatches the trace subcommands.
func RunTrace(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printTraceUsage(stderr)
		return exitCommandError
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "view":
		return runTraceView(rest, stdout, stderr)
	case "stats":
		return runTraceStats(rest, stdout, stderr)
	case "export":
		return runTraceExport(rest, stdout, stderr)
	case "filter":
		return runTraceFilter(rest, stdout, stderr)
	case "help", "-h", "--help":
		printTraceUsage(stdout)
		return exitSuccess
	default:
		fmt.Fprintf(stderr, "Unknown trace command: %s\n", sub)
		printTraceUsage(stderr)
		return exitCommandError
	}
}

func runTraceView(args []string, stdout, stderr io.Writer) int {
	var opts TraceFilterOptions
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.register(fs)
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
	if err := RunView(fs.Arg(0), filter, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

// RunView prints the events of a trace file that match filter.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenSessionID(event.SessionID)

	switch {
	case event.Sequence != nil:
		s := event.Sequence
		status := ""
		if !s.Known {
			status = " UNKNOWN"
		}
		fmt.Fprintf(w, "%s [%s] @%d d%d %s%s\n", ts, session, event.Offset, event.Depth, s.Label, status)
		fmt.Fprintf(w, "  %s\n", s.Description)
		fmt.Fprintf(w, "  Category: %s", s.Category)
		if s.Action != seq.ActionNone {
			fmt.Fprintf(w, "  Action: %s", s.Action)
		}
		if s.Overlay != seq.OverlayNone {
			fmt.Fprintf(w, "  Overlay: %s", s.Overlay)
		}
		fmt.Fprintln(w)
		if s.Value != nil {
			fmt.Fprintf(w, "  Value: %d\n", *s.Value)
		}
		if s.Level != event.Depth {
			fmt.Fprintf(w, "  Level: %d\n", s.Level)
		}
	case event.Session != nil:
		fmt.Fprintf(w, "%s [%s] SESSION %s", ts, session, event.Session.State)
		if event.Source != "" {
			fmt.Fprintf(w, " %s", event.Source)
		}
		fmt.Fprintln(w)
		if event.Session.State == log.SessionEnd {
			fmt.Fprintf(w, "  Sequences: %d  Unknown: %d  Bytes: %d\n",
				event.Session.Sequences, event.Session.Unknown, event.Session.Bytes)
		}
	case event.Error != nil:
		fmt.Fprintf(w, "%s [%s] @%d ERROR %s\n", ts, session, event.Offset, event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	default:
		fmt.Fprintf(w, "%s [%s] %s\n", ts, session, event.Kind)
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func runTraceFilter(args []string, stdout, stderr io.Writer) int {
	var (
		opts   TraceFilterOptions
		output string
	)
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.register(fs)
	fs.StringVar(&output, "o", "", "Output file (required)")
	fs.Usage = func() { printTraceUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if fs.NArg() < 1 || output == "" {
		fmt.Fprintln(stderr, "Error: trace file path and -o output required")
		return exitCommandError
	}

	filter, err := buildFilter(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	n, err := RunFilter(fs.Arg(0), output, filter)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	fmt.Fprintf(stdout, "Filtered %d events to %s\n", n, output)
	return exitSuccess
}

// RunFilter copies the events matching filter into a new trace file.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output, log.WithTruncate())
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}
	return count, logger.Err()
}

func printTraceUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: pcl-seq trace <command> [options] <file.plog>

Commands:
  view     View a trace in human-readable format
  stats    Show statistics about a trace
  export   Export a trace to JSONL or CSV
  filter   Write matching events to a new trace file

Filter options (view, stats, export, filter):
  -session <id>      Filter by session ID
  -kind <kind>       Filter by event kind (sequence, session, error)
  -category <name>   Filter sequences by category
  -known, -unknown   Only known or only unknown sequences
  -min-depth <n>     Minimum macro nesting depth
  -time-start <t>    Only events at or after t (RFC3339)
  -time-end <t>      Only events before t (RFC3339)

Examples:
  pcl-seq trace view -unknown job.plog
  pcl-seq trace stats job.plog
  pcl-seq trace export -format csv -o job.csv job.plog
  pcl-seq trace filter -category macro -o macros.plog job.plog`)
}
