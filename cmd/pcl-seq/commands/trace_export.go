package commands

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pclscope/pcl-go/pkg/log"
)

func runTraceExport(args []string, stdout, stderr io.Writer) int {
	var (
		opts   TraceFilterOptions
		format string
		output string
	)
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.register(fs)
	fs.StringVar(&format, "format", "jsonl", "Output format (jsonl, csv)")
	fs.StringVar(&output, "o", "", "Output file (default: stdout)")
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

	w := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			fmt.Fprintf(stderr, "Error: failed to create output file: %v\n", err)
			return exitCommandError
		}
		defer f.Close()
		w = f
	}

	if err := RunExport(fs.Arg(0), format, filter, w); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

// RunExport writes the matching events of a trace file to w.
func RunExport(path, format string, filter log.Filter, w io.Writer) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "kind", "source", "offset", "depth", "sequence", "known", "category", "value", "level", "description"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		var label, known, category, value, level, desc string
		switch {
		case event.Sequence != nil:
			s := event.Sequence
			label = s.Label
			known = strconv.FormatBool(s.Known)
			category = s.Category.String()
			if s.Value != nil {
				value = strconv.FormatInt(int64(*s.Value), 10)
			}
			level = strconv.Itoa(s.Level)
			desc = s.Description
		case event.Session != nil:
			desc = event.Session.State.String()
		case event.Error != nil:
			desc = event.Error.Message
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			event.Kind.String(),
			event.Source,
			strconv.FormatInt(event.Offset, 10),
			strconv.Itoa(event.Depth),
			label,
			known,
			category,
			value,
			level,
			desc,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
