package commands

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/pclscope/pcl-go/pkg/classify"
	"github.com/pclscope/pcl-go/pkg/log"
	"github.com/pclscope/pcl-go/pkg/scan"
)

// ScanOptions configures the scan command.
type ScanOptions struct {
	Truncate bool
	Verbose  bool
	Files    []string
}

// ScanOutput is the machine-readable result of a scan.
type ScanOutput struct {
	Files     []FileSummary       `json:"files" yaml:"files"`
	Sequences []classify.UsageRow `json:"sequences" yaml:"sequences"`

	// MaxLevel is the deepest macro level any use was counted at, or -1
	// when no sequence was seen.
	MaxLevel int `json:"maxLevel" yaml:"maxLevel"`
}

// FileSummary holds the totals for one scanned file.
type FileSummary struct {
	File      string `json:"file" yaml:"file"`
	Session   string `json:"session" yaml:"session"`
	Sequences uint64 `json:"sequences" yaml:"sequences"`
	Unknown   uint64 `json:"unknown" yaml:"unknown"`
	Bytes     int64  `json:"bytes" yaml:"bytes"`
	MaxDepth  int    `json:"maxDepth" yaml:"maxDepth"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RunScan runs the scan command.
func RunScan(args []string, stdout, stderr io.Writer) int {
	var g globalFlags
	opts := ScanOptions{}

	fs := flag.NewFlagSet("scan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	g.register(fs)
	g.registerFormat(fs, "Report format (text, csv, json, yaml)")
	fs.StringVar(&g.cfg.TraceFile, "trace", "", "Write a classification trace to this file (.plog)")
	fs.BoolVar(&opts.Truncate, "truncate", false, "Truncate the trace file instead of appending")
	fs.BoolVar(&g.cfg.UsedOnly, "used", false, "Only report sequences that were seen")
	fs.BoolVar(&g.cfg.HideObsolete, "hide-obsolete", false, "Hide obsolete sequences that were not seen")
	fs.BoolVar(&opts.Verbose, "v", false, "Print every sequence as it is classified")
	fs.Usage = func() { printScanUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	opts.Files = fs.Args()
	if len(opts.Files) == 0 {
		fmt.Fprintln(stderr, "Error: no file specified")
		printScanUsage(stderr)
		return exitCommandError
	}

	cfg, err := g.resolve(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	e, err := setup(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	tracer, closeTrace, err := openTrace(e, opts.Truncate)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer closeTrace()

	ctx := context.Background()
	stats := classify.NewStats()
	var (
		last   *classify.Classifier
		output ScanOutput
		failed bool
	)
	for _, path := range opts.Files {
		c := classify.New(e.reg,
			classify.WithStats(stats),
			classify.WithLogger(tracer),
			classify.WithSource(path),
		)
		last = c

		sum, err := scanFile(ctx, c, path, e, opts, stdout)
		fileSum := FileSummary{
			File:      path,
			Session:   c.SessionID(),
			Sequences: sum.Sequences,
			Unknown:   sum.Unknown,
			Bytes:     sum.Bytes,
			MaxDepth:  sum.MaxDepth,
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error: %s: %v\n", path, err)
			fileSum.Error = err.Error()
			failed = true
		}
		output.Files = append(output.Files, fileSum)
	}

	output.Sequences = last.ReportUsage(classify.ReportOptions{
		UsedOnly:           cfg.UsedOnly,
		HideUnusedObsolete: cfg.HideObsolete,
	})
	output.MaxLevel = last.Stats().MaxLevel()
	if err := writeScanOutput(stdout, output, cfg.Format, e); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if failed {
		return exitCommandError
	}
	return exitSuccess
}

// openTrace builds the trace logger: a file logger when a trace file is
// configured, mirrored to the operational log at debug level.
func openTrace(e *env, truncate bool) (log.Logger, func(), error) {
	loggers := []log.Logger{log.NewSlogAdapter(e.logger)}
	closeFn := func() {}

	if e.cfg.TraceFile != "" {
		var fopts []log.FileOption
		if truncate {
			fopts = append(fopts, log.WithTruncate())
		}
		fl, err := log.NewFileLogger(e.cfg.TraceFile, fopts...)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open trace file: %w", err)
		}
		loggers = append(loggers, fl)
		closeFn = func() {
			if err := fl.Close(); err != nil {
				e.logger.Error("closing trace file", "file", e.cfg.TraceFile, "error", err)
			}
			if err := fl.Err(); err != nil {
				e.logger.Error("writing trace file", "file", e.cfg.TraceFile, "error", err)
			}
			e.logger.Info("trace written", "file", e.cfg.TraceFile, "events", fl.Written())
		}
	}

	if !e.logger.Enabled(context.Background(), slog.LevelDebug) && e.cfg.TraceFile == "" {
		return log.NoopLogger{}, closeFn, nil
	}
	return log.NewMultiLogger(loggers...), closeFn, nil
}

func scanFile(ctx context.Context, c *classify.Classifier, path string, e *env, opts ScanOptions, stdout io.Writer) (scan.Summary, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return scan.Summary{}, err
		}
		defer f.Close()
		r = f
	}

	sopts := []scan.SessionOption{scan.WithLogger(e.logger)}
	if opts.Verbose {
		sopts = append(sopts, scan.WithObserver(func(tok scan.Token, res classify.Result) {
			fmt.Fprintf(stdout, "%08X  %*s%-16s %s\n", tok.Offset, 2*res.Level, "", tok.Label(), res.Description)
		}))
	}

	sum, err := scan.NewSession(r, c, sopts...).Run(ctx)
	e.logger.Info("scanned", "file", path, "sequences", sum.Sequences, "unknown", sum.Unknown, "bytes", sum.Bytes)
	return sum, err
}

func writeScanOutput(w io.Writer, out ScanOutput, format string, e *env) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(out)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))
	case "csv":
		return writeReportCSV(w, out.Sequences)
	case "text":
		p := message.NewPrinter(e.lang)
		for _, f := range out.Files {
			p.Fprintf(w, "%s: %d sequences, %d unknown, %d bytes\n", f.File, f.Sequences, f.Unknown, f.Bytes)
		}
		if out.MaxLevel > 0 {
			fmt.Fprintf(w, "Deepest macro level: %d\n", out.MaxLevel)
		}
		fmt.Fprintln(w)
		return classify.WriteReport(w, out.Sequences, e.lang)
	default:
		return fmt.Errorf("unknown format: %s (supported: text, csv, json, yaml)", format)
	}
	return nil
}

func writeReportCSV(w io.Writer, rows []classify.UsageRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sequence", "parent", "child", "total", "levels", "category", "description"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		levels := make([]string, len(r.Levels))
		for i, n := range r.Levels {
			levels[i] = strconv.FormatUint(n, 10)
		}
		row := []string{
			r.Label,
			strconv.FormatUint(r.Parent, 10),
			strconv.FormatUint(r.Child, 10),
			strconv.FormatUint(r.Total, 10),
			strings.Join(levels, ";"),
			r.Category,
			r.Description,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func printScanUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: pcl-seq scan [options] <file>...

Classifies every escape sequence in the given PCL files ("-" reads stdin)
and prints a usage report.

Options:
  -trace <file>      Write a classification trace (.plog)
  -truncate          Truncate the trace file instead of appending
  -used              Only report sequences that were seen
  -hide-obsolete     Hide obsolete sequences that were not seen
  -v                 Print every sequence as it is classified
  -f, -format        Report format (text, csv, json, yaml) [default: text]
  -lang <tag>        Language tag for number formatting [default: en]
  -config <file>     Config file (.yaml, .yml, .toml)
  -catalog <dir>     Directory with catalog overrides
  -log-level <lvl>   Log level: debug, info, warn, error

Examples:
  pcl-seq scan -used job.pcl
  pcl-seq scan -trace job.plog -format json job.pcl`)
}
