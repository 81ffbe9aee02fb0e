package commands

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/pclscope/pcl-go/pkg/classify"
	"github.com/pclscope/pcl-go/pkg/seq"
)

// ListOptions configures the list command.
type ListOptions struct {
	Obsolete bool
	Discrete bool
	Category string
}

// EntryOutput represents a single registry entry.
type EntryOutput struct {
	Sequence    string `json:"sequence" yaml:"sequence"`
	Category    string `json:"category" yaml:"category"`
	Param       string `json:"param" yaml:"param"`
	Action      string `json:"action,omitempty" yaml:"action,omitempty"`
	Overlay     string `json:"overlay,omitempty" yaml:"overlay,omitempty"`
	Obsolete    bool   `json:"obsolete,omitempty" yaml:"obsolete,omitempty"`
	Description string `json:"description" yaml:"description"`
}

func entryOutput(e seq.Entry) EntryOutput {
	out := EntryOutput{
		Sequence:    e.Label(),
		Category:    e.Category.String(),
		Param:       e.Param.String(),
		Obsolete:    e.Obsolete(),
		Description: e.Description.String(),
	}
	if e.Action != seq.ActionNone {
		out.Action = e.Action.String()
	}
	if e.Overlay != seq.OverlayNone {
		out.Overlay = e.Overlay.String()
	}
	return out
}

// RunList runs the list command.
func RunList(args []string, stdout, stderr io.Writer) int {
	var g globalFlags
	opts := ListOptions{}

	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	g.register(fs)
	g.registerFormat(fs, "Output format (text, csv, json, yaml)")
	fs.BoolVar(&opts.Obsolete, "obsolete", false, "Include obsolete sequences")
	fs.BoolVar(&opts.Discrete, "discrete", false, "Show each discrete value instead of its family")
	fs.StringVar(&opts.Category, "category", "", "Only list one category")
	fs.Usage = func() { printListUsage(stderr) }

	if err := fs.Parse(args); err != nil {
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

	var only *seq.Category
	if opts.Category != "" {
		c, err := seq.ParseCategory(opts.Category)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		only = &c
	}

	c := classify.New(e.reg)
	var entries []EntryOutput
	for _, entry := range c.ListEntries(seq.ListOptions{IncludeObsolete: opts.Obsolete, ShowDiscrete: opts.Discrete}) {
		if only != nil && entry.Category != *only {
			continue
		}
		entries = append(entries, entryOutput(entry))
	}

	if err := writeEntries(stdout, entries, cfg.Format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}

func writeEntries(w io.Writer, entries []EntryOutput, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(data))
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"sequence", "category", "param", "action", "overlay", "obsolete", "description"}); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		for _, e := range entries {
			row := []string{e.Sequence, e.Category, e.Param, e.Action, e.Overlay, fmt.Sprint(e.Obsolete), e.Description}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	case "text":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, e := range entries {
			desc := e.Description
			if e.Obsolete {
				desc += " [obsolete]"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Sequence, strings.ToLower(e.Category), desc)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format: %s (supported: text, csv, json, yaml)", format)
	}
	return nil
}

func printListUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: pcl-seq list [options]

Options:
  -obsolete          Include obsolete sequences
  -discrete          Show each discrete value instead of its family
  -category <name>   Only list one category (e.g. font-selection)
  -f, -format        Output format (text, csv, json, yaml) [default: text]
  -config <file>     Config file (.yaml, .yml, .toml)
  -catalog <dir>     Directory with catalog overrides
  -log-level <lvl>   Log level: debug, info, warn, error

Examples:
  pcl-seq list
  pcl-seq list -discrete -category page-control
  pcl-seq list -obsolete -format csv`)
}
