package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pclscope/pcl-go/pkg/classify"
	"github.com/pclscope/pcl-go/pkg/scan"
	"github.com/pclscope/pcl-go/pkg/seq"
)

// LookupOutput is the classification of one typed sequence.
type LookupOutput struct {
	Input       string `json:"input" yaml:"input"`
	Sequence    string `json:"sequence" yaml:"sequence"`
	Entry       string `json:"entry" yaml:"entry"`
	Known       bool   `json:"known" yaml:"known"`
	Category    string `json:"category" yaml:"category"`
	Action      string `json:"action,omitempty" yaml:"action,omitempty"`
	Overlay     string `json:"overlay,omitempty" yaml:"overlay,omitempty"`
	Level       int    `json:"level" yaml:"level"`
	Payload     bool   `json:"payload,omitempty" yaml:"payload,omitempty"`
	Description string `json:"description" yaml:"description"`
}

// lookup parses input and classifies each of its tokens at depth.
func lookup(c *classify.Classifier, input string, depth int) ([]LookupOutput, error) {
	tokens, err := scan.ParseSequence(input)
	if err != nil {
		return nil, err
	}

	out := make([]LookupOutput, 0, len(tokens))
	for _, tok := range tokens {
		res := c.Classify(tok.Ind, tok.Group, tok.Term, tok.Exact, tok.Value, depth)
		o := LookupOutput{
			Input:       input,
			Sequence:    tok.Label(),
			Entry:       res.Entry.Label(),
			Known:       res.Known,
			Category:    res.Entry.Category.String(),
			Level:       res.Level,
			Payload:     res.Entry.Action.CarriesData(),
			Description: res.Description,
		}
		if res.Entry.Action != seq.ActionNone {
			o.Action = res.Entry.Action.String()
		}
		if res.Entry.Overlay != seq.OverlayNone {
			o.Overlay = res.Entry.Overlay.String()
		}
		out = append(out, o)
	}
	return out, nil
}

func printLookupText(w io.Writer, results []LookupOutput) {
	for _, r := range results {
		status := ""
		if !r.Known {
			status = " (unknown)"
		}
		fmt.Fprintf(w, "%-16s %s%s\n", r.Sequence, r.Description, status)
		if r.Entry != r.Sequence {
			fmt.Fprintf(w, "  Entry:    %s\n", r.Entry)
		}
		fmt.Fprintf(w, "  Category: %s\n", r.Category)
		if r.Action != "" {
			fmt.Fprintf(w, "  Action:   %s\n", r.Action)
		}
		if r.Overlay != "" {
			fmt.Fprintf(w, "  Overlay:  %s\n", r.Overlay)
		}
		if r.Payload {
			fmt.Fprintln(w, "  Payload:  followed by data, length in the value field")
		}
		if r.Level > 0 {
			fmt.Fprintf(w, "  Level:    %d\n", r.Level)
		}
	}
}

// RunLookup runs the lookup command.
func RunLookup(args []string, stdout, stderr io.Writer) int {
	var g globalFlags
	var depth int

	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	g.register(fs)
	g.registerFormat(fs, "Output format (text, json, yaml)")
	fs.IntVar(&depth, "depth", 0, "Macro nesting depth to classify at")
	fs.Usage = func() { printLookupUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: no sequence specified")
		printLookupUsage(stderr)
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

	c := classify.New(e.reg)
	var results []LookupOutput
	for _, input := range fs.Args() {
		r, err := lookup(c, input, depth)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		results = append(results, r...)
	}

	switch cfg.Format {
	case "json":
		data, _ := json.MarshalIndent(results, "", "  ")
		fmt.Fprintln(stdout, string(data))
	case "yaml":
		data, _ := yaml.Marshal(results)
		fmt.Fprint(stdout, string(data))
	case "text":
		printLookupText(stdout, results)
	default:
		fmt.Fprintf(stderr, "Error: unknown format: %s (supported: text, json, yaml)\n", cfg.Format)
		return exitCommandError
	}
	return exitSuccess
}

func printLookupUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: pcl-seq lookup [options] <sequence>...

Sequences may be written as "&l26A", "<Esc>&l26A", "\e&l1o2A" or "E".
Use '#' for the value field to name a whole family, e.g. "&l#A".

Options:
  -depth <n>         Macro nesting depth to classify at [default: 0]
  -f, -format        Output format (text, json, yaml) [default: text]
  -config <file>     Config file (.yaml, .yml, .toml)
  -catalog <dir>     Directory with catalog overrides

Examples:
  pcl-seq lookup '&l26A'
  pcl-seq lookup -format json '<Esc>&l1o2A' E`)
}
