package commands

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pclscope/pcl-go/pkg/catalog"
	"github.com/pclscope/pcl-go/pkg/version"
)

// RunVersion prints the tool version and the schema version of every
// catalog file in use.
func RunVersion(args []string, stdout, stderr io.Writer) int {
	var g globalFlags

	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(stderr)
	g.register(fs)
	fs.Usage = func() { printVersionUsage(stderr) }

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

	fmt.Fprintln(stdout, version.Info())
	printSources(stdout, e.catalog.Sources)
	return exitSuccess
}

func printSources(w io.Writer, sources []catalog.Source) {
	fmt.Fprintln(w, "Catalog:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, src := range sources {
		origin := "embedded"
		if src.Override {
			origin = "override"
		}
		note := ""
		if src.Newer {
			note = fmt.Sprintf("newer than %s", version.CatalogSchema)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", src.File, src.Version, origin, note)
	}
	tw.Flush()
}

func printVersionUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: pcl-seq version [options]

Prints the tool version and the schema version of each catalog file.

Options:
  -catalog <dir>     Directory with catalog overrides
  -config <file>     Config file (.yaml, .yml, .toml)
  -log-level <lvl>   Log level: debug, info, warn, error`)
}
