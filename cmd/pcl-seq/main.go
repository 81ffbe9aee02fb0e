// Command pcl-seq classifies PCL escape sequences.
//
// Usage:
//
//	pcl-seq <command> [options] [args...]
//
// Commands:
//
//	list     List the known sequences
//	lookup   Classify typed sequences
//	scan     Classify every sequence in PCL files and report usage
//	trace    View, summarise, export or filter classification traces
//	shell    Interactive lookup with running statistics
//	version  Show tool and catalog versions
//
// Examples:
//
//	# Describe a sequence
//	pcl-seq lookup '&l26A'
//
//	# Report the sequences used by a job and keep a trace
//	pcl-seq scan -used -trace job.plog job.pcl
//
//	# Show only the unknown sequences of a trace
//	pcl-seq trace view -unknown job.plog
package main

import (
	"fmt"
	"os"

	"github.com/pclscope/pcl-go/cmd/pcl-seq/commands"
	"github.com/pclscope/pcl-go/pkg/version"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "list":
		exitCode = commands.RunList(args, os.Stdout, os.Stderr)
	case "lookup":
		exitCode = commands.RunLookup(args, os.Stdout, os.Stderr)
	case "scan", "report":
		exitCode = commands.RunScan(args, os.Stdout, os.Stderr)
	case "trace":
		exitCode = commands.RunTrace(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = commands.RunShell(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version":
		exitCode = commands.RunVersion(args, os.Stdout, os.Stderr)
	case "-v", "--version":
		fmt.Println(version.Info())
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`pcl-seq - PCL escape sequence classifier

Usage:
  pcl-seq <command> [options] [args...]

Commands:
  list       List the known sequences
  lookup     Classify typed sequences
  scan       Classify every sequence in PCL files and report usage
  trace      View, summarise, export or filter classification traces
  shell      Interactive lookup with running statistics
  version    Show tool and catalog versions

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  pcl-seq list -discrete -category page-control
  pcl-seq lookup '&l26A' '<Esc>&l1o2A'
  pcl-seq scan -used -trace job.plog job.pcl
  pcl-seq trace stats job.plog

For command-specific help, run:
  pcl-seq <command> -help`)
}
