package commands

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/text/language"

	"github.com/pclscope/pcl-go/pkg/classify"
	"github.com/pclscope/pcl-go/pkg/scan"
	"github.com/pclscope/pcl-go/pkg/seq"
)

// Shell is an interactive lookup session. Usage statistics accumulate
// across lookups until reset.
type Shell struct {
	c     *classify.Classifier
	lang  language.Tag
	out   io.Writer
	depth int
}

func newShell(c *classify.Classifier, lang language.Tag, out io.Writer) *Shell {
	return &Shell{c: c, lang: lang, out: out}
}

// execute runs one input line. It returns false when the shell should
// exit.
func (s *Shell) execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "lookup", "l":
		s.cmdLookup(args)

	case "values", "v":
		s.cmdValues(args)

	case "depth", "d":
		s.cmdDepth(args)

	case "report", "r":
		s.cmdReport(args)

	case "reset":
		s.c.ResetStatistics()
		fmt.Fprintln(s.out, "Statistics reset.")

	case "size":
		fmt.Fprintf(s.out, "%d entries\n", s.c.RegistrySize())

	case "session":
		fmt.Fprintln(s.out, s.c.SessionID())

	case "quit", "exit", "q":
		return false

	default:
		// Anything else is taken as a sequence.
		s.cmdLookup(parts)
	}
	return true
}

func (s *Shell) cmdLookup(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: lookup <sequence>...")
		return
	}
	for _, in := range args {
		results, err := lookup(s.c, in, s.depth)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		printLookupText(s.out, results)
	}
}

// cmdValues lists the discrete values of the family of each sequence.
func (s *Shell) cmdValues(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: values <sequence>...")
		return
	}
	reg := s.c.Registry()
	for _, in := range args {
		tokens, err := scan.ParseSequence(in)
		if err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			continue
		}
		for _, tok := range tokens {
			root := seq.RootKey(tok.Ind, tok.Group, tok.Term)
			family, ok := reg.Lookup(root)
			if !ok {
				fmt.Fprintf(s.out, "%s: unknown sequence\n", tok.Label())
				continue
			}
			values := reg.Values(root)
			if len(values) == 0 {
				fmt.Fprintf(s.out, "%s: no discrete values\n", family.Label())
				continue
			}
			fmt.Fprintf(s.out, "%s: %d values\n", family.Label(), len(values))
			for _, e := range values {
				fmt.Fprintf(s.out, "  %-16s %s\n", e.Label(), e.Description.String())
			}
		}
	}
}

func (s *Shell) cmdDepth(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "Depth: %d\n", s.depth)
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Fprintf(s.out, "Error: invalid depth: %s\n", args[0])
		return
	}
	s.depth = n
	fmt.Fprintf(s.out, "Depth: %d\n", s.depth)
}

func (s *Shell) cmdReport(args []string) {
	opts := classify.ReportOptions{UsedOnly: true}
	if len(args) > 0 {
		switch args[0] {
		case "all":
			opts.UsedOnly = false
		case "current":
			opts = classify.ReportOptions{HideUnusedObsolete: true}
		case "used":
		default:
			fmt.Fprintln(s.out, "Usage: report [used|current|all]")
			return
		}
	}
	if err := classify.WriteReport(s.out, s.c.ReportUsage(opts), s.lang); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
PCL Sequence Shell Commands:
  lookup <seq>...    - Classify sequences (a bare sequence works too)
  values <seq>...    - List the discrete values of a sequence family
  depth [n]          - Show or set the macro nesting depth for lookups
  report [mode]      - Usage report: used (default), current, all
  reset              - Reset usage statistics
  size               - Number of registry entries
  session            - Show the session ID
  help               - Show this help
  quit               - Exit

Sequences: &l26A  <Esc>&l1o2A  \e(8U  E  &l#A`)
}

// RunShell runs the interactive shell.
func RunShell(args []string, stdout, stderr io.Writer) int {
	var (
		g       globalFlags
		history string
	)
	fs := flag.NewFlagSet("shell", flag.ContinueOnError)
	fs.SetOutput(stderr)
	g.register(fs)
	fs.StringVar(&history, "history", "", "History file")

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

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "pcl> ",
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          stdout,
		Stderr:          stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create readline: %v\n", err)
		return exitCommandError
	}
	defer rl.Close()

	sh := newShell(classify.New(e.reg), e.lang, rl.Stdout())
	fmt.Fprintf(rl.Stdout(), "%d sequences loaded. Type 'help' for commands.\n", countFamilies(e.reg))

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			break
		}
		if !sh.execute(line) {
			break
		}
	}
	fmt.Fprintln(rl.Stdout(), "Exiting...")
	return exitSuccess
}

// countFamilies returns the number of family root entries.
func countFamilies(r *seq.Registry) int {
	n := 0
	for _, e := range r.Entries() {
		if e.Key.IsRoot() {
			n++
		}
	}
	return n
}
