// Command parse24 validates an IPPcode24 program from stdin, emits its
// XML representation on stdout, and writes requested source statistics
// to files. With the "lsp" subcommand it serves parse diagnostics over
// the Language Server Protocol instead.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/Miffiny/IPP-1/ippcode"
	"github.com/Miffiny/IPP-1/lsp"
	"github.com/Miffiny/IPP-1/stats"
)

// Exit statuses of the reference tool.
const (
	exitUsage     = 10 // bad or conflicting arguments
	exitOutput    = 12 // statistics destination conflict or write failure
	exitHeader    = 22 // missing header or unknown opcode
	exitSyntax    = 23 // lexical or syntactic error
	lspDefaultTCP = ":2024"
)

const usage = `Usage: parse24 [-v] [--stats=<file> [statistic ...]] ...
       parse24 lsp [tcp|ws [addr]]

Reads an IPPcode24 program from stdin and writes its XML representation
to stdout. Each --stats=<file> opens a statistics destination; the
statistics that follow it are written there, one per line, in order:
  --loc        number of instructions
  --comments   number of lines with comments
  --labels     number of unique labels
  --jumps      number of distinct jump targets referenced
  --fwjumps    number of forward jumps
  --backjumps  number of backward jumps
  --badjumps   number of jumps with no proper target
  --frequent   most frequent opcodes, alphabetical, comma-joined
  --eol        number of input lines
  --print=<s>  the literal string <s>
  --expr=<e>   the value of expression <e> over the statistics
A destination file may be named only once per run.
The -v (--verbose) flag logs each scanned line to stderr.`

// verboseFlag strips -v/--verbose from the argument list.
func verboseFlag(args []string) (bool, []string) {
	verbose := false
	rest := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
			continue
		}
		rest = append(rest, arg)
	}
	return verbose, rest
}

// exitCode maps a parse error to the reference tool's exit statuses.
func exitCode(err error) int {
	var unknownOp ippcode.ErrUnknownOpcode
	switch {
	case errors.Is(err, ippcode.ErrHeaderMissing), errors.As(err, &unknownOp):
		return exitHeader
	default:
		return exitSyntax
	}
}

func fatal(code int, err error) {
	fmt.Fprintf(os.Stderr, "parse24: %v\n", err)
	atexit.Exit(code)
}

func serveLSP(args []string) {
	addr := lspDefaultTCP
	if len(args) >= 2 {
		addr = args[1]
	}

	switch {
	case len(args) == 0:
		lsp.ListenAndServe()
	case args[0] == "tcp":
		if err := lsp.ListenAndServeTCP(addr); err != nil {
			log.Fatalf("parse24: lsp: %v", err)
		}
	case args[0] == "ws":
		if err := lsp.ListenAndServeWebSocket(addr); err != nil {
			log.Fatalf("parse24: lsp: %v", err)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		atexit.Exit(exitUsage)
	}
}

func main() {
	defer atexit.Exit(0)

	args := os.Args[1:]

	if len(args) >= 1 && args[0] == "lsp" {
		serveLSP(args[1:])
		return
	}

	var verbose bool
	verbose, args = verboseFlag(args)

	for _, arg := range args {
		if arg == "--help" {
			if len(args) > 1 {
				fmt.Fprintln(os.Stderr, "parse24: --help cannot be combined with other arguments")
				atexit.Exit(exitUsage)
			}
			fmt.Println(usage)
			return
		}
	}

	dests, err := stats.ParseRequests(args)
	if err != nil {
		var dup stats.ErrStatsFileDuplicate
		if errors.As(err, &dup) {
			fatal(exitOutput, err)
		}
		fatal(exitUsage, err)
	}

	parser := &ippcode.Parser{Verbose: verbose}
	prog, err := parser.Parse(os.Stdin)
	if err != nil {
		fatal(exitCode(err), err)
	}

	if err := prog.WriteXML(os.Stdout); err != nil {
		fatal(exitOutput, err)
	}

	if err := parser.Stats.WriteAll(dests); err != nil {
		fatal(exitOutput, err)
	}
}
