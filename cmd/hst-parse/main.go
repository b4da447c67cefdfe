// Command hst-parse parses a CSP0 file and dumps its named process
// definitions without exploring the reachability graph — useful for
// checking that a .csp0 file parses cleanly. Parsing still interns every
// expression into a fresh Env; no state beyond those expressions is
// visited. Mirrors the teacher's standalone devcmd-parser companion binary.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/hst-go/hst/csp/process"
	"github.com/hst-go/hst/csp0"
)

const (
	exitSuccess          = 0
	exitInvalidArguments = 1
	exitIOError          = 2
	exitParseError       = 3
)

func main() {
	debug := false
	args := os.Args[1:]
	var inputFile string
	for _, a := range args {
		switch a {
		case "-debug":
			debug = true
		default:
			if inputFile != "" {
				usage()
				os.Exit(exitInvalidArguments)
			}
			inputFile = a
		}
	}
	if inputFile == "" {
		usage()
		os.Exit(exitInvalidArguments)
	}

	content, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(exitIOError)
	}

	env := process.NewEnv()
	program, err := csp0.Parse(content, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", inputFile, err)
		os.Exit(exitParseError)
	}

	if debug {
		fmt.Fprintf(os.Stderr, "parsed %d named process(es), %d processes interned\n", len(program.Names), env.Size())
	}

	names := make([]string, 0, len(program.Names))
	for name := range program.Names {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s = %s\n", name, process.NameString(program.Names[name]))
	}
	fmt.Printf("within %s\n", process.NameString(program.Root))

	os.Exit(exitSuccess)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-debug] <file.csp0>\n", os.Args[0])
}
