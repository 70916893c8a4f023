// Command spex compiles an expression of the surface language (spec §6.1)
// and writes its automaton as Mermaid graph text, per spec §6.2.
//
// Grounded in the teacher's CLI conventions: a thin main wiring flags to
// the library API, using github.com/spf13/pflag rather than the stdlib
// flag package.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/spexcore/spex"
	"github.com/spexcore/spex/parseerr"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("spex", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	out := flags.StringP("out", "o", "-", `output path for the Mermaid diagram, or "-" for stdout`)
	budget := flags.Int("budget", 0, "maximum composite states a closure construction may create (0 = default)")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	expr, err := readExpr(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintln(stderr, "spex:", err)
		return 2
	}

	cfg := spex.DefaultConfig()
	if *budget > 0 {
		cfg.MaxStates = *budget
	}

	set, err := spex.CompileConfig(expr, cfg)
	if err != nil {
		var pe *parseerr.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintf(stderr, "spex: %s\n", pe.Error())
			return 1
		}
		fmt.Fprintln(stderr, "spex:", err)
		return 1
	}

	diagram := set.Mermaid()
	if *out == "-" {
		fmt.Fprint(stdout, diagram)
		return 0
	}
	if err := os.WriteFile(*out, []byte(diagram), 0o644); err != nil {
		fmt.Fprintln(stderr, "spex:", err)
		return 1
	}
	return 0
}

func readExpr(positional []string, stdin io.Reader) (string, error) {
	if len(positional) > 0 && positional[0] != "-" {
		return positional[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading expression from stdin: %w", err)
	}
	return string(data), nil
}
