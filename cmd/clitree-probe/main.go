// Command clitree-probe loads a clitree schema and parses tokens against it.
//
// Usage:
//
//	clitree-probe check --schema FILE
//	clitree-probe parse --schema FILE -- TOKENS...
//	clitree-probe split --schema FILE [--] LINE
//
// Every subcommand accepts --format text|json, --log-level, --log-format and
// --lang. The exit code is 0 on success, 1 when the tokens do not parse and 2
// on usage or schema errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

func main() {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, tty))
}

// run executes the probe and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, tty bool) int {
	p := &probe{stdout: stdout, stderr: stderr, tty: tty}
	app, err := p.app()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	err = app.Run(ctx, args)
	var exitErr *ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		if exitErr.Message != "" {
			fmt.Fprintln(stderr, exitErr.Message)
		}
		return exitErr.Code
	default:
		fmt.Fprintln(stderr, err)
		return 2
	}
}

// ExitError is an error carrying the exit code of the probe.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}
