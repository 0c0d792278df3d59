// Package main provides the recsel CLI entrypoint.
//
// Usage:
//
//	recsel browse [options]   pick records from a running catalog
//	recsel serve  [options]   run the reference catalog server
//
// Browse exits 0 with the selection on stdout, or 1 when aborted.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set via ldflags at build time.
var version = "dev"

func main() {
	app := &cli.App{
		Name:           "recsel",
		Usage:          "Browse a paginated record catalog and pick records",
		Version:        version,
		DefaultCommand: "browse",
		ExitErrHandler: exitErrHandler,
		Commands: []*cli.Command{
			BrowseCommand(),
			ServeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		// ExitErrHandler already handled the exit for cli.ExitCoder errors.
		// This branch handles unexpected errors that weren't wrapped.
		os.Exit(1)
	}
}

// exitErrHandler preserves exit codes from cli.Exit(). Browse relies on
// this so an aborted session exits 1 without printing anything.
func exitErrHandler(_ *cli.Context, err error) {
	if err == nil {
		return
	}

	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		code := exitCoder.ExitCode()
		msg := exitCoder.Error()

		// cli.Exit("", N).Error() returns "exit status N", skip those
		if msg != "" && msg != fmt.Sprintf("exit status %d", code) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
