package main

import (
	"fmt"
	"os"

	"midic/internal/errors"
)

var (
	version = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describe(err))
		os.Exit(1)
	}
}

// describe renders a fatal error, followed by a hint when the user can
// fix the cause.
func describe(err error) string {
	var hint string
	switch {
	case errors.IsDirectoryNotFound(err):
		hint = "check the path, or run midic without an argument to browse the current directory"
	case errors.IsAccessDenied(err):
		hint = "midic needs read and search permission on the directory"
	case errors.IsInvalidConfig(err):
		hint = "see 'midic --help' for the --player and --kill flags"
	}
	if hint == "" {
		return err.Error()
	}
	return err.Error() + "\n" + hint
}
