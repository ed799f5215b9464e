package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/A-pen-app/coldstart/internal/cli"
	"github.com/A-pen-app/coldstart/pkg/coldstart"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(coldstart.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(coldstart.ExitCodeForError(err))
	}
}
