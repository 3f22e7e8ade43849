// Termfolio is a portfolio site shaped like a terminal. It runs as a
// full-screen TUI, a plain line console, or an HTTP server with a
// browser console.
//
// Usage: termfolio [--config <file>] [plain|serve|version]
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		os.Exit(1)
	}
}
