package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/lchandle/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config is loaded after flag parsing so --config can override the default path.
	return ui.NewApp(nil).Execute()
}
