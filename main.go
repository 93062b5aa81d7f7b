package main

import (
	"fmt"
	"os"

	"github.com/vintxt/vin/editor"
)

func main() {
	e := editor.NewEditor()

	if err := e.EnableRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := e.Init(); err != nil {
		e.Die("%v", err)
	}
	e.WatchResize()

	if len(os.Args) >= 2 {
		if err := e.Open(os.Args[1]); err != nil {
			e.Die("%v", err)
		}
	}

	e.SetStatusMessage("Use :q to quit, :w to save")

	for {
		e.RefreshScreen()
		e.ProcessKeypress()
	}
}
