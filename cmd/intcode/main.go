// intcode CLI - runs Intcode programs, amplifier networks and phase searches.
package main

import (
	"os"

	"github.com/tebeka/atexit"
)

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	atexit.Register(a.flush)

	if err := a.root.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
