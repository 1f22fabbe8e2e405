// Command topplays-report prints a Last.fm user's top tracks or one track's
// daily plays as tables.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultServiceFactory).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
