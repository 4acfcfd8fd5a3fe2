// Command tuido is a terminal to-do application. Run without
// arguments it opens the interactive UI; subcommands offer
// non-interactive access to the same data.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tuido:", err)
		os.Exit(1)
	}
}
