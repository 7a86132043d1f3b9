// Command layoutdump loads a raw layout-bytecode file and lets you step
// through its instructions interactively, or dump them to stdout in one
// shot with -list.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	var (
		path = flag.String("layout", "", "Path to a raw layout bytecode file")
		list = flag.Bool("list", false, "Dump instructions and exit")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Usage: layoutdump -layout <file> [-list]")
		fmt.Fprintln(os.Stderr, "       layoutdump -layout <file>  (interactive stepper)")
		os.Exit(1)
	}

	if *list {
		if err := dumpList(*path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runInteractive(*path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
