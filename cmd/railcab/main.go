// Package main is the railcab command line: record driving sessions
// from the keyboard, replay their logs, and manage input bindings.
package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
