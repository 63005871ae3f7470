// Package main provides the verse CLI for generating the Verse preset and
// checking how the design system is used.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Lint and audit print their own report before failing.
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
