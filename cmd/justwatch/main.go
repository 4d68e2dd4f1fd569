// Command justwatch searches JustWatch for titles and where to stream them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
