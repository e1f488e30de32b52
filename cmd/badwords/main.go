package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(exitCodeFor(err))
	}
}
