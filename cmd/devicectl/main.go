// Package main is a command-line tool for identifying Apple devices.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// overridden by -ldflags -X
var version = "unknown"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx, version); err != nil {
		fmt.Fprintln(os.Stderr, red("error:"), err)
		os.Exit(1)
	}
}
