package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/ganttline/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.New(os.Stderr).Execute(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130 // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
