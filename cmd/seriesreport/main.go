package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"seriesreport/internal/failure"
	"seriesreport/internal/run"
)

const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if run.Cancelled(err) {
		return exitInterrupted
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	return failure.ExitCode(err)
}
