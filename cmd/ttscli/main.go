package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/lexiqai/tts-cli/internal/cli"
)

func main() {
	// Ctrl-C aborts the whole run, including an in-flight synthesis call.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
