package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmynk/splitledger/internal/commands"
	"github.com/mmynk/splitledger/pkg/logging"
)

func main() {
	// Until serve installs the configured level.
	_ = logging.Setup("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
