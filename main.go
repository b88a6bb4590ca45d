package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/ChainSafe/rvhex/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cmd.NewApp(os.Args[0])
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Fatal("rvhex failed", "err", err)
	}
}
