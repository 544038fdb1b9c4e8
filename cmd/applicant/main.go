package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lshigami/admission/internal/logger"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
