package main

import (
	"context"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/logger"
	"github.com/huynhanx03/go-queue/pkg/settings"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		// Config may not have loaded, so report with defaults.
		if log, closeLog, lerr := logger.New(settings.Default().Logger); lerr == nil {
			log.Error("queuectl failed", zap.Error(err))
			_ = closeLog()
		}
		stop()
		os.Exit(1)
	}
}
