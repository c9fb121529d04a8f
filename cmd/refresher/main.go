// Command refresher runs the statistic refresh worker: it sweeps stored
// statistics on the configured cron schedule and recomputes the stale ones.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/workboardhq/workboard-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("refresher: %v", err)
	}
}
