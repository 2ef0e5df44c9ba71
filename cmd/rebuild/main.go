// Command rebuild recomputes ride projections from the event log. It repairs
// projections left stale by a failed write or changed fold logic.
//
//	rebuild -user <id> [-ride <uuid>] [-timeout 10m]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/pkordes/ride-logbook/backend/internal/app"
	"github.com/pkordes/ride-logbook/backend/internal/config"
)

func main() {
	flags, err := parseFlags(flag.NewFlagSet("rebuild", flag.ContinueOnError), os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	ctx, cancel := context.WithTimeout(context.Background(), flags.Timeout)
	defer cancel()

	a, err := app.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := run(ctx, flags, a.Rides, os.Stdout); err != nil {
		logger.Error("rebuild failed", "error", err)
		a.Close()
		os.Exit(1)
	}
}
