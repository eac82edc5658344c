package main

import (
	"context"
	"log/slog"
	"os"

	"inspira/internal/client/cli"
	"inspira/internal/client/config"
	"inspira/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
