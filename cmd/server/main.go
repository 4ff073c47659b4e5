package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"liiga-goalie-service/internal/config"
	"liiga-goalie-service/internal/logging"
	"liiga-goalie-service/internal/server"
)

const appVersion = "dev"

var exit = os.Exit

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		exit(1)
		return
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "liiga-goalie-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(*cfg, logger)
	srv.Run(ctx, stop)
}
