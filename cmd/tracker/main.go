package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/daap14/tracker/internal/backend"
	"github.com/daap14/tracker/internal/cli"
	"github.com/daap14/tracker/internal/command"
	"github.com/daap14/tracker/internal/config"
	"github.com/daap14/tracker/internal/handler"
	"github.com/daap14/tracker/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log, closer := logging.New(cfg)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := backend.Open(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	reg := command.NewRegistry()
	handler.Register(reg, store, log)

	return cli.New(reg, command.NewDispatcher(log), log).Execute(ctx, args)
}
