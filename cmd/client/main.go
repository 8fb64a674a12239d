package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/livequery/internal/client/api"
	"github.com/iudanet/livequery/internal/client/auth"
	"github.com/iudanet/livequery/internal/client/cli"
	"github.com/iudanet/livequery/internal/client/config"
	"github.com/iudanet/livequery/internal/client/iocli"
	"github.com/iudanet/livequery/internal/client/storage"
	"github.com/iudanet/livequery/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, args, err := config.Load("livequery", os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		return 2
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	stdio := iocli.NewStdio()
	if len(args) == 0 {
		cli.PrintUsage(stdio)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 2
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Ctrl+C завершает watch и прерывает ожидание входа
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	passphrase, err := cli.ResolvePassphrase(ctx, cfg, stdio, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	credentials, err := auth.NewSealedStore(ctx, boltStorage, passphrase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	apiClient := api.NewClient(cfg.ServerURL, cfg.RequestTimeout, logger)
	loopback := cli.NewLoopback(cfg.CallbackAddr, stdio, logger)

	// secret и state живут только до возврата на loopback в этом же процессе
	session := auth.NewSession(apiClient, credentials, storage.NewMemoryStore(), loopback, logger)
	if err := session.Initialize(ctx, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	app := cli.New(cfg, stdio, session, loopback, credentials.Sealed(), logger)
	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("LiveQuery Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
