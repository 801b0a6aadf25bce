package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"sharesync/internal/cli"
	"sharesync/internal/cli/iocli"
	clientapi "sharesync/internal/client/api"
	"sharesync/internal/config"
	"sharesync/internal/queue"
	"sharesync/internal/queue/boltdb"
	"sharesync/internal/retry"
	"sharesync/internal/sync"
	"sharesync/internal/telemetry"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Глобальные флаги; значения по умолчанию — из окружения/.env
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", cfg.Server.URL, "Server URL")
	dbPath := flag.String("db", cfg.Client.DBPath, "Path to local database")
	userID := flag.String("user", cfg.Client.UserID, "User ID for the offline queue namespace")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	slogLevel := slog.LevelInfo
	if cfg.Logging.Level == "debug" {
		slogLevel = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slogLevel,
		TimeFormat: time.RFC3339,
	}))

	ctx := context.Background()

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	pending := queue.New(store, *userID, logger)
	apiClient := clientapi.NewClient(*serverURL, cfg.Server.Token)
	coordinator := sync.NewCoordinator(sync.Config{
		Client: apiClient,
		Queue:  pending,
		Bus:    telemetry.NewBus(logger),
		Logger: logger,
		UserID: *userID,
		Retry: retry.Options{
			Attempts:    cfg.Retry.Attempts,
			Backoff:     cfg.Retry.Backoff,
			JitterRatio: cfg.Retry.JitterRatio,
		},
	})

	c := cli.New(coordinator, pending, iocli.NewStdio())
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("ShareSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
