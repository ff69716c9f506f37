package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/armando-couceiro/team-balance/internal/app"
	"github.com/armando-couceiro/team-balance/internal/config"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

func main() {
	exportPath := flag.String("export", "", "write a JSON backup of players and matches to this path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	players, err := application.Roster.ListPlayers(ctx)
	if err != nil {
		logger.Error("list players", "error", err)
		os.Exit(1)
	}
	matches, err := application.Matches.ListMatches(ctx)
	if err != nil {
		logger.Error("list matches", "error", err)
		os.Exit(1)
	}
	pending, err := application.Matches.ListPending(ctx)
	if err != nil {
		logger.Error("list pending matches", "error", err)
		os.Exit(1)
	}

	logger.Info("state loaded",
		"state_path", cfg.StatePath,
		"players", len(players),
		"matches", len(matches),
		"pending", len(pending),
	)

	if *exportPath != "" {
		raw, err := application.Backup.Export(ctx)
		if err != nil {
			logger.Error("export backup", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*exportPath, raw, 0o644); err != nil {
			logger.Error("write backup file", "path", *exportPath, "error", err)
			os.Exit(1)
		}
		fmt.Printf("backup written to %s\n", *exportPath)
	}
}
