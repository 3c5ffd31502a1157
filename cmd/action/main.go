package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashnode-blog/readme-action/internal/action"
	"github.com/hashnode-blog/readme-action/internal/config"
	"github.com/hashnode-blog/readme-action/internal/hashnode"
	"github.com/hashnode-blog/readme-action/internal/logger"
	"github.com/hashnode-blog/readme-action/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stderr",
		Pretty: cfg.LogPretty,
	})

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	log.Info().
		Str("publication", cfg.PublicationName).
		Int("post_count", cfg.PostCount).
		Str("display_format", cfg.DisplayFormat).
		Str("filename", cfg.Filename).
		Msg("Starting readme sync")

	client := hashnode.NewClient(cfg.APIEndpoint, cfg.FetchTimeout, log)

	// The document store is chosen once here and injected; nothing
	// downstream branches on the mode again.
	var st store.Store
	if cfg.LocalRun {
		log.Info().Str("dir", cfg.LocalDir).Msg("Local mode, writing to the filesystem")
		st = store.NewLocal(cfg.LocalDir, log)
	} else {
		st = store.NewGitHub(cfg.GitHubAPIURL, cfg.Token, cfg.Repository, cfg.TargetBranch, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := action.NewRunner(cfg, client, st, log)
	res, err := runner.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Run failed")
		os.Exit(1)
	}

	if err := action.WriteOutputs(res); err != nil {
		log.Error().Err(err).Msg("Failed to write action outputs")
		os.Exit(1)
	}

	log.Info().
		Int("posts_fetched", res.PostCount).
		Bool("changed", res.Changed).
		Str("commit", res.Commit).
		Msg("Run complete")
}
