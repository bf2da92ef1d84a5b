package main

import (
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/devhire/devhire/internal/adapter"
	"github.com/devhire/devhire/internal/aggregate"
	"github.com/devhire/devhire/internal/config"
	"github.com/devhire/devhire/internal/model"
	"github.com/devhire/devhire/internal/ratelimit"
	"github.com/devhire/devhire/internal/retry"
	"github.com/devhire/devhire/internal/store"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "devhire",
	Short: "DevHire — a developer job board in your terminal",
	Long:  "DevHire aggregates postings from multiple job APIs into one deduplicated, ranked board you can search, filter, save, and like.",
	// Default to `browse` so that `devhire` with no args opens the board.
	RunE: runBrowse,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: DEVHIRE_CONFIG env var or ./devhire.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > DEVHIRE_CONFIG env var > "./devhire.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("DEVHIRE_CONFIG"); env != "" {
			path = env
		} else {
			path = "devhire.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// buildCoordinator assembles the aggregation pipeline: enabled sources in
// priority order, each wrapped with rate limiting and retry.
func buildCoordinator(cfg *config.Config, logger *slog.Logger) *aggregate.Coordinator {
	httpClient := &http.Client{Timeout: cfg.Search.Timeout}
	limiter := ratelimit.NewLimiter(cfg.Search.MinDelay)

	wrap := func(src model.Source) model.Source {
		return retry.New(
			ratelimit.NewSource(src, limiter),
			cfg.Search.MaxRetries,
			cfg.Search.RetryDelay,
			logger,
		)
	}

	// Each adapter gets its own rand source: adapters run concurrently and
	// a *rand.Rand is not safe for shared use.
	newRng := func() *rand.Rand {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var sources []model.Source
	if c := cfg.Sources.JSearch; c.Enabled() {
		sources = append(sources, wrap(adapter.NewJSearchAdapter(c.APIKey, c.APIHost, httpClient, newRng())))
	}
	if c := cfg.Sources.Reed; c.Enabled() {
		sources = append(sources, wrap(adapter.NewReedAdapter(c.APIKey, c.BaseURL, httpClient, newRng())))
	}
	if c := cfg.Sources.RemoteOK; c.Enabled() {
		sources = append(sources, wrap(adapter.NewRemoteOKAdapter(c.BaseURL, httpClient, newRng())))
	}

	logger.Info("sources enabled", "sources", cfg.EnabledSourceNames())
	return aggregate.New(sources, aggregate.Fixtures(), cfg.Search.Timeout, logger)
}

func openStore(cfg *config.Config, logger *slog.Logger) model.ProfileStore {
	st, err := store.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		logger.Warn("falling back to in-memory store", "error", err)
		return store.NewMemStore()
	}
	return st
}
