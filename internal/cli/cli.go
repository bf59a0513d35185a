// Package cli implements the ghexplorer command-line interface.
//
// This package provides commands for exploring GitHub profiles: fetching
// user cards, browsing repositories, searching users, aggregating language
// statistics, and managing favorites and search history. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - user: Show a user's profile
//   - repos: List and filter a user's repositories
//   - search: Search users, recording the query in the history
//   - stats: Aggregate a user's language distribution
//   - favorites, history: Manage stored usernames and queries
//   - serve: Run the JSON API
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JosepEscobar/github-profile-explorer-sub000/internal/config"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/buildinfo"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/cache"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/explorer"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "ghexplorer"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	cfg    config.Config

	// global flags
	verbose    bool
	noCache    bool
	retries    int
	configPath string

	// base backoff between retry attempts, shortened in tests
	retryDelay time.Duration
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:     newLogger(w, level),
		cfg:        config.Default(),
		retryDelay: retryBaseDelay,
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Explore GitHub profiles from the terminal",
		Long:         `ghexplorer fetches GitHub user profiles, browses and filters their repositories, aggregates language statistics, and keeps favorites and search history.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.Logger.SetLevel(log.DebugLevel)
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "bypass the result cache")
	root.PersistentFlags().IntVar(&c.retries, "retries", 0, "retry transient network failures this many times")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/ghexplorer/config.toml)")

	root.AddCommand(c.userCommand())
	root.AddCommand(c.reposCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.favoritesCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newService creates the use-case service from the loaded configuration.
func (c *CLI) newService() *explorer.Service {
	client := github.NewClient(c.cfg.BaseURL, c.cfg.Timeout.Duration(), c.Logger)
	return explorer.NewService(client)
}

// newCache creates the result cache per flags and config.
func (c *CLI) newCache() (cache.Cache, error) {
	if c.noCache || c.cfg.Cache.Backend == "none" {
		return cache.NewNullCache(), nil
	}
	if c.cfg.Cache.Backend == "redis" {
		return cache.NewRedisCache(context.Background(), cache.RedisConfig{Addr: c.cfg.Cache.RedisAddr})
	}
	dir := c.cfg.Cache.Dir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// newStore creates the favorites and history store per config.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	switch c.cfg.Store.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:      c.cfg.Store.MongoURI,
			Database: c.cfg.Store.MongoDatabase,
		})
	default:
		return store.NewFileStore(c.cfg.Store.Dir)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/ghexplorer/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
