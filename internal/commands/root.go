package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Briskwoods/portfolio/internal/cache"
	"github.com/Briskwoods/portfolio/internal/config"
	ghub "github.com/Briskwoods/portfolio/internal/github"
)

// App holds shared application state.
type App struct {
	Config           config.Config
	Cache            *cache.Cache
	GHClient         ghub.Client
	FeaturedProjects []string
	GitSHA           string
	GitDirty         string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, featured []string, gitSHA, gitDirty string) (*App, error) {
	c, err := cache.LoadFromFile(cfg.CacheFile)
	if err != nil {
		return nil, fmt.Errorf("loading cache: %w", err)
	}

	return &App{
		Config:           cfg,
		Cache:            c,
		FeaturedProjects: featured,
		GitSHA:           gitSHA,
		GitDirty:         gitDirty,
	}, nil
}

// ensureClient creates the GitHub client if it doesn't exist. An empty token
// still yields a working client for public repositories.
func (a *App) ensureClient() {
	if a.GHClient != nil {
		return
	}
	a.GHClient = ghub.NewClient(a.Config.GitHubToken)
}

// SaveCache saves the cache to disk if caching is enabled.
func (a *App) SaveCache() error {
	if !a.Config.NoCache {
		return a.Cache.SaveToFile(a.Config.CacheFile)
	}
	return nil
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   os.Args[0],
		Short: "Portfolio site backed by GitHub-hosted code snippets.",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVar(&a.Config.NoCache, "no-cache", false, "Disable caching")

	rootCmd.AddCommand(a.newServeCommand())
	rootCmd.AddCommand(a.newListCommand())
	rootCmd.AddCommand(a.newExportCommand())
	rootCmd.AddCommand(a.newProjectsCommand())
	rootCmd.AddCommand(a.newVersionCommand())
	rootCmd.AddCommand(a.newClearCacheCommand())

	return rootCmd
}
