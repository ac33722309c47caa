package commands

import (
	"github.com/spf13/cobra"

	"github.com/Briskwoods/portfolio/internal/config"
	"github.com/Briskwoods/portfolio/internal/site"
	"github.com/Briskwoods/portfolio/internal/store"
)

func (a *App) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [flags]",
		Short: "Serve the portfolio site",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = a.Config.Addr
			}
			return a.runServe(addr)
		},
	}
	cmd.Flags().StringP("addr", "a", "", "Listen address (overrides LISTEN_ADDR)")
	return cmd
}

func (a *App) runServe(addr string) error {
	a.ensureClient()
	s := site.New(a.GHClient, store.New(), a.Cache, config.Load, a.FeaturedProjects, a.Config.NoCache)
	return s.Start(addr)
}
