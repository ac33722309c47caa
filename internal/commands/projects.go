package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	ghub "github.com/Briskwoods/portfolio/internal/github"
)

func (a *App) newProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects [flags]",
		Short: "List the featured GitHub projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProjects(cmd)
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	return cmd
}

func (a *App) runProjects(cmd *cobra.Command) error {
	a.ensureClient()
	ctx := context.Background()
	verbose, _ := cmd.Flags().GetBool("verbose")
	w := cmd.OutOrStdout()

	projects, err := ghub.ListProjects(ctx, a.GHClient, a.Cache, a.Config.Username,
		a.FeaturedProjects, a.Config.NoCache, a.Config.DebugMode)
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	totalStars := 0
	for _, p := range projects {
		totalStars += p.Stars
	}
	fmt.Fprintf(w, "Total projects found: %d, Total stars: %d\n", len(projects), totalStars)
	if verbose {
		for _, p := range projects {
			fmt.Fprintf(w, "%s,%d\n", p.Name, p.Stars)
		}
	}

	return nil
}
