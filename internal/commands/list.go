package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Briskwoods/portfolio/internal/store"
)

func (a *App) newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [flags]",
		Short: "List the snippets in the configured repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd)
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	cmd.Flags().StringP("category", "c", store.AllCategories, "Only list snippets in this category")
	return cmd
}

func (a *App) runList(cmd *cobra.Command) error {
	a.ensureClient()
	ctx := context.Background()
	verbose, _ := cmd.Flags().GetBool("verbose")
	category, _ := cmd.Flags().GetString("category")
	w := cmd.OutOrStdout()

	st := store.New()
	if _, err := st.LoadAll(ctx, a.GHClient, a.Config); err != nil {
		return fmt.Errorf("loading snippets: %w", err)
	}

	snippets := st.Filter(category)
	fmt.Fprintf(w, "Total snippets found: %d\n", len(snippets))
	for _, sn := range snippets {
		if verbose {
			fmt.Fprintf(w, "%s,%s,%s,%s,%d\n",
				sn.Filename, sn.Meta.Title, sn.Meta.Language,
				strings.Join(sn.Meta.Categories, ";"), sn.LineCount)
		} else {
			fmt.Fprintf(w, "%s\n", sn.Filename)
		}
	}

	return nil
}
