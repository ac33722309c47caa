package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Briskwoods/portfolio/internal/format"
	"github.com/Briskwoods/portfolio/internal/snippet"
	"github.com/Briskwoods/portfolio/internal/store"
)

func (a *App) newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [flags]",
		Short: "Export the snippet index in JSON format",
		RunE: func(cmd *cobra.Command, args []string) error {
			category, _ := cmd.Flags().GetString("category")
			return a.ExportJSON(context.Background(), cmd.OutOrStdout(), category)
		},
	}
	cmd.Flags().StringP("category", "c", store.AllCategories, "Only export snippets in this category")
	return cmd
}

// ExportJSON runs the export logic, writing JSON to w.
func (a *App) ExportJSON(ctx context.Context, w io.Writer, category string) error {
	a.ensureClient()

	st := store.New()
	if _, err := st.LoadAll(ctx, a.GHClient, a.Config); err != nil {
		return fmt.Errorf("loading snippets: %w", err)
	}

	return format.WriteJSON(w, snippet.Index(st.Filter(category)))
}
