package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"petshop/catalog/internal/service"
)

func (a *app) overviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Show every active category and size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := a.svc().Overview(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Active categories (%d)\n", len(overview.Categories))
			renderCategories(out, overview.Categories)
			fmt.Fprintf(out, "\nActive sizes (%d)\n", len(overview.Sizes))
			renderSizes(out, overview.Sizes)
			return nil
		},
	}
}

func (a *app) historyCommand() *cobra.Command {
	var limit int64

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent successful changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.svc().History(cmd.Context(), limit)
			if errors.Is(err, service.ErrJournalDisabled) {
				fmt.Fprintln(cmd.OutOrStdout(), "History is unavailable: set redis.enabled to record changes")
				return nil
			}
			if err != nil {
				return err
			}

			renderHistory(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", 20, "number of entries to show")
	return cmd
}
